package geo

import "encoding/json"

// Geometry type names as they appear in GeoJSON-style map data.
const (
	TypeLineString      = "LineString"
	TypeMultiLineString = "MultiLineString"
)

// FeatureCollection mirrors the GeoJSON-style structure map providers embed
// in their pages. Coordinates are kept raw so that geometry types this
// pipeline does not handle can be carried without failing the decode.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single map feature with its geometry and free-form properties.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   *Geometry      `json:"geometry"`
}

// Geometry holds a geometry type tag and its undecoded coordinate array.
// GeoJSON convention: coordinate pairs are ordered [longitude, latitude].
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}
