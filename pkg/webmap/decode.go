package webmap

import (
	"encoding/json"
	"fmt"

	"github.com/trailsnap/webgpx/pkg/geo"
	"github.com/trailsnap/webgpx/pkg/jslit"
)

// DecodeFeatures parses a raw JavaScript feature-collection literal into
// the in-memory GeoJSON-style structure. The literal is first rewritten
// into strict JSON, so the provider's unquoted keys, single quotes and
// trailing commas are all tolerated.
func DecodeFeatures(literal string) (*geo.FeatureCollection, error) {
	data, err := jslit.Normalize(literal)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLiteral, err)
	}

	var fc geo.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSchema, err)
	}
	return &fc, nil
}
