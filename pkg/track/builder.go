// Package track flattens extracted line geometry into ordered track lists.
package track

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/trailsnap/webgpx/pkg/geo"
)

// ErrSchema reports a feature whose geometry is missing or whose
// coordinates do not match the declared geometry type.
var ErrSchema = errors.New("unexpected feature schema")

// Build walks a feature collection and produces one track per LineString
// feature and one track per inner line of each MultiLineString feature.
// Features with any other geometry type contribute nothing. Feature and
// coordinate order is preserved, and each [lon, lat] pair becomes a
// (latitude, longitude) coordinate.
func Build(fc *geo.FeatureCollection) (geo.TrackCollection, error) {
	tracks := geo.TrackCollection{}

	for i, feature := range fc.Features {
		if feature.Geometry == nil {
			return nil, fmt.Errorf("%w: feature %d has no geometry", ErrSchema, i)
		}

		switch feature.Geometry.Type {
		case geo.TypeLineString:
			var line orb.LineString
			if err := json.Unmarshal(feature.Geometry.Coordinates, &line); err != nil {
				return nil, fmt.Errorf("%w: feature %d coordinates: %v", ErrSchema, i, err)
			}
			tracks = append(tracks, fromLine(line))

		case geo.TypeMultiLineString:
			var lines orb.MultiLineString
			if err := json.Unmarshal(feature.Geometry.Coordinates, &lines); err != nil {
				return nil, fmt.Errorf("%w: feature %d coordinates: %v", ErrSchema, i, err)
			}
			for _, line := range lines {
				tracks = append(tracks, fromLine(line))
			}
		}
	}

	return tracks, nil
}

// fromLine swaps each point from GeoJSON [lon, lat] order into a
// latitude/longitude coordinate.
func fromLine(line orb.LineString) geo.Track {
	t := make(geo.Track, 0, len(line))
	for _, point := range line {
		t = append(t, geo.Coordinate{
			Latitude:  point.Lat(),
			Longitude: point.Lon(),
		})
	}
	return t
}
