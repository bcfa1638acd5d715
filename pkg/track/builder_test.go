package track_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/trailsnap/webgpx/pkg/geo"
	"github.com/trailsnap/webgpx/pkg/track"
	"github.com/trailsnap/webgpx/pkg/webmap"
)

// collection decodes a JS-style literal the way the pipeline does, so the
// builder sees the exact structures extraction produces.
func collection(t *testing.T, literal string) *geo.FeatureCollection {
	t.Helper()
	fc, err := webmap.DecodeFeatures(literal)
	if err != nil {
		t.Fatalf("DecodeFeatures() error: %v", err)
	}
	return fc
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		literal  string
		expected geo.TrackCollection
	}{
		{
			name:    "LineString produces one track with swapped pairs",
			literal: `{features:[{geometry:{type:'LineString',coordinates:[[10,20],[11,21]]}}]}`,
			expected: geo.TrackCollection{
				{{Latitude: 20, Longitude: 10}, {Latitude: 21, Longitude: 11}},
			},
		},
		{
			name:    "MultiLineString produces one track per line",
			literal: `{features:[{geometry:{type:'MultiLineString',coordinates:[[[1,2],[3,4]],[[5,6]]]}}]}`,
			expected: geo.TrackCollection{
				{{Latitude: 2, Longitude: 1}, {Latitude: 4, Longitude: 3}},
				{{Latitude: 6, Longitude: 5}},
			},
		},
		{
			name:     "Point features are skipped",
			literal:  `{features:[{geometry:{type:'Point',coordinates:[10,20]}}]}`,
			expected: geo.TrackCollection{},
		},
		{
			name: "mixed features preserve order",
			literal: `{features:[
				{geometry:{type:'LineString',coordinates:[[1,1]]}},
				{geometry:{type:'Point',coordinates:[9,9]}},
				{geometry:{type:'MultiLineString',coordinates:[[[2,2]],[[3,3]]]}},
				{geometry:{type:'LineString',coordinates:[[4,4]]}},
			]}`,
			expected: geo.TrackCollection{
				{{Latitude: 1, Longitude: 1}},
				{{Latitude: 2, Longitude: 2}},
				{{Latitude: 3, Longitude: 3}},
				{{Latitude: 4, Longitude: 4}},
			},
		},
		{
			name:     "empty feature list",
			literal:  `{features:[]}`,
			expected: geo.TrackCollection{},
		},
		{
			name:    "empty LineString keeps an empty track",
			literal: `{features:[{geometry:{type:'LineString',coordinates:[]}}]}`,
			expected: geo.TrackCollection{
				{},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := track.Build(collection(t, tc.literal))
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Build() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBuildSchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		literal string
	}{
		{
			name:    "feature without geometry",
			literal: `{features:[{properties:{name:'x'}}]}`,
		},
		{
			name:    "LineString with point-shaped coordinates",
			literal: `{features:[{geometry:{type:'LineString',coordinates:[10,20]}}]}`,
		},
		{
			name:    "LineString without coordinates",
			literal: `{features:[{geometry:{type:'LineString'}}]}`,
		},
		{
			name:    "MultiLineString with flat coordinates",
			literal: `{features:[{geometry:{type:'MultiLineString',coordinates:[[1,2]]}}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := track.Build(collection(t, tc.literal)); !errors.Is(err, track.ErrSchema) {
				t.Errorf("Build() error = %v, expected %v", err, track.ErrSchema)
			}
		})
	}
}
