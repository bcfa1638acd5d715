package geo

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lon1      float64
		lat2      float64
		lon2      float64
		expected  float64
		tolerance float64 // relative tolerance (e.g. 0.001 for 0.1%)
	}{
		{
			name:      "same point",
			lat1:      37.7749,
			lon1:      -122.4194,
			lat2:      37.7749,
			lon2:      -122.4194,
			expected:  0,
			tolerance: 0.0001,
		},
		{
			name:      "short distance - SF downtown to Market St",
			lat1:      37.7749,
			lon1:      -122.4194,
			lat2:      37.7734,
			lon2:      -122.4167,
			expected:  290.06,
			tolerance: 0.001,
		},
		{
			name:      "long distance - SF to NYC",
			lat1:      37.7749,
			lon1:      -122.4194,
			lat2:      40.7128,
			lon2:      -74.0060,
			expected:  4129936.81,
			tolerance: 0.001,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := HaversineDistance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)

			var difference float64
			if tc.expected == 0 {
				difference = math.Abs(result)
			} else {
				difference = math.Abs(result-tc.expected) / tc.expected
			}

			if difference > tc.tolerance {
				t.Errorf("HaversineDistance(%f, %f, %f, %f) = %f, expected %f ± %.1f%%",
					tc.lat1, tc.lon1, tc.lat2, tc.lon2, result, tc.expected, tc.tolerance*100)
			}
		})
	}
}

func TestTrackLength(t *testing.T) {
	t.Run("empty and single-point tracks have zero length", func(t *testing.T) {
		if l := (Track{}).Length(); l != 0 {
			t.Errorf("empty track length = %f, expected 0", l)
		}
		single := Track{{Latitude: 37.7749, Longitude: -122.4194}}
		if l := single.Length(); l != 0 {
			t.Errorf("single-point track length = %f, expected 0", l)
		}
	})

	t.Run("two-point track equals haversine distance", func(t *testing.T) {
		track := Track{
			{Latitude: 37.7749, Longitude: -122.4194},
			{Latitude: 37.7734, Longitude: -122.4167},
		}
		want := HaversineDistance(37.7749, -122.4194, 37.7734, -122.4167)
		if got := track.Length(); got != want {
			t.Errorf("track length = %f, expected %f", got, want)
		}
	})
}

func TestTrackCollectionPoints(t *testing.T) {
	tc := TrackCollection{
		{{Latitude: 1, Longitude: 2}, {Latitude: 3, Longitude: 4}},
		{},
		{{Latitude: 5, Longitude: 6}},
	}
	if got := tc.Points(); got != 3 {
		t.Errorf("Points() = %d, expected 3", got)
	}
}

func TestBoundingBox(t *testing.T) {
	t.Run("creation and extension", func(t *testing.T) {
		bbox := NewBoundingBox()

		// Check initial state
		if bbox.MinLat != 90.0 || bbox.MinLon != 180.0 || bbox.MaxLat != -90.0 || bbox.MaxLon != -180.0 {
			t.Errorf("NewBoundingBox() incorrect initial state: %+v", bbox)
		}

		bbox.ExtendWithPoint(37.7749, -122.4194) // San Francisco

		if bbox.MinLat != 37.7749 || bbox.MaxLat != 37.7749 ||
			bbox.MinLon != -122.4194 || bbox.MaxLon != -122.4194 {
			t.Errorf("ExtendWithPoint didn't set values correctly with single point: %+v", bbox)
		}

		bbox.ExtendWithPoint(40.7128, -74.0060) // New York

		if bbox.MinLat != 37.7749 || bbox.MaxLat != 40.7128 ||
			bbox.MinLon != -122.4194 || bbox.MaxLon != -74.0060 {
			t.Errorf("ExtendWithPoint didn't extend correctly with second point: %+v", bbox)
		}

		// Point already contained, should change nothing
		bbox.ExtendWithPoint(39.0, -100.0)

		if bbox.MinLat != 37.7749 || bbox.MaxLat != 40.7128 ||
			bbox.MinLon != -122.4194 || bbox.MaxLon != -74.0060 {
			t.Errorf("ExtendWithPoint changed bounding box when it shouldn't have: %+v", bbox)
		}
	})

	t.Run("collection bounds", func(t *testing.T) {
		tc := TrackCollection{
			{{Latitude: 37.7749, Longitude: -122.4194}},
			{{Latitude: 40.7128, Longitude: -74.0060}},
		}
		bbox := tc.Bounds()
		if bbox.MinLat != 37.7749 || bbox.MaxLat != 40.7128 ||
			bbox.MinLon != -122.4194 || bbox.MaxLon != -74.0060 {
			t.Errorf("Bounds() = %+v, unexpected extents", bbox)
		}
	})

	t.Run("string format", func(t *testing.T) {
		bbox := NewBoundingBox()
		bbox.ExtendWithPoint(37.7749, -122.4194)
		bbox.ExtendWithPoint(40.7128, -74.0060)

		expected := "(37.774900,-122.419400,40.712800,-74.006000)"
		if bbox.String() != expected {
			t.Errorf("String() = %s, expected %s", bbox.String(), expected)
		}
	})
}
