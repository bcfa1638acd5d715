// Package geo provides common geographic types and calculations.
// It centralizes the coordinate and track data structures used by the
// extraction pipeline so ordering semantics live in one place.
package geo

import (
	"fmt"
	"math"
)

// EarthRadius is the mean radius of Earth according to WGS-84 in meters
const EarthRadius = 6371000.0

// Coordinate represents a geographic point (latitude and longitude).
//
// Example:
//
//	c := geo.Coordinate{Latitude: 37.7749, Longitude: -122.4194}
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Track is an ordered sequence of coordinates describing one continuous
// path. Order is significant and may be empty.
type Track []Coordinate

// TrackCollection is an ordered sequence of tracks, one per line feature
// (or per sub-line of a multi-line feature) found in the source data.
type TrackCollection []Track

// Length returns the cumulative great-circle length of the track in meters.
func (t Track) Length() float64 {
	var total float64
	for i := 1; i < len(t); i++ {
		total += HaversineDistance(
			t[i-1].Latitude, t[i-1].Longitude,
			t[i].Latitude, t[i].Longitude)
	}
	return total
}

// Points returns the total number of coordinates across all tracks.
func (tc TrackCollection) Points() int {
	var n int
	for _, t := range tc {
		n += len(t)
	}
	return n
}

// Length returns the cumulative length of all tracks in meters.
func (tc TrackCollection) Length() float64 {
	var total float64
	for _, t := range tc {
		total += t.Length()
	}
	return total
}

// Bounds returns the bounding box enclosing every coordinate in the
// collection.
func (tc TrackCollection) Bounds() *BoundingBox {
	bb := NewBoundingBox()
	for _, t := range tc {
		for _, c := range t {
			bb.ExtendWithPoint(c.Latitude, c.Longitude)
		}
	}
	return bb
}

// BoundingBox represents a geographic bounding box with southwest and northeast corners
type BoundingBox struct {
	MinLat float64 // Southern edge (minimum latitude)
	MinLon float64 // Western edge (minimum longitude)
	MaxLat float64 // Northern edge (maximum latitude)
	MaxLon float64 // Eastern edge (maximum longitude)
}

// NewBoundingBox creates a new empty bounding box
func NewBoundingBox() *BoundingBox {
	return &BoundingBox{
		MinLat: 90.0, // Start with inverted min/max so any point extends correctly
		MinLon: 180.0,
		MaxLat: -90.0,
		MaxLon: -180.0,
	}
}

// ExtendWithPoint extends the bounding box to include the specified point
func (bb *BoundingBox) ExtendWithPoint(lat, lon float64) {
	if lat < bb.MinLat {
		bb.MinLat = lat
	}
	if lat > bb.MaxLat {
		bb.MaxLat = lat
	}
	if lon < bb.MinLon {
		bb.MinLon = lon
	}
	if lon > bb.MaxLon {
		bb.MaxLon = lon
	}
}

// String returns a string representation of the bounding box
func (bb *BoundingBox) String() string {
	return fmt.Sprintf("(%f,%f,%f,%f)", bb.MinLat, bb.MinLon, bb.MaxLat, bb.MaxLon)
}

// HaversineDistance calculates the great-circle distance between two points
// on the Earth's surface given their latitude and longitude in degrees.
// The result is returned in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	// Convert degrees to radians
	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	// Haversine formula
	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return EarthRadius * c
}
