// Package gpxfile builds GPX documents from track collections and writes
// them to disk.
package gpxfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/trailsnap/webgpx/pkg/geo"
)

// Creator is recorded in the creator attribute of every written file.
const Creator = "webgpx"

// Build assembles a GPX document with a single named track containing one
// segment per entry of the collection, points in source order.
func Build(name string, tracks geo.TrackCollection) *gpx.GPX {
	doc := &gpx.GPX{
		Version: "1.1",
		Creator: Creator,
	}

	trk := gpx.GPXTrack{Name: name}
	for _, t := range tracks {
		var segment gpx.GPXTrackSegment
		for _, c := range t {
			segment.Points = append(segment.Points, gpx.GPXPoint{
				Point: gpx.Point{
					Latitude:  c.Latitude,
					Longitude: c.Longitude,
				},
			})
		}
		trk.Segments = append(trk.Segments, segment)
	}
	doc.Tracks = append(doc.Tracks, trk)

	return doc
}

// Encode serializes the document as GPX 1.1 XML. Output is deterministic
// for a given document.
func Encode(doc *gpx.GPX) ([]byte, error) {
	data, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return nil, fmt.Errorf("encode gpx document: %w", err)
	}
	return data, nil
}

// Write stores the serialized document as <name>.gpx inside dir,
// overwriting any existing file, and returns the written path.
func Write(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name+".gpx")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write gpx file: %w", err)
	}
	return path, nil
}

// ExecutableDir returns the directory containing the running binary, the
// default output location. Falls back to the working directory when the
// executable path cannot be resolved.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
