package webmap

import (
	"fmt"
	"strings"
)

// Marker strings delimiting the embedded map data. The provider emits a
// single inline script carrying the page title and the lineData/pointData
// assignments, in that order, followed by the maplibre bootstrap.
const (
	scriptOpenMarker  = `<script type="text/javascript">`
	scriptCloseMarker = `</script>`
	titleMarker       = `document.title = `
	lineDataMarker    = `var lineData = `
	pointDataMarker   = `var pointData = `
	mapMarker         = `var map = new maplibregl`
)

// ScriptBlock returns the text strictly between the first inline script
// opening tag and the first closing tag after it.
func ScriptBlock(page string) (string, error) {
	_, rest, found := strings.Cut(page, scriptOpenMarker)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrMissingMarker, scriptOpenMarker)
	}
	script, _, found := strings.Cut(rest, scriptCloseMarker)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrMissingMarker, scriptCloseMarker)
	}
	return script, nil
}

// Title extracts the page title assigned to document.title, with the
// surrounding single quotes stripped. The title becomes the output file's
// base name.
func Title(script string) (string, error) {
	_, rest, found := strings.Cut(script, titleMarker)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrMissingAssignment, strings.TrimSpace(titleMarker))
	}
	value, _, _ := strings.Cut(rest, ";")
	return strings.Trim(value, "'"), nil
}

// LineData returns the raw JS literal assigned to lineData. The literal
// runs up to the pointData assignment, or to the end of the script when
// that assignment is absent.
func LineData(script string) (string, error) {
	_, rest, found := strings.Cut(script, lineDataMarker)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrMissingAssignment, strings.TrimSpace(lineDataMarker))
	}
	literal, _, _ := strings.Cut(rest, pointDataMarker)
	return literal, nil
}

// PointData returns the raw JS literal assigned to pointData, delimited by
// the maplibre map construction that follows it. The point data never
// reaches the GPX output; it is decoded for diagnostics only.
func PointData(script string) (string, error) {
	_, rest, found := strings.Cut(script, pointDataMarker)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrMissingAssignment, strings.TrimSpace(pointDataMarker))
	}
	literal, _, _ := strings.Cut(rest, mapMarker)
	return literal, nil
}
