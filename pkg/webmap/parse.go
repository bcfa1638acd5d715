package webmap

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/trailsnap/webgpx/pkg/geo"
	"github.com/trailsnap/webgpx/pkg/gpxfile"
	"github.com/trailsnap/webgpx/pkg/track"
)

// Config controls a single conversion run.
type Config struct {
	// URL of the map page to convert.
	URL string

	// Timeout bounds the page fetch. Zero means DefaultTimeout.
	Timeout time.Duration

	// OutputDir receives the GPX file. Empty means the directory
	// containing the running executable.
	OutputDir string

	// Logger for informational pipeline messages. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// Parse retrieves the map page at pageURL and writes its line geometry as
// a GPX file named after the page title, next to the running executable.
// It is the single entry point of the pipeline; every failure aborts the
// run with no output file.
func Parse(ctx context.Context, pageURL string, timeoutSeconds int) error {
	_, err := Run(ctx, Config{
		URL:     pageURL,
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	})
	return err
}

// Run executes the pipeline with explicit configuration and returns the
// path of the written file.
func Run(ctx context.Context, cfg Config) (string, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("parsing webpage sources", "url", cfg.URL)
	page, err := Fetch(ctx, cfg.URL, cfg.Timeout)
	if err != nil {
		return "", err
	}

	script, err := ScriptBlock(page)
	if err != nil {
		return "", err
	}

	title, err := Title(script)
	if err != nil {
		return "", err
	}

	lineLiteral, err := LineData(script)
	if err != nil {
		return "", err
	}
	lineData, err := DecodeFeatures(lineLiteral)
	if err != nil {
		return "", err
	}

	pointLiteral, err := PointData(script)
	if err != nil {
		return "", err
	}
	pointData, err := DecodeFeatures(pointLiteral)
	if err != nil {
		return "", err
	}
	// Point-of-interest data is diagnostic only and never reaches the
	// GPX output.
	logger.Info("parsed points of interest", "count", len(pointData.Features))

	logger.Info("creating list of tracks")
	tracks, err := track.Build(lineData)
	if err != nil {
		return "", err
	}
	if len(tracks) > 0 {
		logger.Info("parsed waypoints", "count", len(tracks[0]))
	}
	logger.Info("parsed tracks", "count", len(tracks))
	logTrackStats(logger, tracks)

	doc := gpxfile.Build(title, tracks)
	data, err := gpxfile.Encode(doc)
	if err != nil {
		return "", err
	}

	dir := cfg.OutputDir
	if dir == "" {
		dir = gpxfile.ExecutableDir()
	}
	path, err := gpxfile.Write(dir, title, data)
	if err != nil {
		return "", err
	}
	logger.Info("exported gpx file", "file", path)

	logger.Info("Done!")
	return path, nil
}

// logTrackStats reports the extent and length of the extracted tracks.
func logTrackStats(logger *slog.Logger, tracks geo.TrackCollection) {
	if tracks.Points() == 0 {
		return
	}
	logger.Debug("track statistics",
		"points", tracks.Points(),
		"bounds", tracks.Bounds().String(),
		"length_m", math.Round(tracks.Length()))
}
