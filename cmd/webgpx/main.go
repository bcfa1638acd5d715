// Command webgpx downloads a map provider's published route page and
// converts the embedded line geometry into a GPX track file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/trailsnap/webgpx/pkg/version"
	"github.com/trailsnap/webgpx/pkg/webmap"
)

var (
	showVersion    bool
	debug          bool
	timeoutSeconds int
	outputDir      string
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "Display version information")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.IntVar(&timeoutSeconds, "timeout", 10, "Page fetch timeout in seconds")
	flag.StringVar(&outputDir, "out", "", "Output directory (default: directory of the executable)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <url>\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Converts the web map at <url> into a GPX track file.\n\nFlags:\n")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	// Configure logging
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if showVersion {
		fmt.Println(version.String())
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	_, err := webmap.Run(context.Background(), webmap.Config{
		URL:       flag.Arg(0),
		Timeout:   time.Duration(timeoutSeconds) * time.Second,
		OutputDir: outputDir,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}
