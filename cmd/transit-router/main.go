package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transit-router/catalogue"
	"github.com/theoremus-urban-solutions/transit-router/config"
	"github.com/theoremus-urban-solutions/transit-router/gtfs"
	"github.com/theoremus-urban-solutions/transit-router/internal"
	"github.com/theoremus-urban-solutions/transit-router/requests"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (default: ./config.yml or ./config/config.yml)")
	input := flag.String("input", "-", "request document to read, - for stdin")
	gtfsPath := flag.String("gtfs", "", "GTFS static zip to preload (overrides config gtfs.path)")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Parse()

	if err := config.LoadAppConfig(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := internal.InitLogging(config.Config.Logging, os.Stderr)

	if err := run(logger, *input, *gtfsPath, *pretty); err != nil {
		logger.Error("request processing failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, input, gtfsPath string, pretty bool) error {
	cat := catalogue.New()

	if gtfsPath == "" {
		gtfsPath = config.Config.GTFS.Path
	}
	if gtfsPath != "" {
		stats, err := gtfs.LoadZipFile(gtfsPath, cat, gtfs.Options{NameBy: config.Config.GTFS.NameBy})
		if err != nil {
			return fmt.Errorf("load gtfs %s: %w", gtfsPath, err)
		}
		logger.Info("gtfs feed loaded",
			"path", gtfsPath,
			"stops", stats.Stops,
			"buses", stats.Buses,
			"distances", stats.Distances)
		if stats.SkippedStopTimes > 0 {
			logger.Warn("stop_times rows skipped", "rows", stats.SkippedStopTimes)
		}
		if stats.BadSequences > 0 {
			logger.Warn("stop_times rows with bad stop_sequence skipped", "rows", stats.BadSequences)
		}
	}

	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	p := requests.NewProcessor(cat, config.Config, logger)
	return p.ProcessJSON(r, os.Stdout, pretty)
}
