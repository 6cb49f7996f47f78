// Package main provides the departures command that prints the South Station board.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"mbtatimes/internal/config"
	"mbtatimes/internal/crawler"
	"mbtatimes/internal/logger"
	"mbtatimes/internal/schedule"
)

const filePathUsage = "Path to input file. Should be UTF-8 encoded (or compatible)."

func main() {
	var filePath string

	flag.StringVar(&filePath, "f", "", filePathUsage)
	flag.StringVar(&filePath, "filepath", "", filePathUsage)
	configFile := flag.String("config", "", "Path to YAML configuration file (optional)")

	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	if err := run(filePath, *configFile, os.Stdout); err != nil {
		logger.NewLogger("error").Error("departures failed", "error", err)
		os.Exit(1)
	}
}

// run loads rows from filePath, or from the configured URL when filePath is
// empty, and prints the schedule to stdout.
func run(filePath, configFile string, stdout io.Writer) error {
	cfg := config.Default()

	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		cfg = loaded
	}

	log := logger.NewLogger(cfg.Logging.Level)
	log.Debug("configuration loaded", "config", cfg.String())

	client := crawler.NewClientWithDeps(crawler.NewScraperWithConfig(&cfg.Source), crawler.NewParser(), log)

	rows, err := client.Rows(filePath, cfg.Source.URL)
	if err != nil {
		return err
	}

	return schedule.NewPipeline(&cfg.Schedule, log).Run(rows, stdout)
}
