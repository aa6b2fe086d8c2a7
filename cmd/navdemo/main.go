package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"navstack/internal/catalog"
	"navstack/internal/logger"
	"navstack/internal/trace"
	"navstack/internal/ui"
)

// config holds the parsed CLI configuration for a navdemo run.
type config struct {
	logPath     string
	catalogPath string
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.logPath, "log", "", "write debug logs to this file (the TUI owns stdout)")
	flag.StringVar(&cfg.catalogPath, "catalog", "", "TOML catalog file (overrides NAVSTACK_CATALOG)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: navdemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Navdemo browses a field-guide catalog through a keyed navigation\n")
		fmt.Fprintf(os.Stderr, "back stack: enter opens details, esc walks back, b unwinds home.\n\n")
		fmt.Fprintf(os.Stderr, "Set OTEL_EXPORTER_OTLP_ENDPOINT to trace navigation operations.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return cfg
}

func run(cfg config) error {
	if cfg.logPath != "" {
		if err := logger.Setup(cfg.logPath); err != nil {
			return fmt.Errorf("log %q: %w", cfg.logPath, err)
		}
		defer logger.Sync()
	}

	ctx := context.Background()
	tracer, err := trace.NewNavTracer(ctx)
	if err != nil {
		return fmt.Errorf("tracer: %w", err)
	}
	defer tracer.Shutdown(ctx)

	var cat *catalog.Catalog
	if cfg.catalogPath != "" {
		cat, err = catalog.LoadFile(cfg.catalogPath)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return err
	}

	p := tea.NewProgram(ui.NewAppModel(cat, tracer), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "navdemo: %v\n", err)
		os.Exit(1)
	}
}
