package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"geowkt/internal/config"
	"geowkt/internal/demo"
	"geowkt/internal/logger"
	"geowkt/internal/tui"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"      env:"CONFIG_FILE" description:"Path to an optional YAML configuration file"`
	TUI        bool   `short:"t" long:"tui"                           description:"Browse the steps interactively"`
	NoPrintout bool   `long:"no-printout"                            description:"Only print headers and WKT, not the structure of each geometry"`
	NoColor    bool   `long:"no-color"    env:"NO_COLOR"              description:"Disable styled output"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(opts, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}
}

func run(opts Options, stdout io.Writer) error {
	// Setup Logging
	if opts.TUI && opts.Logger.File == "" {
		logger.Discard()
	} else {
		closer, err := opts.Logger.Setup()
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer closer.Close()
	}

	// Load Config
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
	}

	steps, err := demo.Select(demo.Steps(), cfg.Steps)
	if err != nil {
		return err
	}
	for _, e := range cfg.Extra {
		steps = append(steps, demo.FromWKT(e.Name, e.WKT))
	}
	log.Debug().
		Int("steps", len(steps)).
		Int("precision", cfg.Precision).
		Bool("tui", opts.TUI).
		Msg("Starting")

	printer := demo.NewPrinter(cfg.Precision, !opts.NoColor && !opts.TUI)

	if opts.TUI {
		results := demo.Build(steps)
		defer demo.Release(results)
		m := tui.New(results, demo.NewPrinter(cfg.Precision, false))
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}

	results, err := demo.Run(stdout, steps, printer, !opts.NoPrintout)
	demo.Release(results)
	if err != nil {
		var failed int
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		return errors.Join(fmt.Errorf("%d of %d steps failed", failed, len(results)), err)
	}
	log.Info().Int("steps", len(results)).Msg("All steps completed")
	return nil
}
