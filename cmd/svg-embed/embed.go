package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	svgembed "github.com/alnah/go-svg-embed"
	"github.com/alnah/go-svg-embed/internal/config"
	"github.com/alnah/go-svg-embed/internal/hints"
)

// runEmbed runs the embed command: resolve configuration, then delegate
// to the library service.
func runEmbed(args []string) error {
	flags, positional, err := parseEmbedFlags(args)
	if err != nil {
		return err
	}
	setMaxProcs(flags.common.verbose)

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	// CLI flags win over config
	if flags.output != "" {
		cfg.Output = flags.output
	}
	if flags.assetsDir != "" {
		cfg.AssetsDir = flags.assetsDir
	}
	if len(positional) > 0 {
		cfg.Input = positional[0]
	}

	logWriter := io.Writer(os.Stderr)
	if flags.common.quiet {
		logWriter = io.Discard
	}

	svc := svgembed.New(svgembed.WithLogOutput(logWriter))
	report, err := svc.Embed(context.Background(), svgembed.Input{
		SourcePath: cfg.Input,
		OutputPath: cfg.Output,
		AssetsDir:  cfg.AssetsDir,
	})
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Printf("Embedded %d/%d assets into %s", report.Embedded, report.Found, cfg.Output)
		if report.Warnings > 0 {
			fmt.Printf(" (%d warnings)", report.Warnings)
		}
		fmt.Println()
	}
	return nil
}

// loadConfig resolves the --config flag; empty means built-in defaults.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s",
				err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
