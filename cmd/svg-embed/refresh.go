package main

import (
	"context"
	"fmt"
	"io"
	"os"

	svgembed "github.com/alnah/go-svg-embed"
	"github.com/alnah/go-svg-embed/internal/hints"
)

// runRefresh runs the refresh command: resolve configuration, then
// delegate to the library refresher.
func runRefresh(args []string) error {
	flags, positional, err := parseRefreshFlags(args)
	if err != nil {
		return err
	}
	setMaxProcs(flags.common.verbose)

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	// CLI flags win over config
	if flags.assetsDir != "" {
		cfg.AssetsDir = flags.assetsDir
	}
	if flags.timeout != "" {
		cfg.Refresh.Timeout = flags.timeout
	}
	if flags.delay != "" {
		cfg.Refresh.Delay = flags.delay
	}
	if flags.userAgent != "" {
		cfg.Refresh.UserAgent = flags.userAgent
	}
	if len(positional) > 0 {
		cfg.Input = positional[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := cfg.Timeout(svgembed.DefaultRefreshTimeout)
	if err != nil {
		return err
	}
	delay, err := cfg.Delay(svgembed.DefaultRefreshDelay)
	if err != nil {
		return err
	}

	logWriter := io.Writer(os.Stderr)
	if flags.common.quiet {
		logWriter = io.Discard
	}

	opts := []svgembed.RefresherOption{
		svgembed.WithRefreshDelay(delay),
		svgembed.WithRefreshLogOutput(logWriter),
	}
	if timeout > 0 {
		opts = append(opts, svgembed.WithRefreshTimeout(timeout))
	}
	if cfg.Refresh.UserAgent != "" {
		opts = append(opts, svgembed.WithUserAgent(cfg.Refresh.UserAgent))
	}

	refresher := svgembed.NewRefresher(opts...)
	report, err := refresher.Refresh(context.Background(), cfg.Input, cfg.AssetsDir)
	if err != nil {
		return err
	}

	if report.Found > 0 && report.Updated == 0 {
		return fmt.Errorf("%w (%d attempted)%s",
			svgembed.ErrNoAssetsUpdated, report.Found, hints.ForFetchFailure())
	}

	if !flags.common.quiet {
		fmt.Printf("Updated %d/%d assets\n", report.Updated, report.Found)
	}
	return nil
}
