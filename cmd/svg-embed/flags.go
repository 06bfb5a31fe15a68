package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlags wraps flag parsing failures so they map to the usage
// exit code.
var ErrInvalidFlags = errors.New("invalid flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// embedFlags holds all flags for the embed command.
type embedFlags struct {
	common    commonFlags
	output    string
	assetsDir string
}

// refreshFlags holds all flags for the refresh command.
type refreshFlags struct {
	common    commonFlags
	assetsDir string
	timeout   string
	delay     string
	userAgent string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// parseEmbedFlags parses embed command flags and returns positional args.
func parseEmbedFlags(args []string) (*embedFlags, []string, error) {
	fs := flag.NewFlagSet("embed", flag.ContinueOnError)
	f := &embedFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output SVG path")
	fs.StringVar(&f.assetsDir, "assets-dir", "", "directory qualifying hrefs must lie under")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printEmbedUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	return f, fs.Args(), nil
}

// parseRefreshFlags parses refresh command flags and returns positional args.
func parseRefreshFlags(args []string) (*refreshFlags, []string, error) {
	fs := flag.NewFlagSet("refresh", flag.ContinueOnError)
	f := &refreshFlags{}

	fs.StringVar(&f.assetsDir, "assets-dir", "", "directory assets are saved under")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-request timeout (e.g., 15s, 1m)")
	fs.StringVar(&f.delay, "delay", "", "pause between requests (e.g., 1s, 500ms)")
	fs.StringVar(&f.userAgent, "user-agent", "", "User-Agent header sent with each fetch")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printRefreshUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	return f, fs.Args(), nil
}
