package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches to the subcommand and maps its error to an exit code.
func run(args []string) int {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "embed":
		return exitWith(runEmbed(rest))
	case "refresh":
		return exitWith(runRefresh(rest))
	case "version", "--version":
		fmt.Printf("svg-embed %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		runHelp(rest)
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(os.Stderr)
		return ExitUsage
	}
}

// exitWith prints the error, if any, and returns its exit code.
func exitWith(err error) int {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return exitCodeFor(err)
}

// setMaxProcs aligns GOMAXPROCS with the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}
