package main

import (
	"fmt"
	"io"
	"os"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg-embed <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  embed      Embed local assets into an SVG document")
	fmt.Fprintln(w, "  refresh    Re-download local assets from their remote URLs")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'svg-embed help <command>' for details on a specific command.")
}

// printEmbedUsage prints usage for the embed command.
func printEmbedUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg-embed embed [flags] [input.svg]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Embed local assets into an SVG document. Raster assets (.png, .gif)")
	fmt.Fprintln(w, "become Base64 data URIs; vector assets (.svg) are inlined in place.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Source SVG (optional if config has input)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output SVG path")
	fmt.Fprintln(w, "      --assets-dir <path>   Assets directory (default: assets)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// printRefreshUsage prints usage for the refresh command.
func printRefreshUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg-embed refresh [flags] [input.svg]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Re-download local assets from the remote URLs recorded as comments")
	fmt.Fprintln(w, "next to each href in the SVG source.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Source SVG (optional if config has input)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --assets-dir <path>   Assets directory (default: assets)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Per-request timeout (default: 15s)")
	fmt.Fprintln(w, "      --delay <dur>         Pause between requests (default: 1s)")
	fmt.Fprintln(w, "      --user-agent <s>      User-Agent header for fetches")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// runHelp shows help for a specific command, or general usage.
func runHelp(args []string) {
	if len(args) == 0 {
		printUsage(os.Stdout)
		return
	}
	switch args[0] {
	case "embed":
		printEmbedUsage(os.Stdout)
	case "refresh":
		printRefreshUsage(os.Stdout)
	default:
		printUsage(os.Stdout)
	}
}
