// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest creating
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-svg-embed") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForFetchFailure returns hints for refresher network errors.
func ForFetchFailure() string {
	return format("check the URL comments in the SVG; use --timeout for slow servers")
}

// format renders a single hint line.
func format(hint string) string {
	return "\n  hint: " + hint
}
