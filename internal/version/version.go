package version

import "fmt"

// Tagline is shown in dialog headers and the CLI description
const Tagline = "Plan the day, track the work, take the breaks"

// Build information injected at build time via ldflags
var (
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
	Version   = "dev"     // Semantic version or "dev"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("takipcim %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

// IsDev reports whether this is an unreleased build
func IsDev() bool {
	return Version == "dev"
}
