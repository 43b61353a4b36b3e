package meta

// Build information, overridden at build time via ldflags.
var (
	// Version is the semantic version of the application.
	Version = "HEAD"

	// Commit is the git commit hash the binary was built from.
	Commit = "UNKNOWN"
)
