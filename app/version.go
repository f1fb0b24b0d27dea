package app

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the pathwalk version, set via ldflags.
	Version = "dev"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// VersionString formats the build information for -version output.
func VersionString() string {
	return "pathwalk " + Version + " (compiled " + CompiledAt + ")"
}
