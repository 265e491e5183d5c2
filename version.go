package hjarta

import "log/slog"

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// ConfigVersion is the hjarta-config library version, set via ldflags.
	ConfigVersion = "dev"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version       string
	ConfigVersion string
	CompiledAt    string
}

// Build returns the values stamped at build time.
func Build() BuildInfo {
	return BuildInfo{
		Version:       Version,
		ConfigVersion: ConfigVersion,
		CompiledAt:    CompiledAt,
	}
}

// LogValue implements slog.LogValuer.
func (b BuildInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", b.Version),
		slog.String("config_version", b.ConfigVersion),
		slog.String("compiled_at", b.CompiledAt),
	)
}
