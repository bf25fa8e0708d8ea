package domain

import "time"

const (
	// ServerName is the name reported to protocol clients.
	ServerName = "godot-mcp"

	// ProjectMarker is the file that marks a directory as an engine project root.
	ProjectMarker = "project.godot"

	// BareExecutable is the command token resolved through PATH.
	BareExecutable = "godot"

	// FailureMarker is the literal the operations script writes to stderr on domain failure.
	FailureMarker = "Failed to"

	// DefaultScriptPath is the operations entry point, relative to the binary's directory.
	DefaultScriptPath = "scripts/godot_operations.gd"

	// ConfigBaseName is the config file name without extension.
	ConfigBaseName = "gdmcp"
)

// Environment variables.
const (
	EnvGodotPath   = "GODOT_PATH"
	EnvDebug       = "DEBUG"
	EnvConfig      = "GDMCP_CONFIG"
	EnvMetricsAddr = "GDMCP_METRICS_ADDR"
)

// Engine command-line flags.
const (
	FlagVersion  = "--version"
	FlagHeadless = "--headless"
	FlagPath     = "--path"
	FlagScript   = "--script"
	FlagDebug    = "--debug-godot"
	FlagEditor   = "-e"
	FlagRunDebug = "-d"
)

const (
	// DefaultCacheTTL is how long an executable validation verdict is trusted.
	DefaultCacheTTL = time.Hour

	// DefaultVersionTimeout bounds every version query.
	DefaultVersionTimeout = 10 * time.Second

	// DefaultMaxBufferedLines caps each stream buffer of the supervised process.
	DefaultMaxBufferedLines = 10000

	// DefaultMetricsRetention is the number of metrics kept per operation name.
	DefaultMetricsRetention = 100
)
