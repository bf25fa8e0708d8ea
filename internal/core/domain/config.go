package domain

import "time"

// Config holds the server settings after file and environment overrides are applied.
type Config struct {
	// GodotPath is the explicit executable. A non-empty value that fails validation is fatal.
	GodotPath string
	// ScriptPath is the operations entry point passed with --script.
	ScriptPath string
	// Debug enables debug-level logging.
	Debug bool
	// DebugGodot appends --debug-godot to every operation command.
	DebugGodot bool
	// JSONLogs switches the logger to JSON records.
	JSONLogs bool
	// CacheTTL is the executable validation cache lifetime.
	CacheTTL time.Duration
	// VersionTimeout bounds version queries.
	VersionTimeout time.Duration
	// MaxBufferedLines caps each supervised stream buffer. Zero means unbounded.
	MaxBufferedLines int
	// MetricsRetention is the number of metrics kept per operation name.
	MetricsRetention int
	// MetricsAddr, when set, serves Prometheus metrics on this address.
	MetricsAddr string
	// WatchExecutable enables invalidation when the resolved executable changes on disk.
	WatchExecutable bool
	// Source is the config file that was loaded, or "" for defaults.
	Source string
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		ScriptPath:       DefaultScriptPath,
		DebugGodot:       true,
		CacheTTL:         DefaultCacheTTL,
		VersionTimeout:   DefaultVersionTimeout,
		MaxBufferedLines: DefaultMaxBufferedLines,
		MetricsRetention: DefaultMetricsRetention,
		WatchExecutable:  true,
	}
}
