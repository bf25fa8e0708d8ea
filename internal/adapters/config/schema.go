package config

// fileConfig is the on-disk shape shared by gdmcp.yaml and gdmcp.toml.
// Pointer fields distinguish an absent key from its zero value.
type fileConfig struct {
	GodotPath        *string `yaml:"godot_path" toml:"godot_path"`
	ScriptPath       *string `yaml:"script_path" toml:"script_path"`
	Debug            *bool   `yaml:"debug" toml:"debug"`
	DebugGodot       *bool   `yaml:"debug_godot" toml:"debug_godot"`
	JSONLogs         *bool   `yaml:"json_logs" toml:"json_logs"`
	CacheTTL         *string `yaml:"cache_ttl" toml:"cache_ttl"`
	VersionTimeout   *string `yaml:"version_timeout" toml:"version_timeout"`
	MaxBufferedLines *int    `yaml:"max_buffered_lines" toml:"max_buffered_lines"`
	MetricsRetention *int    `yaml:"metrics_retention" toml:"metrics_retention"`
	MetricsAddr      *string `yaml:"metrics_addr" toml:"metrics_addr"`
	WatchExecutable  *bool   `yaml:"watch_executable" toml:"watch_executable"`
}
