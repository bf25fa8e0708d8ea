package domain

import "strings"

// ProjectEntry is a project discovered by list_projects.
type ProjectEntry struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// ProjectStructure counts project files by category.
type ProjectStructure struct {
	Scenes  int    `json:"scenes"`
	Scripts int    `json:"scripts"`
	Assets  int    `json:"assets"`
	Other   int    `json:"other"`
	Error   string `json:"error,omitempty"`
}

// ProjectInfo is the payload of get_project_info.
type ProjectInfo struct {
	Name         string           `json:"name"`
	Path         string           `json:"path"`
	GodotVersion string           `json:"godotVersion"`
	Structure    ProjectStructure `json:"structure"`
}

// ProcessOutput is a snapshot of the supervised process's line buffers.
type ProcessOutput struct {
	Output []string `json:"output"`
	Errors []string `json:"errors"`
}

// Result is the captured outcome of a one-shot engine invocation that ran to completion.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Failed reports whether stderr carries the operations script's failure marker.
func (r Result) Failed() bool {
	return strings.Contains(r.Stderr, FailureMarker)
}
