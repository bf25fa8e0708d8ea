package locator

import (
	"path/filepath"
	"strings"

	"go.trai.ch/gdmcp/internal/core/domain"
)

// Hints are the remediation steps reported when no executable validates.
var Hints = []string{
	"Install Godot from https://godotengine.org/download",
	"Set the GODOT_PATH environment variable: export GODOT_PATH=/path/to/godot",
	"Ensure Godot is in your system PATH",
	"For snap: sudo snap install godot --classic",
}

// PlatformCandidates returns the search list for goos, bare command token first.
// Home-relative entries are expanded with getenv.
func PlatformCandidates(goos string, getenv func(string) string) []string {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	candidates := []string{domain.BareExecutable}
	switch goos {
	case "darwin":
		home := getenv("HOME")
		candidates = append(candidates,
			"/Applications/Godot.app/Contents/MacOS/Godot",
			"/Applications/Godot_4.app/Contents/MacOS/Godot",
			home+"/Applications/Godot.app/Contents/MacOS/Godot",
			home+"/Applications/Godot_4.app/Contents/MacOS/Godot",
			home+"/Library/Application Support/Steam/steamapps/common/Godot Engine/Godot.app/Contents/MacOS/Godot",
		)
	case "windows":
		candidates = append(candidates,
			`C:\Program Files\Godot\Godot.exe`,
			`C:\Program Files (x86)\Godot\Godot.exe`,
			`C:\Program Files\Godot_4\Godot.exe`,
			`C:\Program Files (x86)\Godot_4\Godot.exe`,
			getenv("USERPROFILE")+`\Godot\Godot.exe`,
		)
	case "linux":
		candidates = append(candidates,
			"/usr/bin/godot",
			"/usr/local/bin/godot",
			"/snap/bin/godot",
			getenv("HOME")+"/.local/bin/godot",
		)
	}
	return candidates
}

// normalize cleans a filesystem path. The bare command token is returned unchanged.
func normalize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == domain.BareExecutable {
		return path
	}
	return filepath.Clean(path)
}

func notFoundDetail(tried []string) string {
	var b strings.Builder
	b.WriteString("Tried the following locations:")
	for _, c := range tried {
		b.WriteString("\n  - " + c)
	}
	b.WriteString("\nSolutions:")
	for i, h := range Hints {
		b.WriteString("\n  " + string(rune('1'+i)) + ". " + h)
	}
	return b.String()
}
