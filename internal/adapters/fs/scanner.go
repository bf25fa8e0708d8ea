package fs

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
	"go.trai.ch/zerr"
)

// structureError is reported in place of counts when a project cannot be scanned.
const structureError = "Failed to get project structure"

var (
	sceneExts  = map[string]bool{"tscn": true}
	scriptExts = map[string]bool{"gd": true, "gdscript": true, "cs": true}
	assetExts  = map[string]bool{
		"png": true, "jpg": true, "jpeg": true, "webp": true, "svg": true,
		"ttf": true, "wav": true, "mp3": true, "ogg": true,
	}
)

// Scanner implements ports.ProjectScanner.
type Scanner struct {
	walker *Walker
	logger ports.Logger
}

// NewScanner creates a Scanner.
func NewScanner(walker *Walker, logger ports.Logger) *Scanner {
	return &Scanner{walker: walker, logger: logger}
}

// IsProject reports whether dir holds the project marker file.
func (s *Scanner) IsProject(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.ProjectMarker))
	return err == nil && !info.IsDir()
}

// Exists reports whether path exists.
func (s *Scanner) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FindProjects lists dir itself when it is a project, then its subdirectory projects.
// Without recursion every immediate subdirectory is checked. With recursion hidden
// directories are skipped and projects are not descended into.
func (s *Scanner) FindProjects(dir string, recursive bool) ([]domain.ProjectEntry, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrDirectoryNotFound, "cannot list projects"), "directory", dir)
	}

	projects := []domain.ProjectEntry{}
	if s.IsProject(dir) {
		projects = append(projects, domain.ProjectEntry{Path: dir, Name: filepath.Base(dir)})
	}
	return s.findIn(dir, recursive, projects), nil
}

func (s *Scanner) findIn(dir string, recursive bool, projects []domain.ProjectEntry) []domain.ProjectEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("error searching directory " + dir + ": " + err.Error())
		return projects
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if recursive && isHidden(entry.Name()) {
			continue
		}

		sub := filepath.Join(dir, entry.Name())
		switch {
		case s.IsProject(sub):
			projects = append(projects, domain.ProjectEntry{Path: sub, Name: entry.Name()})
		case recursive:
			projects = s.findIn(sub, true, projects)
		}
	}
	return projects
}

// Structure counts the project's files by category, skipping hidden entries.
func (s *Scanner) Structure(projectPath string) domain.ProjectStructure {
	var st domain.ProjectStructure

	for path, err := range s.walker.WalkFiles(projectPath) {
		if err != nil {
			s.logger.Debug("error getting project structure: " + err.Error())
			return domain.ProjectStructure{Error: structureError}
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		switch {
		case sceneExts[ext]:
			st.Scenes++
		case scriptExts[ext]:
			st.Scripts++
		case assetExts[ext]:
			st.Assets++
		default:
			st.Other++
		}
	}
	return st
}

// ProjectName reads config/name from the project file, falling back to the directory name.
func (s *Scanner) ProjectName(projectPath string) string {
	fallback := filepath.Base(projectPath)

	f, err := os.Open(filepath.Join(projectPath, domain.ProjectMarker))
	if err != nil {
		return fallback
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(sc.Text()), "=")
		if !ok || strings.TrimSpace(key) != "config/name" {
			continue
		}
		if name, err := strconv.Unquote(strings.TrimSpace(value)); err == nil && name != "" {
			return name
		}
	}
	return fallback
}
