package ports

import "go.trai.ch/gdmcp/internal/core/domain"

// ProjectScanner inspects project directories on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=projects.go -destination=mocks/mock_projects.go -package=mocks
type ProjectScanner interface {
	// IsProject reports whether dir contains the project marker file.
	IsProject(dir string) bool

	// Exists reports whether path exists.
	Exists(path string) bool

	// FindProjects lists projects in dir, descending into subdirectories when recursive.
	FindProjects(dir string, recursive bool) ([]domain.ProjectEntry, error)

	// Structure counts the project's files by category.
	Structure(projectPath string) domain.ProjectStructure

	// ProjectName returns the configured project name, falling back to the directory name.
	ProjectName(projectPath string) string
}
