package app

import (
	"path/filepath"
	"strings"

	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	installSolutions = []string{
		"Ensure Godot is installed correctly",
		"Check if the GODOT_PATH environment variable is set correctly",
		"Verify the project path is accessible",
	}
	projectPathSolutions = []string{"Provide a valid path to a Godot project directory"}
	unsafePathSolution   = `Provide a valid path without ".." or other potentially unsafe characters`
	unsafePathsSolution  = `Provide valid paths without ".." or other potentially unsafe characters`
	notAProjectSolutions = []string{
		"Ensure the path points to a directory containing a project.godot file",
		"Use list_projects to find valid Godot projects",
	}
	uidSolutions = []string{
		"Upgrade to Godot 4.4 or later to use UIDs",
		"Use resource paths instead of UIDs for this version of Godot",
	}
)

// isSafePath rejects any path containing a parent-directory sequence.
func isSafePath(path string) bool {
	return !strings.Contains(path, "..")
}

// missingField returns the first of fields that args does not supply as a non-empty string.
func missingField(args *domain.Params, fields ...string) (string, bool) {
	for _, f := range fields {
		if args.String(f) == "" {
			return f, true
		}
	}
	return "", false
}

// reject logs why a call was refused and returns the envelope shown to the client.
func (a *App) reject(err error, message string, solutions ...string) domain.Response {
	a.logger.Debug("rejected call: " + err.Error())
	return domain.ErrorResponse(message, solutions...)
}

// requireFields reports the first missing field of a multi-field tool.
func (a *App) requireFields(args *domain.Params, solution string, fields ...string) (domain.Response, bool) {
	field, missing := missingField(args, fields...)
	if !missing {
		return domain.Response{}, true
	}
	err := zerr.With(zerr.Wrap(domain.ErrMissingParameter, field), "field", field)
	return a.reject(err, "Missing required parameter: "+field, solution), false
}

// requireProjectPath checks the projectPath argument of single-field project tools.
func (a *App) requireProjectPath(args *domain.Params) (string, domain.Response, bool) {
	projectPath := args.String(domain.ParamProjectPath)
	if projectPath == "" {
		err := zerr.With(zerr.Wrap(domain.ErrMissingParameter, domain.ParamProjectPath), "field", domain.ParamProjectPath)
		return "", a.reject(err, "Project path is required", projectPathSolutions...), false
	}
	if !isSafePath(projectPath) {
		err := zerr.With(zerr.Wrap(domain.ErrUnsafePath, projectPath), "field", domain.ParamProjectPath)
		return "", a.reject(err, "Invalid project path", unsafePathSolution), false
	}
	return projectPath, domain.Response{}, true
}

// requireSafe rejects the call when any of fields holds an unsafe path.
func (a *App) requireSafe(args *domain.Params, fields ...string) (domain.Response, bool) {
	for _, f := range fields {
		if path := args.String(f); !isSafePath(path) {
			err := zerr.With(zerr.Wrap(domain.ErrUnsafePath, path), "field", f)
			return a.reject(err, "Invalid path", unsafePathsSolution), false
		}
	}
	return domain.Response{}, true
}

func (a *App) requireProject(projectPath string) (domain.Response, bool) {
	if a.scanner.IsProject(projectPath) {
		return domain.Response{}, true
	}
	err := zerr.With(zerr.Wrap(domain.ErrNotAProject, projectPath), "path", projectPath)
	return a.reject(err, "Not a valid Godot project: "+projectPath, notAProjectSolutions...), false
}

// requireFile checks that rel exists inside the project.
func (a *App) requireFile(projectPath, rel, message string, solutions ...string) (domain.Response, bool) {
	path := filepath.Join(projectPath, rel)
	if a.scanner.Exists(path) {
		return domain.Response{}, true
	}
	err := zerr.With(zerr.Wrap(domain.ErrFileNotFound, rel), "path", path)
	return a.reject(err, message+rel, solutions...), false
}
