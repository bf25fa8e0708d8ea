package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrExecutableNotFound is returned when no engine executable validates on this system.
	ErrExecutableNotFound = zerr.New("godot executable not found")

	// ErrInvalidOverride is returned when an explicitly configured executable path fails validation.
	ErrInvalidOverride = zerr.New("GODOT_PATH is set but invalid")

	// ErrNoActiveProcess is returned when the supervisor is asked about a process while idle.
	ErrNoActiveProcess = zerr.New("no active godot process")

	// ErrMissingParameter is returned when a required tool argument is absent or empty.
	ErrMissingParameter = zerr.New("missing required parameter")

	// ErrUnsafePath is returned when a path argument contains a parent-directory segment.
	ErrUnsafePath = zerr.New("path contains a parent-directory segment")

	// ErrNotAProject is returned when a directory lacks the project marker file.
	ErrNotAProject = zerr.New("not a valid godot project")

	// ErrFileNotFound is returned when a referenced project file does not exist.
	ErrFileNotFound = zerr.New("file does not exist")

	// ErrDirectoryNotFound is returned when a directory to scan does not exist.
	ErrDirectoryNotFound = zerr.New("directory does not exist")

	// ErrUnsupportedVersion is returned when the engine is too old for the requested operation.
	ErrUnsupportedVersion = zerr.New("engine version does not support this operation")

	// ErrSpawnFailed is returned when an external process could not be started at all.
	ErrSpawnFailed = zerr.New("failed to start process")

	// ErrOperationFailed is recorded when the operations script reports a failure on stderr.
	ErrOperationFailed = zerr.New("godot operation failed")

	// ErrVersionQueryFailed is returned when the executable does not answer a version query.
	ErrVersionQueryFailed = zerr.New("failed to query godot version")

	// ErrUnknownTool is returned when a request names a tool that is not in the catalog.
	ErrUnknownTool = zerr.New("unknown tool")

	// ErrToolFailed is returned by one-shot CLI calls whose envelope reports an error.
	ErrToolFailed = zerr.New("tool reported an error")

	// ErrMalformedJSON is returned when a JSON value cannot be decoded.
	ErrMalformedJSON = zerr.New("malformed JSON value")

	// ErrInvalidArguments is returned when tool arguments are not a JSON object.
	ErrInvalidArguments = zerr.New("tool arguments must be a JSON object")

	// ErrMappingNotInverse is returned when the reverse parameter table disagrees with the forward table.
	ErrMappingNotInverse = zerr.New("reverse parameter mapping is not the inverse of the forward mapping")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigFormat is returned when the config file extension is not yaml or toml.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config file format")
)

// IsFatal reports whether err is a configuration error that must stop the server.
func IsFatal(err error) bool {
	return errors.Is(err, ErrExecutableNotFound) || errors.Is(err, ErrInvalidOverride)
}
