package ports

import (
	"context"
	"time"
)

// Locator resolves the engine executable.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Resolve returns a validated executable path.
	//
	// It fails with domain.ErrInvalidOverride when an explicit override does not validate,
	// and with domain.ErrExecutableNotFound when no candidate validates.
	Resolve(ctx context.Context) (string, error)

	// SetPath validates path and adopts it as the resolved executable.
	// It returns false and leaves the locator unresolved when path is invalid.
	SetPath(ctx context.Context, path string) bool

	// Candidates returns the platform search list.
	Candidates() []string

	// Close releases the executable watcher, if any.
	Close() error
}

// ValidationCache memoizes executable validation verdicts with a time-to-live.
type ValidationCache interface {
	// Check returns the cached verdict for path. fromCache is false when no live entry exists.
	Check(path string) (valid, fromCache bool)
	// Store records a verdict, replacing any existing entry.
	Store(path string, valid bool, ttl time.Duration)
	// Evict removes the entry for path.
	Evict(path string)
}
