// Package locator finds and validates the engine executable.
package locator

import (
	"context"
	"os"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures a Locator.
type Options struct {
	// Override is the explicit executable. When set and invalid, Resolve fails fatally.
	Override string
	// VersionTimeout bounds each validation run.
	VersionTimeout time.Duration
	// CacheTTL is the lifetime of validation verdicts.
	CacheTTL time.Duration
	// GOOS selects the platform candidate list. Empty means runtime.GOOS.
	GOOS string
	// Getenv expands home-relative candidates. Nil means os.Getenv.
	Getenv func(string) string
	// Candidates replaces the platform list when non-nil.
	Candidates []string
}

// watchRegistrar is told about every newly resolved executable.
type watchRegistrar interface {
	Watch(key string) error
	Close() error
}

// Locator implements ports.Locator.
type Locator struct {
	runner     ports.CommandRunner
	cache      ports.ValidationCache
	logger     ports.Logger
	override   string
	timeout    time.Duration
	ttl        time.Duration
	candidates []string

	mu       sync.Mutex
	resolved string
	watcher  watchRegistrar
}

// New creates a Locator that validates executables with runner and memoizes verdicts in cache.
func New(runner ports.CommandRunner, cache ports.ValidationCache, logger ports.Logger, opts Options) *Locator {
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.VersionTimeout <= 0 {
		opts.VersionTimeout = domain.DefaultVersionTimeout
	}
	candidates := opts.Candidates
	if candidates == nil {
		candidates = PlatformCandidates(opts.GOOS, opts.Getenv)
	}

	return &Locator{
		runner:     runner,
		cache:      cache,
		logger:     logger,
		override:   opts.Override,
		timeout:    opts.VersionTimeout,
		ttl:        opts.CacheTTL,
		candidates: candidates,
	}
}

// Resolve returns a validated executable, detecting one if needed.
func (l *Locator) Resolve(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.resolved != "" {
		if l.validate(ctx, l.resolved) {
			l.logger.Debug("using existing godot path: " + l.resolved)
			return l.resolved, nil
		}
		l.resolved = ""
	}

	if l.override != "" {
		path := normalize(l.override)
		l.logger.Debug("checking GODOT_PATH: " + path)
		if !l.validate(ctx, path) {
			return "", zerr.With(
				zerr.Wrap(domain.ErrInvalidOverride, "path does not exist or is not executable"),
				"path", l.override,
			)
		}
		l.adopt(path)
		return path, nil
	}

	for _, candidate := range l.candidates {
		path := normalize(candidate)
		if l.validate(ctx, path) {
			l.logger.Debug("found godot at: " + path)
			l.adopt(path)
			return path, nil
		}
	}

	return "", zerr.With(
		zerr.Wrap(domain.ErrExecutableNotFound, notFoundDetail(l.candidates)),
		"candidates", l.candidates,
	)
}

// SetPath validates path and adopts it. An invalid path is reported and leaves the locator unresolved.
func (l *Locator) SetPath(ctx context.Context, path string) bool {
	path = normalize(path)
	if path == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.validate(ctx, path) {
		l.logger.Warn("ignoring invalid godot path: " + path)
		l.resolved = ""
		return false
	}
	l.logger.Debug("godot path set to: " + path)
	l.adopt(path)
	return true
}

// Candidates returns the platform search list.
func (l *Locator) Candidates() []string {
	return append([]string(nil), l.candidates...)
}

// Invalidate drops the cached verdict for path and, if it is the resolved executable,
// clears the resolution so the next Resolve detects again.
func (l *Locator) Invalidate(path string) {
	l.cache.Evict(path)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.resolved == path {
		l.logger.Debug("godot executable changed on disk: " + path)
		l.resolved = ""
	}
}

// SetWatcher registers w to be told about resolved executables.
func (l *Locator) SetWatcher(w watchRegistrar) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.watcher = w
}

// Close releases the watcher.
func (l *Locator) Close() error {
	l.mu.Lock()
	w := l.watcher
	l.watcher = nil
	l.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close()
}

// adopt records path as resolved. Callers hold mu.
func (l *Locator) adopt(path string) {
	if l.resolved == path {
		return
	}
	l.resolved = path
	if l.watcher != nil {
		if err := l.watcher.Watch(path); err != nil {
			l.logger.Debug("cannot watch godot executable: " + err.Error())
		}
	}
}

// validate reports whether path exists (or is the bare token) and answers a version query.
func (l *Locator) validate(ctx context.Context, path string) bool {
	if valid, fromCache := l.cache.Check(path); fromCache {
		l.logger.Debug("using cached validation for path: " + path)
		return valid
	}

	valid := l.probe(ctx, path)
	l.cache.Store(path, valid, l.ttl)
	return valid
}

func (l *Locator) probe(ctx context.Context, path string) bool {
	if path != domain.BareExecutable {
		if _, err := os.Stat(path); err != nil {
			l.logger.Debug("path does not exist: " + path)
			return false
		}
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	res, err := l.runner.Exec(ctx, path, []string{domain.FlagVersion})
	if err != nil {
		l.logger.Debug("invalid godot path: " + path + ": " + err.Error())
		return false
	}
	if res.ExitCode != 0 {
		l.logger.Debug("invalid godot path: " + path + ": version query exited non-zero")
		return false
	}
	return true
}
