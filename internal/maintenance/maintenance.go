// Package maintenance holds the process-wide maintenance mode and its
// optional file-backed live toggle.
//
// The gate middleware in the api package reads the mode once per request and
// carries it in the request context, so every downstream check sees the same
// value for the duration of that request.
package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Mode is the three-state maintenance flag.
type Mode string

const (
	Off  Mode = "off"
	Soft Mode = "soft"
	Hard Mode = "hard"
)

// ParseMode normalizes a mode word. Empty means Off; anything unknown is an
// error so configuration typos fail fast.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Off:
		return Off, nil
	case Soft:
		return Soft, nil
	case Hard:
		return Hard, nil
	}
	return Off, fmt.Errorf("maintenance: unknown mode %q", s)
}

// State is the process-wide flag. Reads and writes are atomic; the zero value
// reads as Off.
type State struct {
	mode atomic.Value
}

// NewState seeds the flag with the configured mode.
func NewState(mode Mode) *State {
	s := &State{}
	s.Set(mode)
	return s
}

// Mode returns the current flag value.
func (s *State) Mode() Mode {
	v, ok := s.mode.Load().(Mode)
	if !ok {
		return Off
	}
	return v
}

// Set replaces the flag value.
func (s *State) Set(m Mode) {
	s.mode.Store(m)
}

// Watch reloads the flag from a control file whenever it changes, allowing
// operators to flip maintenance mode without restarting the process. The file
// holds a single mode word. Watch blocks until ctx is done.
func Watch(ctx context.Context, s *State, path string, logger *slog.Logger) error {
	reload := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			// A missing control file leaves the current mode untouched.
			return
		}
		mode, err := ParseMode(string(data))
		if err != nil {
			logger.Warn("invalid maintenance control file", slog.String("path", path), slog.String("error", err.Error()))
			return
		}
		if mode != s.Mode() {
			logger.Info("maintenance mode changed", slog.String("mode", string(mode)))
			s.Set(mode)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("maintenance: watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors and deploy tooling replace files rather
	// than writing in place.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("maintenance: watch %s: %w", dir, err)
	}

	reload()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name == path && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("maintenance watcher error", slog.String("error", err.Error()))
		}
	}
}

type ctxKey struct{}

// NewContext stores the per-request mode snapshot.
func NewContext(ctx context.Context, m Mode) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// FromContext returns the mode snapshot taken at request entry, or Off when
// the request never passed the gate.
func FromContext(ctx context.Context) Mode {
	if m, ok := ctx.Value(ctxKey{}).(Mode); ok {
		return m
	}
	return Off
}
