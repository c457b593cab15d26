package theme

import (
	"context"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// SystemSource reports the OS (or terminal) color-scheme preference.
type SystemSource interface {
	// PrefersDark returns the current preference.
	PrefersDark() bool
	// Watch calls fn with every change until ctx is done. It must not block.
	Watch(ctx context.Context, fn func(dark bool))
}

// TerminalSource derives the preference from the terminal background as
// reported by termenv, re-checking on an interval.
type TerminalSource struct {
	interval time.Duration
	detect   func() bool
}

// NewTerminalSource polls every interval; interval <= 0 means 5s.
func NewTerminalSource(interval time.Duration) *TerminalSource {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &TerminalSource{interval: interval, detect: termenv.HasDarkBackground}
}

func (s *TerminalSource) PrefersDark() bool { return s.detect() }

func (s *TerminalSource) Watch(ctx context.Context, fn func(dark bool)) {
	last := s.detect()
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if cur := s.detect(); cur != last {
					last = cur
					fn(cur)
				}
			}
		}
	}()
}

// StaticSource is a SystemSource whose value is set by hand. Useful in
// tests and where no OS signal exists.
type StaticSource struct {
	mu       sync.Mutex
	dark     bool
	watchers map[int]func(bool)
	next     int
}

// NewStaticSource returns a StaticSource starting at dark.
func NewStaticSource(dark bool) *StaticSource {
	return &StaticSource{dark: dark, watchers: make(map[int]func(bool))}
}

func (s *StaticSource) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

func (s *StaticSource) Watch(ctx context.Context, fn func(dark bool)) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.watchers[id] = fn
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}()
}

// Set changes the preference and notifies watchers synchronously.
func (s *StaticSource) Set(dark bool) {
	s.mu.Lock()
	if s.dark == dark {
		s.mu.Unlock()
		return
	}
	s.dark = dark
	fns := make([]func(bool), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(dark)
	}
}
