package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/DevIBlogistica/frontend-tratativas/observable"
)

// Preference is the live theme setting. After every completed mutation the
// persisted value and the class applied to the document are equal.
type Preference struct {
	store Store
	doc   ClassList

	mu         sync.Mutex // serializes mutations
	theme      *observable.Value[Theme]
	systemDark *observable.Value[bool]
	stop       context.CancelFunc
}

// New loads the persisted theme (Default when absent or unrecognized),
// applies it to doc and starts following source. source may be nil when no
// system signal is available.
func New(store Store, doc ClassList, source SystemSource) (*Preference, error) {
	if store == nil || doc == nil {
		return nil, fmt.Errorf("theme: store and document are required")
	}

	initial := Default
	raw, ok, err := store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	if ok {
		if t, perr := Parse(raw); perr == nil {
			initial = t
		} else {
			log.Warn().Str("value", raw).Msg("ignoring unknown persisted theme")
		}
	}

	p := &Preference{
		store:      store,
		doc:        doc,
		theme:      observable.New(initial),
		systemDark: observable.New(false),
	}
	if err := p.apply(initial); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.stop = cancel
	if source != nil {
		p.systemDark.Set(source.PrefersDark())
		source.Watch(ctx, func(dark bool) {
			log.Debug().Bool("dark", dark).Msg("system color scheme changed")
			p.systemDark.Set(dark)
		})
	}
	return p, nil
}

// Theme returns the current theme.
func (p *Preference) Theme() Theme { return p.theme.Get() }

// SystemDark reports the last known OS preference. It never changes the
// theme by itself.
func (p *Preference) SystemDark() bool { return p.systemDark.Get() }

// Toggle flips between light and dark, applies and persists the result.
func (p *Preference) Toggle() (Theme, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	next := p.theme.Get().Opposite()
	if err := p.apply(next); err != nil {
		return p.theme.Get(), err
	}
	return next, nil
}

// Set applies and persists t.
func (p *Preference) Set(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("unknown theme %q", t)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.apply(t)
}

// OnChange subscribes to theme changes.
func (p *Preference) OnChange(fn func(Theme)) (cancel func()) {
	return p.theme.Subscribe(fn)
}

// OnSystemChange subscribes to OS preference changes.
func (p *Preference) OnSystemChange(fn func(dark bool)) (cancel func()) {
	return p.systemDark.Subscribe(fn)
}

// Close stops following the system source.
func (p *Preference) Close() {
	if p.stop != nil {
		p.stop()
	}
}

// apply persists t first so a failed write leaves document and store as
// they were.
func (p *Preference) apply(t Theme) error {
	if err := p.store.Set(StorageKey, string(t)); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	p.doc.Remove(string(Light), string(Dark))
	p.doc.Add(string(t))
	p.theme.Set(t)
	return nil
}
