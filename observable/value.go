// Package observable provides reactive value holders that notify subscribers
// on every write. UI-facing components (async state, notification center,
// theme preference) expose their state through these so any number of views
// can follow the same value.
package observable

import "sync"

// Value holds a T and notifies subscribers when it is written.
//
// Subscribers run synchronously on the writing goroutine, in subscription
// order, outside the internal lock. A subscriber may therefore read the value
// or cancel its own subscription, but a write from inside a subscriber is
// delivered to every subscriber again before the outer Set returns.
type Value[T any] struct {
	mu     sync.RWMutex
	v      T
	subs   []subscriber[T]
	nextID uint64
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// New returns a Value initialised to v.
func New[T any](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.v
}

// Set stores v and notifies subscribers.
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	o.v = v
	subs := o.snapshot()
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Update replaces the value with fn(current) atomically with respect to other
// writers, then notifies subscribers with the result.
func (o *Value[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	o.v = fn(o.v)
	v := o.v
	subs := o.snapshot()
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
	return v
}

// UpdateIf is Update for writes that may turn out to be no-ops: fn returns
// the new value and whether it changed. Nothing is stored and nobody is
// notified when changed is false.
func (o *Value[T]) UpdateIf(fn func(T) (T, bool)) (T, bool) {
	o.mu.Lock()
	v, changed := fn(o.v)
	if !changed {
		cur := o.v
		o.mu.Unlock()
		return cur, false
	}
	o.v = v
	subs := o.snapshot()
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
	return v, true
}

// Subscribe registers fn to be called after every write. The returned func
// removes the subscription; calling it more than once is harmless.
func (o *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscriber[T]{id: id, fn: fn})
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

// snapshot must be called with mu held.
func (o *Value[T]) snapshot() []subscriber[T] {
	if len(o.subs) == 0 {
		return nil
	}
	out := make([]subscriber[T], len(o.subs))
	copy(out, o.subs)
	return out
}
