package notify

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/DevIBlogistica/frontend-tratativas/observable"
)

// lastID is shared by every Center so ids are unique for the lifetime of
// the process. It is never reset.
var lastID atomic.Int64

func nextID() int64 { return lastID.Add(1) }

var (
	shownTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tratativas_notify",
			Name:      "shown_total",
			Help:      "Notifications added to a center.",
		},
		[]string{"type"},
	)

	removedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tratativas_notify",
			Name:      "removed_total",
			Help:      "Notifications taken out of a center.",
		},
		[]string{"reason"},
	)
)

// AfterFunc schedules f to run once after d. time.AfterFunc satisfies it.
type AfterFunc func(d time.Duration, f func())

// Option configures a Center.
type Option func(*Center)

// WithAfterFunc replaces the timer used for expiry.
func WithAfterFunc(fn AfterFunc) Option {
	return func(c *Center) { c.afterFunc = fn }
}

// Center holds an ordered list of notifications. The list is kept in
// creation order and removal never reorders the remaining entries.
type Center struct {
	list      *observable.Value[[]Notification]
	afterFunc AfterFunc
}

// New returns an empty Center. Most code should use Default; separate
// centers are for tests and for injecting a center explicitly.
func New(opts ...Option) *Center {
	c := &Center{
		list: observable.New[[]Notification](nil),
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCenter = New()

// Default returns the single shared center every part of the program emits
// to and observes.
func Default() *Center { return defaultCenter }

// Show appends a notification and returns its id. When duration is
// positive the notification is removed after that long; the timer is not
// cancelled by an earlier Remove, and its late firing is a no-op.
func (c *Center) Show(message string, typ Type, duration time.Duration) int64 {
	n := Notification{
		Type:     typ,
		Message:  message,
		Duration: duration,
	}

	// The id is taken under the list lock so list order matches id order.
	c.list.Update(func(cur []Notification) []Notification {
		n.ID = nextID()
		next := make([]Notification, len(cur), len(cur)+1)
		copy(next, cur)
		return append(next, n)
	})
	shownTotal.WithLabelValues(string(typ)).Inc()
	log.Debug().Int64("id", n.ID).Str("type", string(typ)).Dur("duration", duration).Msg("notification shown")

	if n.Expires() {
		c.afterFunc(duration, func() { c.remove(n.ID, "expired") })
	}
	return n.ID
}

// Remove deletes the notification with the given id. Unknown ids are
// ignored.
func (c *Center) Remove(id int64) {
	c.remove(id, "manual")
}

func (c *Center) remove(id int64, reason string) {
	_, changed := c.list.UpdateIf(func(cur []Notification) ([]Notification, bool) {
		idx := -1
		for i, n := range cur {
			if n.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return cur, false
		}
		next := make([]Notification, 0, len(cur)-1)
		next = append(next, cur[:idx]...)
		return append(next, cur[idx+1:]...), true
	})
	if changed {
		removedTotal.WithLabelValues(reason).Inc()
	}
}

// Success shows a success notification. duration defaults to
// DefaultDuration; only the first value is used.
func (c *Center) Success(message string, duration ...time.Duration) int64 {
	return c.Show(message, Success, pick(duration))
}

// Error shows an error notification.
func (c *Center) Error(message string, duration ...time.Duration) int64 {
	return c.Show(message, Error, pick(duration))
}

// Warning shows a warning notification.
func (c *Center) Warning(message string, duration ...time.Duration) int64 {
	return c.Show(message, Warning, pick(duration))
}

// Info shows an info notification.
func (c *Center) Info(message string, duration ...time.Duration) int64 {
	return c.Show(message, Info, pick(duration))
}

func pick(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return DefaultDuration
	}
	return d[0]
}

// Notifications returns a copy of the active notifications in creation
// order.
func (c *Center) Notifications() []Notification {
	cur := c.list.Get()
	out := make([]Notification, len(cur))
	copy(out, cur)
	return out
}

// Len returns the number of active notifications.
func (c *Center) Len() int { return len(c.list.Get()) }

// Subscribe calls fn with the full list after every change. The slice must
// not be modified.
func (c *Center) Subscribe(fn func([]Notification)) (cancel func()) {
	return c.list.Subscribe(fn)
}
