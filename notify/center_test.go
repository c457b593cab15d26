package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimers records scheduled callbacks so tests decide when time passes.
type fakeTimers struct {
	mu      sync.Mutex
	now     time.Duration
	pending []fakeTimer
}

type fakeTimer struct {
	at time.Duration
	f  func()
}

func (ft *fakeTimers) AfterFunc(d time.Duration, f func()) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.pending = append(ft.pending, fakeTimer{at: ft.now + d, f: f})
}

// Advance moves the clock and fires every timer that became due.
func (ft *fakeTimers) Advance(d time.Duration) {
	ft.mu.Lock()
	ft.now += d
	var due []func()
	rest := ft.pending[:0]
	for _, p := range ft.pending {
		if p.at <= ft.now {
			due = append(due, p.f)
		} else {
			rest = append(rest, p)
		}
	}
	ft.pending = rest
	ft.mu.Unlock()

	for _, f := range due {
		f()
	}
}

func newFakeCenter() (*Center, *fakeTimers) {
	ft := &fakeTimers{}
	return New(WithAfterFunc(ft.AfterFunc)), ft
}

func TestShow_FirstIDInFreshProcessIsOne(t *testing.T) {
	resetIDsForTest()
	c, _ := newFakeCenter()

	id := c.Show("Saved", Success, DefaultDuration)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, []Notification{{ID: 1, Type: Success, Message: "Saved", Duration: 5 * time.Second}}, c.Notifications())
}

func TestShow_SavedExpiresAfterFiveSeconds(t *testing.T) {
	c, ft := newFakeCenter()
	id := c.Success("Saved")

	ft.Advance(4999 * time.Millisecond)
	require.Len(t, c.Notifications(), 1)
	assert.Equal(t, id, c.Notifications()[0].ID)

	ft.Advance(time.Millisecond)
	assert.Empty(t, c.Notifications())
}

func TestShow_IDsStrictlyIncreaseAcrossCenters(t *testing.T) {
	a, _ := newFakeCenter()
	b, _ := newFakeCenter()
	var last int64
	for i := 0; i < 10; i++ {
		c := a
		if i%2 == 1 {
			c = b
		}
		id := c.Info("m")
		assert.Greater(t, id, last)
		last = id
	}
}

func TestShow_ZeroOrNegativeDurationNeverExpires(t *testing.T) {
	c, ft := newFakeCenter()
	c.Warning("sticky", 0)
	c.Error("also sticky", -1)

	ft.Advance(24 * time.Hour)
	assert.Len(t, c.Notifications(), 2)
	assert.Empty(t, ft.pending)
}

func TestShow_PreservesCreationOrder(t *testing.T) {
	c, ft := newFakeCenter()
	a := c.Info("a", 3*time.Second)
	b := c.Info("b", 1*time.Second)
	d := c.Info("c", 2*time.Second)

	ft.Advance(time.Second)
	ids := func() []int64 {
		var out []int64
		for _, n := range c.Notifications() {
			out = append(out, n.ID)
		}
		return out
	}
	assert.NotContains(t, ids(), b)
	assert.Equal(t, []int64{a, d}, ids())

	c.Show("e", Info, 0)
	assert.Equal(t, a, c.Notifications()[0].ID)
	assert.Equal(t, "e", c.Notifications()[2].Message)
}

func TestShow_ConcurrentListOrderMatchesIDs(t *testing.T) {
	c, _ := newFakeCenter()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Show("x", Info, 0)
			}
		}()
	}
	wg.Wait()

	list := c.Notifications()
	require.Len(t, list, 800)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}

func TestRemove_ManualThenTimerIsNoop(t *testing.T) {
	c, ft := newFakeCenter()
	id := c.Success("done")
	keep := c.Info("keep", 0)

	c.Remove(id)
	require.Len(t, c.Notifications(), 1)

	var notified int
	c.Subscribe(func([]Notification) { notified++ })
	ft.Advance(DefaultDuration)

	require.Len(t, c.Notifications(), 1)
	assert.Equal(t, keep, c.Notifications()[0].ID)
	assert.Zero(t, notified, "late timer must not notify")
}

func TestRemove_UnknownIDIsSilent(t *testing.T) {
	c, _ := newFakeCenter()
	c.Info("x", 0)
	var notified int
	c.Subscribe(func([]Notification) { notified++ })

	c.Remove(123456789)
	assert.Equal(t, 1, c.Len())
	assert.Zero(t, notified)
}

func TestConvenienceWrappersSetType(t *testing.T) {
	c, _ := newFakeCenter()
	c.Success("s")
	c.Error("e")
	c.Warning("w")
	c.Info("i", time.Second)

	got := c.Notifications()
	require.Len(t, got, 4)
	assert.Equal(t, []Type{Success, Error, Warning, Info}, []Type{got[0].Type, got[1].Type, got[2].Type, got[3].Type})
	assert.Equal(t, DefaultDuration, got[0].Duration)
	assert.Equal(t, time.Second, got[3].Duration)
}

func TestSubscribersObserveSharedList(t *testing.T) {
	c, _ := newFakeCenter()
	var lengths []int
	cancel := c.Subscribe(func(ns []Notification) { lengths = append(lengths, len(ns)) })

	id := c.Info("a", 0)
	c.Info("b", 0)
	c.Remove(id)
	cancel()
	c.Info("c", 0)

	assert.Equal(t, []int{1, 2, 1}, lengths)
}

func TestNotificationsReturnsCopy(t *testing.T) {
	c, _ := newFakeCenter()
	c.Info("a", 0)
	snap := c.Notifications()
	snap[0].Message = "mutated"
	assert.Equal(t, "a", c.Notifications()[0].Message)
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestRealTimerExpiry(t *testing.T) {
	c := New()
	c.Info("short", 20*time.Millisecond)
	require.Equal(t, 1, c.Len())
	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
}
