// Package async wraps a single asynchronous operation with observable
// loading, error and data state, the way a view tracks a pending API call.
package async

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/DevIBlogistica/frontend-tratativas/client"
	"github.com/DevIBlogistica/frontend-tratativas/observable"
)

// State holds the three observables a view binds to.
//
// Data is never written by Execute; callers store results through
// Hooks.OnSuccess or from Execute's return value. Error is cleared when a
// call starts and set only when that call fails. Loading is true while the
// most recently started call is in flight.
type State[T any] struct {
	Data    *observable.Value[T]
	Error   *observable.Value[*client.ErrorInfo]
	Loading *observable.Value[bool]

	mu  sync.Mutex // orders token checks with Loading/Error writes
	seq uint64     // token of the most recently started call
}

// NewState returns a State whose Data starts at defaultValue.
func NewState[T any](defaultValue T) *State[T] {
	return &State[T]{
		Data:    observable.New(defaultValue),
		Error:   observable.New[*client.ErrorInfo](nil),
		Loading: observable.New(false),
	}
}

// Snapshot is a point-in-time copy of a State.
type Snapshot[T any] struct {
	Data    T
	Error   *client.ErrorInfo
	Loading bool
}

// Snapshot reads all three values.
func (s *State[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{Data: s.Data.Get(), Error: s.Error.Get(), Loading: s.Loading.Get()}
}

// Hooks are optional side effects run by Execute.
type Hooks[R any] struct {
	OnSuccess func(result R)
	OnError   func(err *client.ErrorInfo)
}

// Operation is the call Execute awaits.
type Operation[R any] func(ctx context.Context) (R, error)

// Execute runs op and tracks it on s.
//
// On success it calls hooks.OnSuccess and returns (result, true). On failure
// it stores the normalized error in s.Error, passes the same value to
// hooks.OnError and returns (zero, false); the error is never returned to
// the caller. Loading is reset as the last step even if a hook panics; the
// panic itself is not recovered.
//
// Overlapping calls on one State are allowed. Only the most recently
// started call writes Error or clears Loading, so a slow earlier call that
// finishes last cannot flip Loading off or overwrite the newer call's error.
// Every call still returns its own result and runs its own hooks.
//
// Subscribers of Loading and Error are notified while s is locked and must
// not call Execute on the same State synchronously.
func Execute[T, R any](ctx context.Context, s *State[T], op Operation[R], hooks Hooks[R]) (R, bool) {
	s.mu.Lock()
	s.seq++
	token := s.seq
	s.Loading.Set(true)
	s.Error.Set(nil)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.seq == token {
			s.Loading.Set(false)
		}
	}()

	result, err := op(ctx)
	if err != nil {
		apiErr := client.NormalizeError(err)
		log.Debug().Err(err).Str("code", apiErr.Code).Msg("async operation failed")

		s.mu.Lock()
		if s.seq == token {
			s.Error.Set(apiErr)
		}
		s.mu.Unlock()

		if hooks.OnError != nil {
			hooks.OnError(apiErr)
		}
		var zero R
		return zero, false
	}

	if hooks.OnSuccess != nil {
		hooks.OnSuccess(result)
	}
	return result, true
}

// Run is Execute for operations whose result type matches the State's data
// type and should be stored in Data on success.
func Run[T any](ctx context.Context, s *State[T], op Operation[T], hooks Hooks[T]) (T, bool) {
	onSuccess := hooks.OnSuccess
	hooks.OnSuccess = func(v T) {
		s.Data.Set(v)
		if onSuccess != nil {
			onSuccess(v)
		}
	}
	return Execute(ctx, s, op, hooks)
}
