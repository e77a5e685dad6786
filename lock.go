package optlock

import "sync/atomic"

// Lock guards a slot holding at most one value of type T. The state word
// doubles as the mutex: whichever goroutine clears the locked bit owns the
// slot storage until it unlocks. The zero value is an empty, unlocked slot
// ready for use.
type Lock[T any] struct {
	state atomic.Uint32

	lockSema  uint32
	readSema  uint32
	writeSema uint32

	// The fields below are guarded by the locked bit of state. Only the
	// goroutine holding a Guard may touch them.
	readWaiters  uint32
	writeWaiters uint32
	readWaker    func()
	writeWaker   func()
	value        T
}

// New returns a Lock already holding value.
func New[T any](value T) *Lock[T] {
	l := &Lock[T]{value: value}
	l.state.Store(stateFull)
	return l
}

// TryLock attempts to acquire exclusive access to the slot with a single
// compare-and-swap. It fails with no side effects if another guard is held;
// contention is not an error and callers choose their own retry policy.
// See Lock for the parking version.
func (l *Lock[T]) TryLock() (Guard[T], bool) {
	s := l.state.Load()
	if s&stateLocked != 0 || !l.state.CompareAndSwap(s, s|stateLocked) {
		return Guard[T]{}, false
	}
	return Guard[T]{l: l, filled: s&stateFull != 0}, true
}

// TryTake removes and returns the stored value. It fails if the slot is
// empty or another guard is currently held.
func (l *Lock[T]) TryTake() (T, bool) {
	g, ok := l.TryLock()
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := g.Take()
	g.Unlock()
	return v, ok
}

// TryPut stores value into an empty slot. It fails if the slot already
// holds a value or another guard is currently held; on failure the caller
// keeps value.
func (l *Lock[T]) TryPut(value T) bool {
	g, ok := l.TryLock()
	if !ok {
		return false
	}
	if g.Filled() {
		g.Unlock()
		return false
	}
	g.Replace(value)
	g.Unlock()
	return true
}

// State returns a best-effort snapshot of the slot.
func (l *Lock[T]) State() State {
	s := l.state.Load()
	switch {
	case s&stateLocked != 0:
		return Locked
	case s&stateFull != 0:
		return Full
	default:
		return Empty
	}
}

func (l *Lock[T]) String() string {
	return "Lock(" + l.State().String() + ")"
}
