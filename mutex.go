package optlock

// Mutex is a Lock that is expected to always hold a value, giving
// conventional try-mutex semantics over the same state machine. Removing
// the value with Extract poisons the mutex: later lock attempts report
// ErrPoisoned instead of handing out an empty slot.
type Mutex[T any] struct {
	l Lock[T]
}

// NewMutex returns a Mutex guarding value.
func NewMutex[T any](value T) *Mutex[T] {
	m := &Mutex[T]{}
	m.l.value = value
	m.l.state.Store(stateFull)
	return m
}

// TryLock attempts to acquire the mutex without blocking. It returns
// ErrUnavailable if another guard is held and ErrPoisoned if the value was
// extracted.
func (m *Mutex[T]) TryLock() (MutexGuard[T], error) {
	g, ok := m.l.TryLock()
	if !ok {
		return MutexGuard[T]{}, ErrUnavailable
	}
	if !g.Filled() {
		g.Unlock()
		return MutexGuard[T]{}, ErrPoisoned
	}
	return MutexGuard[T]{g: g}, nil
}

// Lock acquires the mutex, parking the calling goroutine until the guard is
// available. It returns ErrPoisoned if the value was extracted.
func (m *Mutex[T]) Lock() (MutexGuard[T], error) {
	g := m.l.Lock()
	if !g.Filled() {
		g.Unlock()
		return MutexGuard[T]{}, ErrPoisoned
	}
	return MutexGuard[T]{g: g}, nil
}

// Poisoned reports whether the guarded value was removed with Extract.
func (m *Mutex[T]) Poisoned() bool {
	return m.l.state.Load()&stateFull == 0
}

// MutexGuard is exclusive access to a Mutex's value. Release it with Unlock
// or Extract, exactly once.
type MutexGuard[T any] struct {
	g Guard[T]
}

// Get returns the guarded value.
func (g *MutexGuard[T]) Get() T {
	v, _ := g.g.Value()
	return v
}

// Set replaces the guarded value, returning the previous one.
func (g *MutexGuard[T]) Set(value T) T {
	prev, _ := g.g.Replace(value)
	return prev
}

// Extract removes the guarded value and releases the mutex, leaving it
// poisoned.
func (g *MutexGuard[T]) Extract() T {
	v, _ := g.g.Take()
	g.g.Unlock()
	return v
}

// Unlock releases the mutex.
func (g *MutexGuard[T]) Unlock() {
	g.g.Unlock()
}
