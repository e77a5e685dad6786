package optlock

// Guard represents exclusive access to a Lock's slot. It is returned by a
// successful TryLock or Lock call. Unlock must be called exactly once on
// every exit path; deferring it immediately after acquisition guarantees
// the slot is never left locked. A Guard must not be copied or used after
// Unlock.
type Guard[T any] struct {
	l      *Lock[T]
	filled bool
}

// Filled reports whether the slot currently holds a value.
func (g *Guard[T]) Filled() bool { return g.filled }

// Value returns the stored value without removing it.
func (g *Guard[T]) Value() (T, bool) {
	if !g.filled {
		var zero T
		return zero, false
	}
	return g.l.value, true
}

// Replace stores value into the slot, returning the previous value if the
// slot held one.
func (g *Guard[T]) Replace(value T) (T, bool) {
	prev, had := g.l.value, g.filled
	g.l.value = value
	g.filled = true
	return prev, had
}

// Take removes and returns the stored value, leaving the slot empty.
func (g *Guard[T]) Take() (T, bool) {
	if !g.filled {
		var zero T
		return zero, false
	}
	v := g.l.value
	var zero T
	g.l.value = zero
	g.filled = false
	return v, true
}

// Unlock releases the guard, publishing the slot's new state. For the state
// produced it wakes at most one goroutine parked in Take or Put, runs the
// registered waker if any, and hands the lock to at most one goroutine
// parked in Lock. Calling Unlock a second time panics.
func (g *Guard[T]) Unlock() {
	l := g.l
	if l == nil {
		panic("optlock: unlock of released guard")
	}
	g.l = nil

	// Waiter and waker bookkeeping happens before the state transition,
	// while this goroutine still holds the lock.
	var sema *uint32
	var notify func()
	if g.filled {
		if l.readWaiters > 0 {
			l.readWaiters--
			sema = &l.readSema
		}
		if l.readWaker != nil {
			notify = l.readWaker
			l.readWaker = nil
		}
	} else {
		if l.writeWaiters > 0 {
			l.writeWaiters--
			sema = &l.writeSema
		}
		if l.writeWaker != nil {
			notify = l.writeWaker
			l.writeWaker = nil
		}
	}

	for {
		s := l.state.Load()
		next := s &^ (stateLocked | stateFull)
		if g.filled {
			next |= stateFull
		}
		handoff := next&waiterMask != 0
		if handoff {
			next -= lockWaiter
		}
		if l.state.CompareAndSwap(s, next) {
			if handoff {
				runtime_Semrelease(&l.lockSema, false, 0)
			}
			break
		}
	}

	if sema != nil {
		runtime_Semrelease(sema, false, 0)
	}
	if notify != nil {
		notify()
	}
}
