package optlock

import "runtime"

// Spin policy before parking. Critical sections are a handful of
// instructions, so a short spin usually wins; waiters yield to the
// scheduler periodically so spinning does not starve the holder.
const (
	spinCount    = 64
	goschedEvery = 16
)

func spinWait(i int) {
	if i%goschedEvery == goschedEvery-1 {
		runtime.Gosched()
	}
}

// Lock acquires exclusive access to the slot, parking the calling goroutine
// until the guard is available. There is no timeout; callers needing a
// bounded wait should loop over TryLock with their own deadline.
func (l *Lock[T]) Lock() Guard[T] {
	for i := 0; i < spinCount; i++ {
		if g, ok := l.TryLock(); ok {
			return g
		}
		spinWait(i)
	}
	for {
		s := l.state.Load()
		if s&stateLocked == 0 {
			if l.state.CompareAndSwap(s, s|stateLocked) {
				return Guard[T]{l: l, filled: s&stateFull != 0}
			}
			continue
		}
		// Park. The holder's Unlock hands off by decrementing the waiter
		// count and releasing the semaphore once, so every parked waiter
		// is matched by exactly one wake.
		if l.state.CompareAndSwap(s, s+lockWaiter) {
			runtime_Semacquire(&l.lockSema)
		}
	}
}

// Take blocks until the slot holds a value, then removes and returns it.
func (l *Lock[T]) Take() T {
	for {
		for i := 0; i < spinCount; i++ {
			if v, ok := l.TryTake(); ok {
				return v
			}
			spinWait(i)
		}
		// Registration and publication are both performed under the lock,
		// so a value put after we park is guaranteed to wake us.
		g := l.Lock()
		if v, ok := g.Take(); ok {
			g.Unlock()
			return v
		}
		l.readWaiters++
		g.Unlock()
		runtime_Semacquire(&l.readSema)
	}
}

// Put blocks until the slot is empty, then stores value.
func (l *Lock[T]) Put(value T) {
	for {
		for i := 0; i < spinCount; i++ {
			if l.TryPut(value) {
				return
			}
			spinWait(i)
		}
		g := l.Lock()
		if !g.Filled() {
			g.Replace(value)
			g.Unlock()
			return
		}
		l.writeWaiters++
		g.Unlock()
		runtime_Semacquire(&l.writeSema)
	}
}
