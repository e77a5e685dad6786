package optlock

// NotifyFull registers fn to run exactly once on the next transition into
// the Full state. If the slot already holds a value, fn runs synchronously
// before NotifyFull returns and nothing is left registered, so there is no
// window in which an already-delivered value goes unnoticed. A later
// NotifyFull call before the transition supersedes the registration; a
// superseded fn is never called.
//
// fn runs on whichever goroutine performs the transition and must not
// block. Registration spins while a guard is held but never parks.
func (l *Lock[T]) NotifyFull(fn func()) {
	for i := 0; ; i++ {
		g, ok := l.TryLock()
		if !ok {
			spinWait(i)
			continue
		}
		if g.Filled() {
			g.Unlock()
			fn()
			return
		}
		l.readWaker = fn
		g.Unlock()
		return
	}
}

// NotifyEmpty registers fn to run exactly once on the next transition into
// the Empty state, with the same contract as NotifyFull: synchronous
// dispatch if the slot is already empty, and later registrations supersede
// earlier ones.
func (l *Lock[T]) NotifyEmpty(fn func()) {
	for i := 0; ; i++ {
		g, ok := l.TryLock()
		if !ok {
			spinWait(i)
			continue
		}
		if !g.Filled() {
			g.Unlock()
			fn()
			return
		}
		l.writeWaker = fn
		g.Unlock()
		return
	}
}
