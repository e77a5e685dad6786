package optlock

// Once is a write-once cell built on a Lock: the slot starts empty, the
// first writer performs the only Empty to Full transition, and every later
// write attempt fails because the slot is already full. The zero value is
// an empty cell ready for use.
type Once[T any] struct {
	l Lock[T]
}

// Get returns the published value, if any. It never blocks; it reports
// false while the cell is empty or an initializer is mid-flight.
func (o *Once[T]) Get() (T, bool) {
	// The value is never reassigned after the full bit is published, so a
	// plain read behind the atomic state load is safe.
	if o.l.State() == Full {
		return o.l.value, true
	}
	var zero T
	return zero, false
}

// Set publishes value if the cell is still empty, reporting whether this
// call won. It fails if a value is already present or another goroutine is
// mid-initialization; the caller keeps value on failure.
func (o *Once[T]) Set(value T) bool {
	g, ok := o.l.TryLock()
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

// GetOrInit returns the published value, running init to produce it if the
// cell is empty. Exactly one caller runs init; competing callers spin
// through the short initialization window and then read the winner's value.
func (o *Once[T]) GetOrInit(init func() T) T {
	for i := 0; ; i++ {
		if v, ok := o.Get(); ok {
			return v
		}
		if g, ok := o.l.TryLock(); ok {
			if v, ok := g.Value(); ok {
				g.Unlock()
				return v
			}
			v := init()
			g.Replace(v)
			g.Unlock()
			return v
		}
		spinWait(i)
	}
}
