package optlock

// State word layout. The low two bits track the slot itself and the
// remaining bits count goroutines parked waiting for the lock, so a single
// compare-and-swap can release the slot and hand off to a waiter at once.
const (
	stateFull   uint32 = 1 << 0 // the slot storage holds a value
	stateLocked uint32 = 1 << 1 // a guard is held
	lockWaiter  uint32 = 1 << 2 // one goroutine parked waiting for the lock

	waiterMask = ^(stateFull | stateLocked)
)

// State is a point-in-time snapshot of a Lock. A snapshot may be stale by
// the time the caller observes it and must not be used to make correctness
// decisions; it exists for diagnostics and heuristics.
type State uint32

const (
	// Empty means the slot held no value and no guard at snapshot time.
	Empty State = iota
	// Locked means a guard was held at snapshot time.
	Locked
	// Full means the slot held a value and no guard at snapshot time.
	Full
)

func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Locked:
		return "Locked"
	case Full:
		return "Full"
	default:
		return "Unknown"
	}
}
