// Package optlock provides a lock guarding a single optional value.
//
// A Lock[T] is a slot that holds at most one value of type T, guarded by one
// word of atomic state. The state word is the entire mutual exclusion
// mechanism: acquiring the slot is a single compare-and-swap, and releasing
// it publishes the new contents to the next acquirer. The zero value is an
// empty, unlocked slot ready for use.
//
// Consider handing a result from a producer goroutine to a consumer. A
// channel works, but it allocates, and a buffered channel cannot tell a
// late producer that its value was discarded. With a Lock the hand-off is
// one word of state and the loser of a race keeps its value:
//
//	var slot optlock.Lock[Result]
//
//	func produce(r Result) {
//		slot.Put(r) // blocks while a previous result is unclaimed
//	}
//
//	func consume() Result {
//		return slot.Take() // blocks until a result arrives
//	}
//
// Three layers share the same state machine. The try operations (TryLock,
// TryPut, TryTake) never block and never allocate, and remain usable from
// the most constrained callers. The blocking operations (Lock, Put, Take)
// spin briefly and then park the goroutine on a runtime semaphore, waking
// at most one parked goroutine per release. The notification operations
// (NotifyFull, NotifyEmpty) register a single-shot callback to run on the
// next matching transition, for callers that integrate with their own
// scheduler instead of parking a goroutine.
package optlock
