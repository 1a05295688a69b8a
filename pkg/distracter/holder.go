package distracter

import "time"

// resultHolder is a single-slot cell between an asynchronous producer and
// one synchronous consumer. The producer publishes at most once; a publish
// arriving after get has returned its default is a no-op.
type resultHolder[T any] struct {
	ch chan T
}

func newResultHolder[T any]() *resultHolder[T] {
	return &resultHolder[T]{ch: make(chan T, 1)}
}

// set publishes the value. Second and later publishes are dropped.
func (h *resultHolder[T]) set(v T) {
	select {
	case h.ch <- v:
	default:
	}
}

// get blocks for the published value up to timeout and returns
// defaultValue on deadline.
func (h *resultHolder[T]) get(defaultValue T, timeout time.Duration) T {
	select {
	case v := <-h.ch:
		return v
	case <-time.After(timeout):
		return defaultValue
	}
}
