package scheduler

import (
	"context"
	"sync"
)

// resultBuffer is an unbounded multi-producer queue of results. Several
// goroutines may consume from it but every result is delivered once.
type resultBuffer[T any] struct {
	mu     sync.Mutex
	items  queue[TaskResult[T]]
	closed bool
	ready  *signal
}

func newResultBuffer[T any]() *resultBuffer[T] {
	return &resultBuffer[T]{ready: newSignal()}
}

// push reports false when the buffer no longer accepts results.
func (b *resultBuffer[T]) push(r TaskResult[T]) bool {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return false
	}
	b.items.Push(r)
	b.mu.Unlock()

	b.ready.Broadcast()
	return true
}

func (b *resultBuffer[T]) tryPop() (TaskResult[T], bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.items.Len() > 0 {
		return b.items.Pop(), true, nil
	}
	if b.closed {
		return TaskResult[T]{}, false, ErrChannelClosed
	}
	return TaskResult[T]{}, false, nil
}

func (b *resultBuffer[T]) pop(ctx context.Context) (TaskResult[T], error) {
	for {
		// grab the wake channel before checking so a push in between is not missed
		wake := b.ready.C()
		r, ok, err := b.tryPop()
		if err != nil {
			return r, err
		}
		if ok {
			return r, nil
		}

		select {
		case <-wake:
		case <-ctx.Done():
			return TaskResult[T]{}, ctx.Err()
		}
	}
}

func (b *resultBuffer[T]) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.items.Len()
}

func (b *resultBuffer[T]) close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.ready.Broadcast()
}
