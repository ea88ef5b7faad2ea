package scheduler

import (
	"cmp"
	"container/heap"
	"slices"
	"sync"
)

// taskQueue is guarded by the pool mutex.
type taskQueue interface {
	PushBatch(tasks []Task)
	Pop() Task
	Len() int
}

func newTaskQueue(o Ordering) taskQueue {
	if o == OrderingGlobal {
		return &priorityQueue{}
	}
	return &queue[Task]{}
}

// sortBatch orders a batch by priority, highest first. Ties keep their
// submission order.
func sortBatch(tasks []Task) []Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b Task) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	return sorted
}

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	var zero T
	old[0] = zero
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

func (q *queue[T]) PushBatch(items []T) {
	*q = append(*q, items...)
}

type heapItem struct {
	task Task
	seq  uint64
}

type taskHeap []heapItem

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].task.Priority != h[j].task.Priority {
		return h[i].task.Priority > h[j].task.Priority
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(heapItem)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

type priorityQueue struct {
	items taskHeap
	seq   uint64
}

func (q *priorityQueue) PushBatch(tasks []Task) {
	for _, t := range tasks {
		heap.Push(&q.items, heapItem{task: t, seq: q.seq})
		q.seq++
	}
}

func (q *priorityQueue) Pop() Task {
	return heap.Pop(&q.items).(heapItem).task
}

func (q *priorityQueue) Len() int { return q.items.Len() }

// signal wakes every goroutine waiting on the channel returned by C.
type signal struct {
	mu sync.Mutex
	c  chan struct{}
}

func newSignal() *signal {
	return &signal{c: make(chan struct{})}
}

func (s *signal) C() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c
}

func (s *signal) Broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	close(s.c)
	s.c = make(chan struct{})
}
