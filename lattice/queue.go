package lattice

import "container/heap"

// Queue is a max-priority queue ordered by an injected three-way comparator:
// Pop returns the element that compares greatest. Ties come out in an
// unspecified order, so comparators used for deterministic output should be
// total.
type Queue[T any] struct {
	items *items[T]
}

// NewQueue returns a queue ordered by cmp, seeded with xs.
// Complexity: O(len(xs)).
func NewQueue[T any](cmp func(a, b T) int, xs ...T) *Queue[T] {
	it := &items[T]{data: append([]T(nil), xs...), cmp: cmp}
	heap.Init(it)

	return &Queue[T]{items: it}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.items.Len() }

// Push adds x. Complexity: O(log n).
func (q *Queue[T]) Push(x T) { heap.Push(q.items, x) }

// Pop removes and returns the greatest element; false when empty.
// Complexity: O(log n).
func (q *Queue[T]) Pop() (T, bool) {
	if q.items.Len() == 0 {
		var zero T
		return zero, false
	}

	return heap.Pop(q.items).(T), true
}

// items adapts a slice to heap.Interface; Less is inverted to get a max-heap.
type items[T any] struct {
	data []T
	cmp  func(a, b T) int
}

func (it *items[T]) Len() int           { return len(it.data) }
func (it *items[T]) Less(i, j int) bool { return it.cmp(it.data[i], it.data[j]) > 0 }
func (it *items[T]) Swap(i, j int)      { it.data[i], it.data[j] = it.data[j], it.data[i] }

func (it *items[T]) Push(x any) { it.data = append(it.data, x.(T)) }

func (it *items[T]) Pop() any {
	old := it.data
	n := len(old)
	x := old[n-1]
	var zero T
	old[n-1] = zero
	it.data = old[:n-1]

	return x
}
