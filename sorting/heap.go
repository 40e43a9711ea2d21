package sorting

import "golang.org/x/exp/constraints"

// Heap sorts data in place by heap sort.
// Ascending order builds a max-heap, descending order a min-heap; the root is
// then repeatedly swapped to the end of the shrinking heap.
// Complexity: O(n log n) time, O(1) space. Not stable.
func Heap[T constraints.Ordered](data []T, asc bool) {
	HeapFunc(data, compareOrdered[T], asc)
}

// HeapFunc is Heap with a caller-supplied comparator.
func HeapFunc[T any](data []T, cmp CompareFunc[T], asc bool) {
	after := directed(cmp, asc)
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, after)
	}
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data, 0, end, after)
	}
}

// siftDown restores the heap property below i within data[:size]. The root of
// the heap is the element that belongs last in the requested order.
func siftDown[T any](data []T, i, size int, after func(a, b T) bool) {
	for {
		top := i
		l, r := 2*i+1, 2*i+2
		if l < size && after(data[l], data[top]) {
			top = l
		}
		if r < size && after(data[r], data[top]) {
			top = r
		}
		if top == i {
			return
		}
		data[i], data[top] = data[top], data[i]
		i = top
	}
}
