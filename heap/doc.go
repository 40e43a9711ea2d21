// Package heap provides a generic binary heap stored in a slice.
//
// A Heap is either a min-heap (smallest value at the root) or a max-heap
// (largest value at the root). Children of index i live at 2i+1 and 2i+2.
//
// Construction:
//
//   - NewMin / NewMax: empty heaps for ordered types.
//   - FromSliceMin / FromSliceMax: adopt a slice and heapify it bottom-up in O(n).
//   - NewFunc: custom priority, where less(a, b) means a is closer to the root.
//
// Complexity:
//
//	Push, Pop: O(log n). Peek, Len: O(1). FromSlice*: O(n).
//
// Error handling (sentinel errors):
//
//   - ErrEmpty: Pop or Peek on an empty heap.
package heap
