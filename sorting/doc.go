// Package sorting provides classic in-place comparison sorts over slices.
//
// Overview:
//
//   - Insertion: adjacent swaps toward the front; O(n²), stable, O(1) extra space.
//   - Bubble:    floats the extreme element from the right end each pass; O(n²), stable.
//   - Merge:     top-down split with copied halves; O(n log n), stable, O(n) extra space.
//   - Quick:     Lomuto partition around the last element; O(n log n) average,
//     O(n²) worst case on already-sorted input, not stable.
//   - Heap:      build a heap then repeatedly move the root to the end;
//     O(n log n), not stable, O(1) extra space.
//
// Every algorithm exists in two flavours:
//
//	Quick(data, asc)               // T satisfies constraints.Ordered
//	QuickFunc(data, cmp, asc)      // any T, cmp follows the cmp.Compare convention
//
// asc=false sorts in descending order. Empty and single-element slices are left
// untouched. Sort dispatches by Algorithm using functional options:
//
//	sorting.Sort(data, sorting.WithAlgorithm(sorting.AlgoMerge), sorting.WithDescending())
//
// Error handling (sentinel errors):
//
//   - ErrUnknownAlgorithm: returned by ParseAlgorithm and Sort for names or
//     values that do not map to an implemented algorithm.
package sorting
