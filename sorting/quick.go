package sorting

import "golang.org/x/exp/constraints"

// Quick sorts data in place by quicksort with Lomuto partitioning.
// Complexity: O(n log n) average, O(n²) worst case; O(log n) average stack. Not stable.
func Quick[T constraints.Ordered](data []T, asc bool) {
	QuickFunc(data, compareOrdered[T], asc)
}

// QuickFunc is Quick with a caller-supplied comparator.
func QuickFunc[T any](data []T, cmp CompareFunc[T], asc bool) {
	quickSort(data, 0, len(data)-1, directed(cmp, asc))
}

// quickSort sorts the inclusive range data[left..right].
func quickSort[T any](data []T, left, right int, after func(a, b T) bool) {
	if left >= right {
		return
	}
	p := partition(data, left, right, after)
	quickSort(data, left, p-1, after)
	quickSort(data, p+1, right, after)
}

// partition moves every element that does not belong after the pivot
// data[right] to the front of the range, places the pivot right behind them
// and returns its final index.
func partition[T any](data []T, left, right int, after func(a, b T) bool) int {
	pivot := data[right]
	i := left
	for j := left; j < right; j++ {
		if !after(data[j], pivot) {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[right] = data[right], data[i]

	return i
}
