package sorting

import "golang.org/x/exp/constraints"

// Merge sorts data in place by top-down merge sort.
// Complexity: O(n log n) time, O(n) auxiliary space. Stable.
func Merge[T constraints.Ordered](data []T, asc bool) {
	MergeFunc(data, compareOrdered[T], asc)
}

// MergeFunc is Merge with a caller-supplied comparator.
func MergeFunc[T any](data []T, cmp CompareFunc[T], asc bool) {
	if len(data) < 2 {
		return
	}
	mergeSort(data, 0, len(data)-1, directed(cmp, asc))
}

// mergeSort sorts the inclusive range data[p..r].
func mergeSort[T any](data []T, p, r int, after func(a, b T) bool) {
	if p >= r {
		return
	}
	q := p + (r-p)/2
	mergeSort(data, p, q, after)
	mergeSort(data, q+1, r, after)
	merge(data, p, q, r, after)
}

// merge combines the sorted runs data[p..q] and data[q+1..r].
// Ties take from the left run, which is what makes the sort stable.
func merge[T any](data []T, p, q, r int, after func(a, b T) bool) {
	left := append([]T(nil), data[p:q+1]...)
	right := append([]T(nil), data[q+1:r+1]...)

	i, j, k := 0, 0, p
	for i < len(left) && j < len(right) {
		if !after(left[i], right[j]) {
			data[k] = left[i]
			i++
		} else {
			data[k] = right[j]
			j++
		}
		k++
	}
	k += copy(data[k:], left[i:])
	copy(data[k:], right[j:])
}
