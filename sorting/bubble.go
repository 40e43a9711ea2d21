package sorting

import "golang.org/x/exp/constraints"

// Bubble sorts data in place by bubble sort.
// Complexity: O(n²) time, O(1) space. Stable.
func Bubble[T constraints.Ordered](data []T, asc bool) {
	BubbleFunc(data, compareOrdered[T], asc)
}

// BubbleFunc is Bubble with a caller-supplied comparator.
//
// Pass i walks from the right end down to i+1, so after it data[:i+1] holds the
// i+1 leading elements in final order.
func BubbleFunc[T any](data []T, cmp CompareFunc[T], asc bool) {
	after := directed(cmp, asc)
	n := len(data)
	for i := 0; i < n; i++ {
		for j := n - 1; j > i; j-- {
			if after(data[j-1], data[j]) {
				data[j-1], data[j] = data[j], data[j-1]
			}
		}
	}
}
