// Package algokit is a small collection of generic data structures and
// classic algorithms written for reading as much as for use.
//
// Everything lives in subpackages:
//
//	matrix/   dense row-major Dense[T] with bounded access, row/column views,
//	          transpose, row/column swaps and element-wise apply
//	sorting/  insertion, bubble, merge, quick and heap sort, plus a Sort dispatcher
//	stack/    LIFO Stack[T]
//	queue/    FIFO Queue[T]
//	heap/     binary min/max Heap[T]
//
// The library packages do not log, read configuration, or spawn goroutines;
// failures are reported through sentinel errors that callers match with
// errors.Is. The cmd/algokit binary wires them to a command line, with YAML
// configuration (internal/config) and hclog output (internal/logging).
//
// Quick start:
//
//	m, _ := matrix.FromProducer(2, 3, matrix.Count(0))
//	fmt.Print(m.Transpose()) // [0, 3]\n[1, 4]\n[2, 5]\n
//
//	xs := []int{-1, 5, 4, 1, 0}
//	_ = sorting.Sort(xs, sorting.WithAlgorithm(sorting.AlgoQuick))
package algokit
