package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/matrix"
)

// ExampleFromProducer builds a matrix row by row from a counting producer.
func ExampleFromProducer() {
	m, err := matrix.FromProducer(3, 6, matrix.Count(0))
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := m.Get(2, 5)
	_, ok := m.Get(10, 2)
	fmt.Println(v, ok)
	// Output:
	// 17 false
}

// ExampleDense_Transpose shows the column-by-column layout of the result.
func ExampleDense_Transpose() {
	m, _ := matrix.FromProducer(2, 3, matrix.Count(0))
	fmt.Print(m.Transpose())
	// Output:
	// [0, 3]
	// [1, 4]
	// [2, 5]
}

// ExampleDense_Row iterates a lazy row view.
func ExampleDense_Row() {
	m, _ := matrix.FromProducer(3, 6, matrix.Count(0))
	row, _ := m.Row(1)
	for _, v := range row.All() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 6 7 8 9 10 11
}

// ExampleDense_SwapRows swaps the two rows of a 2×2 matrix.
func ExampleDense_SwapRows() {
	m, _ := matrix.FromRows([][]int{{0, 1}, {2, 3}})
	_ = m.SwapRows(0, 1)
	fmt.Print(m)
	// Output:
	// [2, 3]
	// [0, 1]
}

// ExampleDense_ApplyMut doubles every element in place.
func ExampleDense_ApplyMut() {
	m, _ := matrix.Identity[int](2)
	m.ApplyMut(func(v *int) { *v *= 2 })
	fmt.Print(m)
	// Output:
	// [2, 0]
	// [0, 2]
}
