package dynemit_test

import (
	"fmt"

	dynemit "github.com/cwbudde/algo-dynemit"
)

func ExampleAddF32() {
	a := []float32{1, 2, 3, 4, 5}
	b := []float32{10, 20, 30, 40, 50}
	dst := make([]float32, len(a))

	dynemit.AddF32(dst, a, b)
	fmt.Println(dst)
	// Output: [11 22 33 44 55]
}

func ExampleFeatures() {
	for _, f := range dynemit.Features() {
		fmt.Println(f)
	}
	// Output:
	// core
	// vector_add
	// vector_mul
	// vector_sub
	// vector_mul_f64
}
