package seq_test

import (
	"fmt"

	"github.com/gustavodias/fnkit/seq"
)

func ExampleMap() {
	fmt.Println(seq.Map([]int{1, 2, 3}, func(v int) int { return v * 10 }))
	// Output:
	// [10 20 30]
}

func ExampleTake() {
	src := []string{"a", "b", "c", "d"}
	fmt.Println(seq.Take(src, 2))
	fmt.Println(seq.Skip(src, 2))
	// Output:
	// [a b]
	// [c d]
}

func ExampleFind() {
	found := seq.Find([]int{3, 8, 5}, func(v int) bool { return v%2 == 0 })
	fmt.Println(found)
	// Output:
	// Some(8)
}

func ExampleCompact() {
	fmt.Println(seq.Compact([]int{0, 7, 0, 9}))
	// Output:
	// [7 9]
}
