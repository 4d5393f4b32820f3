package fp_test

import (
	"fmt"

	"github.com/gustavodias/fnkit/fp"
)

func ExamplePipe() {
	add := func(v int) int { return v + 1 }
	mul := func(v int) int { return v * 2 }
	fn := fp.Pipe(add, mul)
	fmt.Println(fn(2))
	// Output:
	// 6
}

func ExampleApply() {
	fmt.Println(fp.Apply(2,
		func(v int) int { return v + 1 },
		func(v int) int { return v * 2 },
	))
	// Output:
	// 6
}

func ExamplePartial() {
	scale := func(factor, v int) int { return factor * v }
	double := fp.Partial(scale, 2)
	fmt.Println(double(21))
	// Output:
	// 42
}

func ExampleOnce() {
	greet := fp.Once(func(name string) string { return "hello " + name })
	fmt.Println(greet("ana"))
	fmt.Println(greet("bia"))
	// Output:
	// Some(hello ana)
	// None
}
