package fp_test

import (
	"testing"

	"github.com/gustavodias/fnkit/fp"
)

func TestPipeComposeApply(t *testing.T) {
	double := func(i int) int { return i * 2 }
	inc := func(i int) int { return i + 1 }

	piped := fp.Pipe(double, inc)
	if piped(3) != 7 {
		t.Fatalf("pipe result mismatch")
	}
	composed := fp.Compose(double, inc)
	if composed(3) != 8 {
		t.Fatalf("compose result mismatch")
	}
	if fp.Apply(1, inc, double) != 4 {
		t.Fatalf("apply result mismatch")
	}
}

func TestPipeVariadicAndSliceShapes(t *testing.T) {
	stages := []func(int) int{
		func(i int) int { return i + 1 },
		func(i int) int { return i * 5 },
	}
	fromSlice := fp.Pipe(stages...)
	fromList := fp.Pipe(stages[0], stages[1])
	if fromSlice(1) != fromList(1) {
		t.Fatalf("call shapes diverged")
	}
	if fromSlice(1) != 10 {
		t.Fatalf("unexpected pipeline result %d", fromSlice(1))
	}
}

func TestPipe2Pipe3(t *testing.T) {
	length := func(s string) int { return len(s) }
	odd := func(n int) bool { return n%2 == 1 }
	fn := fp.Pipe2(length, odd)
	if !fn("abc") || fn("ab") {
		t.Fatalf("pipe2 mismatch")
	}
	describe := fp.Pipe3(length, odd, func(b bool) string {
		if b {
			return "odd"
		}
		return "even"
	})
	if describe("abc") != "odd" {
		t.Fatalf("pipe3 mismatch")
	}
}

func TestIdentityConstant(t *testing.T) {
	if fp.Identity(42) != 42 {
		t.Fatalf("identity mismatch")
	}
	getDefault := fp.Constant("x")
	if getDefault() != "x" || getDefault() != "x" {
		t.Fatalf("constant mismatch")
	}
}

func TestCurryPartial(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	if fp.Curry(sum)(2)(3) != 5 {
		t.Fatalf("unexpected curry result")
	}
	if fp.Partial(sum, 2)(3) != 5 {
		t.Fatalf("unexpected partial result")
	}

	concat := func(a, b string) string { return a + b }
	if fp.PartialRight(concat, "!")("go") != "go!" {
		t.Fatalf("partial right must fix the last argument")
	}

	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	if fp.Curry3(clamp)(15)(0)(10) != 10 {
		t.Fatalf("unexpected curry3 result")
	}
	clampPercent := fp.Partial3(clamp, 150)
	if clampPercent(0, 100) != clamp(150, 0, 100) {
		t.Fatalf("partial application must match the direct call")
	}
	atMostTen := fp.PartialRight3(clamp, 10)
	if atMostTen(15, 0) != 10 {
		t.Fatalf("partial right3 must fix the last argument")
	}
}
