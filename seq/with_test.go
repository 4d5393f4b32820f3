package seq_test

import (
	"reflect"
	"testing"

	"github.com/gustavodias/fnkit/fp"
	"github.com/gustavodias/fnkit/seq"
)

func TestWithBuildersDeferExecution(t *testing.T) {
	runs := 0
	stage := seq.FilterWith(func(v int) bool {
		runs++
		return v > 1
	})
	if runs != 0 {
		t.Fatalf("building a stage must not execute it")
	}
	got := stage([]int{1, 2, 3})
	if !reflect.DeepEqual(got, []int{2, 3}) || runs != 3 {
		t.Fatalf("stage must execute once the slice arrives")
	}
}

func TestWithBuildersMatchDirectCalls(t *testing.T) {
	src := []int{3, 1, 4, 1, 5}
	double := func(v int) int { return v * 2 }
	odd := func(v int) bool { return v%2 == 1 }

	if !reflect.DeepEqual(seq.MapWith(double)(src), seq.Map(src, double)) {
		t.Fatalf("MapWith mismatch")
	}
	if !reflect.DeepEqual(seq.RejectWith(odd)(src), seq.Reject(src, odd)) {
		t.Fatalf("RejectWith mismatch")
	}
	if !reflect.DeepEqual(seq.TakeWith[int](2)(src), seq.Take(src, 2)) {
		t.Fatalf("TakeWith mismatch")
	}
	if !reflect.DeepEqual(seq.SkipWith[int](2)(src), seq.Skip(src, 2)) {
		t.Fatalf("SkipWith mismatch")
	}
	sum := seq.FoldWith(0, func(acc, v int) int { return acc + v })
	if sum(src) != seq.FoldLeft(src, 0, func(acc, v int) int { return acc + v }) {
		t.Fatalf("FoldWith mismatch")
	}
	if got, ok := seq.FindWith(odd)(src).Get(); !ok || got != 3 {
		t.Fatalf("FindWith mismatch")
	}
}

func TestWithBuildersCompose(t *testing.T) {
	pipeline := fp.Pipe2(
		fp.Pipe(
			seq.FilterWith(func(v int) bool { return v%2 == 0 }),
			seq.MapWith(func(v int) int { return v * v }),
			seq.TakeWith[int](2),
		),
		seq.FoldWith(0, func(acc, v int) int { return acc + v }),
	)
	if got := pipeline([]int{1, 2, 3, 4, 5, 6}); got != 20 {
		t.Fatalf("unexpected pipeline result %d", got)
	}
}
