package record

import "github.com/gustavodias/fnkit/internal/truthy"

// asRecord reports whether a dynamic value is a nested record. Record is an
// alias for map[string]any, so values built as plain maps match too.
func asRecord(v any) (Record, bool) {
	rec, ok := v.(Record)
	return rec, ok
}

// Assign merges source onto target in place under the allow-list policy:
// only keys already present in target are touched, and a source value
// overwrites only when it is truthy. Nested records are merged recursively,
// so only the leaves present in source are overwritten rather than the whole
// branch being replaced. Keys absent from target are never added. Returns
// target for chaining.
//
// For the full-union policy that adds keys, see Union.
func Assign(target, source Record) Record {
	for k, tv := range target {
		sv, ok := source[k]
		if !ok || !truthy.Truthy(sv) {
			continue
		}
		tRec, tIsRec := asRecord(tv)
		sRec, sIsRec := asRecord(sv)
		if tIsRec && sIsRec {
			Assign(tRec, sRec)
			continue
		}
		target[k] = sv
	}
	return target
}

// Union deep-merges a and b into a NEW record containing every key from
// both. When both sides hold a record under the same key the branches are
// unioned recursively; otherwise b's value wins. Leaf values are carried by
// reference; inputs are never mutated.
func Union(a, b Record) Record {
	out := make(Record, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, bv := range b {
		av, exists := out[k]
		if exists {
			aRec, aIsRec := asRecord(av)
			bRec, bIsRec := asRecord(bv)
			if aIsRec && bIsRec {
				out[k] = Union(aRec, bRec)
				continue
			}
		}
		out[k] = bv
	}
	return out
}

// ProcessRecord deep-copies rec, threads the copy through transforms left to
// right, then Assigns the final copy back onto rec and returns the ORIGINAL
// reference. Transforms therefore work on a private copy, the caller keeps
// object identity, and the merge-back honors Assign's allow-list: a
// transform can only change fields the record already has.
func ProcessRecord(rec Record, transforms ...func(Record) Record) Record {
	work := CopyRecord(rec)
	for _, fn := range transforms {
		work = fn(work)
	}
	Assign(rec, work)
	return rec
}
