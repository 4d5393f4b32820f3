// Package record works over the dynamic value domain used at the host
// boundary: string-keyed records and heterogeneous lists whose leaves are
// scalars. It carries the deep-copy, merge and flattening operations that
// the typed seq/dict families cannot express.
package record

import (
	"reflect"

	"github.com/gustavodias/fnkit/internal/truthy"
)

// Record is a string-keyed association of dynamic values.
type Record = map[string]any

// List is an ordered sequence of dynamic values.
type List = []any

// Flatten recursively concatenates nested sequences into one flat List,
// depth-unlimited. Any slice or array counts as a sequence; every other
// value, records included, passes through as a leaf. A scalar input yields a
// single-element List. A sequence re-encountered while it is still being
// flattened is a cycle and contributes nothing further; shared sub-sequences
// on separate branches still flatten everywhere they appear.
func Flatten(v any) List {
	return appendFlat(List{}, v, make(map[memoKey]bool))
}

func appendFlat(out List, v any, active map[memoKey]bool) List {
	if v == nil {
		return append(out, nil)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		key := memoKey{ptr: rv.Pointer(), len: rv.Len(), kind: reflect.Slice, typ: rv.Type()}
		if active[key] {
			return out
		}
		active[key] = true
		for i := 0; i < rv.Len(); i++ {
			out = appendFlat(out, rv.Index(i).Interface(), active)
		}
		delete(active, key)
		return out
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			out = appendFlat(out, rv.Index(i).Interface(), active)
		}
		return out
	default:
		return append(out, v)
	}
}

// DropNils keeps only truthy values, re-indexed by survivor order. This is a
// LOSSY filter, not true null removal: false, 0, "" and empty containers are
// all discarded alongside nil. Callers that must keep falsy payloads need an
// explicit predicate via seq.Filter.
func DropNils(in List) List {
	out := List{}
	for _, v := range in {
		if truthy.Truthy(v) {
			out = append(out, v)
		}
	}
	return out
}
