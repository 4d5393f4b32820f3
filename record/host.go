package record

import (
	"fmt"
	"reflect"
)

// optional is satisfied by option.Option without importing its type
// parameters; OptionValue yields the wrapped value untyped.
type optional interface {
	OptionValue() (any, bool)
}

// ToHost converts a library-native value into the host's associative-object
// representation: plain map[string]any records, []any lists and bare
// scalars. The conversion is recursive at every level, never just the top
// one: typed maps become string-keyed records (non-string keys are
// formatted), typed slices and arrays become lists, pointers are followed,
// and Option values unwrap with None rendered as nil. Visited containers are
// memoized to their converted form, so shared nodes convert once and
// self-referential values come out as isomorphic cycles instead of
// overflowing the stack.
func ToHost(v any) any {
	return toHost(v, make(map[memoKey]any))
}

func toHost(v any, seen map[memoKey]any) any {
	if v == nil {
		return nil
	}
	if opt, ok := v.(optional); ok {
		inner, present := opt.OptionValue()
		if !present {
			return nil
		}
		return toHost(inner, seen)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		key := memoKey{ptr: rv.Pointer(), kind: reflect.Map, typ: rv.Type()}
		if converted, ok := seen[key]; ok {
			return converted
		}
		out := make(map[string]any, rv.Len())
		seen[key] = out
		iter := rv.MapRange()
		for iter.Next() {
			name, ok := iter.Key().Interface().(string)
			if !ok {
				name = fmt.Sprint(iter.Key().Interface())
			}
			out[name] = toHost(iter.Value().Interface(), seen)
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		key := memoKey{ptr: rv.Pointer(), len: rv.Len(), kind: reflect.Slice, typ: rv.Type()}
		if converted, ok := seen[key]; ok {
			return converted
		}
		out := make([]any, rv.Len())
		seen[key] = out
		for i := 0; i < rv.Len(); i++ {
			out[i] = toHost(rv.Index(i).Interface(), seen)
		}
		return out
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = toHost(rv.Index(i).Interface(), seen)
		}
		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return toHost(rv.Elem().Interface(), seen)
	default:
		return v
	}
}

// ToHostRecord is ToHost constrained to a record root, keeping call sites
// free of type assertions.
func ToHostRecord(rec Record) map[string]any {
	if rec == nil {
		return nil
	}
	return ToHost(rec).(map[string]any)
}
