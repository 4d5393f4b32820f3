package record

import "reflect"

// memoKey identifies a visited source node by its referent. Length is part of
// the key so a slice and its re-slices are not conflated, and the type is
// part of it because empty allocations of different types share one runtime
// pointer.
type memoKey struct {
	ptr  uintptr
	len  int
	kind reflect.Kind
	typ  reflect.Type
}

// DeepCopy recursively clones maps, slices, arrays and pointers, returning a
// value that shares no mutable structure with v. Already-visited source nodes
// are memoized to their clone, so self-referential values copy into an
// isomorphic cyclic structure instead of recursing forever. Scalars are
// returned unchanged; struct values are copied by Go's value semantics and
// are not descended into.
func DeepCopy(v any) any {
	if v == nil {
		return nil
	}
	seen := make(map[memoKey]reflect.Value)
	return deepValue(reflect.ValueOf(v), seen).Interface()
}

// CopyRecord is DeepCopy specialized to Record, keeping call sites free of
// type assertions.
func CopyRecord(rec Record) Record {
	if rec == nil {
		return nil
	}
	return DeepCopy(rec).(Record)
}

func deepValue(v reflect.Value, seen map[memoKey]reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		return deepValue(v.Elem(), seen)

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		key := memoKey{ptr: v.Pointer(), kind: reflect.Map, typ: v.Type()}
		if clone, ok := seen[key]; ok {
			return clone
		}
		clone := reflect.MakeMapWithSize(v.Type(), v.Len())
		seen[key] = clone
		iter := v.MapRange()
		for iter.Next() {
			clone.SetMapIndex(iter.Key(), deepValue(iter.Value(), seen))
		}
		return clone

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		key := memoKey{ptr: v.Pointer(), len: v.Len(), kind: reflect.Slice, typ: v.Type()}
		if clone, ok := seen[key]; ok {
			return clone
		}
		clone := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		seen[key] = clone
		for i := 0; i < v.Len(); i++ {
			clone.Index(i).Set(deepValue(v.Index(i), seen))
		}
		return clone

	case reflect.Array:
		clone := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			clone.Index(i).Set(deepValue(v.Index(i), seen))
		}
		return clone

	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		key := memoKey{ptr: v.Pointer(), kind: reflect.Pointer, typ: v.Type()}
		if clone, ok := seen[key]; ok {
			return clone
		}
		clone := reflect.New(v.Type().Elem())
		seen[key] = clone
		clone.Elem().Set(deepValue(v.Elem(), seen))
		return clone

	default:
		return v
	}
}
