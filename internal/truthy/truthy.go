// Package truthy holds the single falsy-ness rule shared by record's lossy
// filters and merge policies.
package truthy

import "reflect"

// Truthy reports whether v counts as a present, non-empty value: nil, false,
// numeric zero, the empty string, and empty containers are falsy; everything
// else is truthy. Pointers and interfaces are judged by what they point to.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array, reflect.Chan:
		return rv.Len() != 0
	case reflect.Func:
		return !rv.IsNil()
	default:
		return true
	}
}
