// Package diff implements the structural equality that gates all render
// work: a projector handed a fragment Equal to the one it last rendered
// must produce zero operations.
package diff

import "reflect"

// Equal reports structural equality over the snapshot value universe:
// absent (nil pointer, nil slice, nil map), scalars, ordered sequences and
// mappings. Absent and present values are never equal, even when the
// present one is empty; sequences compare elementwise in order; mappings
// compare by key set regardless of key order; structs compare field by
// field. Identity is irrelevant throughout.
func Equal(a any, b any) bool {
	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValues(a reflect.Value, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return equalValues(a.Elem(), b.Elem())
	case reflect.Slice:
		if a.IsNil() != b.IsNil() {
			return false
		}
		fallthrough
	case reflect.Array:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValues(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.IsNil() != b.IsNil() {
			return false
		}
		if a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			other := b.MapIndex(iter.Key())
			if !other.IsValid() {
				return false
			}
			if !equalValues(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Struct:
		t := a.Type()
		for i := 0; i < a.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				continue // unexported fields are not part of the value
			}
			if !equalValues(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return a.IsNil() && b.IsNil()
	default:
		return a.Interface() == b.Interface()
	}
}
