package lambdas

import (
	"reflect"
)

// IsNil reports whether i is absent: an untyped nil, or a nil pointer,
// map, slice, func, chan, interface or unsafe pointer.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
