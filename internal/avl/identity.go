package avl

import "reflect"

// Identical is the default test whether a new value may be considered the same as an
// existing one. Values of comparable dynamic type are compared with ==, which is
// identity for pointers; values of non-comparable type are never identical.
func Identical[V any](a, b V) (same bool) {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	tx := reflect.TypeOf(x)
	if tx != reflect.TypeOf(y) || !tx.Comparable() {
		return false
	}
	defer func() { // structs or arrays may hide non-comparable values in interface fields
		if recover() != nil {
			same = false
		}
	}()
	return x == y
}
