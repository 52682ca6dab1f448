package growmap

import (
	"reflect"
	"unsafe"
)

// Estimates capacity (number of slots) from the given memory size in bytes.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	return int(size / unsafe.Sizeof(slot[K, V]{}))
}

// Reports whether v is the zero value of its type. V is unconstrained, so
// this has to go through reflection.
func isZeroValue[V any](v V) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}
