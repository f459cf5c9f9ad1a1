// Package ordinal provides order arithmetic for the integer kinds: stepping values forward and
// backward by a given number of successors and measuring the distance between two values.
//
// All functions specialize their behavior for the Char type, whose domain contains a hole (the
// surrogate block) that plain integer arithmetic would step into.
package ordinal

import (
	"unsafe"

	"github.com/iotaledger/hive.go/constraints"
)

// Forward returns the value count steps after v. It wraps around at the upper end of the type's
// domain, following the semantics of Go's own integer addition.
func Forward[T constraints.Integer](v T, count uint64) T {
	if c, isChar := any(v).(Char); isChar {
		return T(forwardChar(c, count))
	}

	return T(uint64(v) + count)
}

// ForwardChecked returns the value count steps after v. Instead of wrapping around, it returns
// false if the result would leave the type's domain.
func ForwardChecked[T constraints.Integer](v T, count uint64) (result T, ok bool) {
	if c, isChar := any(v).(Char); isChar {
		charResult, charOK := forwardCheckedChar(c, count)

		return T(charResult), charOK
	}

	if count > uint64(MaxValue[T]())-uint64(v) {
		return 0, false
	}

	return T(uint64(v) + count), true
}

// Backward returns the value count steps before v. It wraps around at the lower end of the type's
// domain, following the semantics of Go's own integer subtraction.
func Backward[T constraints.Integer](v T, count uint64) T {
	if c, isChar := any(v).(Char); isChar {
		return T(backwardChar(c, count))
	}

	return T(uint64(v) - count)
}

// BackwardChecked returns the value count steps before v. Instead of wrapping around, it returns
// false if the result would leave the type's domain.
func BackwardChecked[T constraints.Integer](v T, count uint64) (result T, ok bool) {
	if c, isChar := any(v).(Char); isChar {
		charResult, charOK := backwardCheckedChar(c, count)

		return T(charResult), charOK
	}

	if count > uint64(v)-uint64(MinValue[T]()) {
		return 0, false
	}

	return T(uint64(v) - count), true
}

// Distance returns the number of steps that have to be taken to reach b from a. It returns false
// if b cannot be reached from a by stepping forward.
func Distance[T constraints.Integer](a, b T) (steps uint64, ok bool) {
	if a > b {
		return 0, false
	}

	steps = uint64(b) - uint64(a)
	if ca, isChar := any(a).(Char); isChar {
		if cb := any(b).(Char); ca < surrogateMin && cb >= surrogateMax {
			steps -= surrogateCount
		}
	}

	return steps, true
}

// MaxValue returns the highest value of the type's domain.
func MaxValue[T constraints.Integer]() T {
	var zero T
	if _, isChar := any(zero).(Char); isChar {
		maxChar := MaxChar

		return T(maxChar)
	}

	if ones := ^zero; ones > zero {
		return ones
	}

	return ^(T(1) << (8*unsafe.Sizeof(zero) - 1))
}

// MinValue returns the lowest value of the type's domain.
func MinValue[T constraints.Integer]() T {
	var zero T
	if _, isChar := any(zero).(Char); isChar {
		return zero
	}

	if ^zero > zero {
		return zero
	}

	return T(1) << (8*unsafe.Sizeof(zero) - 1)
}
