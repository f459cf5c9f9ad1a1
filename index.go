package xrange

import (
	"fmt"
	"math"
)

// IndexRange is the union of the range types that can select parts of indexable sequences. Only
// ranges over int qualify, as Go indexes slices and strings with int.
type IndexRange interface {
	FromExclusive[int] | FromExclusiveToInclusive[int] | FromExclusiveToExclusive[int]
}

// Slice returns the sub-slice of s that the given range selects. The result shares its backing
// array with s, so writes through the result are visible in s. Selections that reach outside of s
// panic like Go's own slice expressions do; ranges whose bounds cannot be translated to valid
// indexes panic with a descriptive message.
func Slice[E any, R IndexRange](s []E, r R) []E {
	low, high := sliceBounds(r, len(s))

	return s[low:high]
}

// Substring returns the sub-string of s that the given range selects. Selections that reach
// outside of s panic like Go's own slice expressions do; ranges whose bounds cannot be translated
// to valid indexes panic with a descriptive message.
func Substring[R IndexRange](s string, r R) string {
	low, high := sliceBounds(r, len(s))

	return s[low:high]
}

// CString returns the tail of the NUL-terminated byte string b that starts right behind the
// excluded Start of the given range. The result retains the terminator, so Start has to lie
// strictly before the last content byte; otherwise the call panics.
func CString(b []byte, r FromExclusive[int]) []byte {
	if r.Start == math.MaxInt {
		panic("attempted to index slice exclusively from maximum int")
	}
	if r.Start+1 >= len(b) {
		panic(fmt.Sprintf("index out of bounds: the len is %d but the index is %d", len(b), r.Start))
	}

	return b[r.Start+1:]
}

// sliceBounds translates a range into the inclusive low and exclusive high index of a Go slice
// expression over a sequence of the given length.
func sliceBounds[R IndexRange](r R, length int) (low, high int) {
	switch r := any(r).(type) {
	case FromExclusive[int]:
		if r.Start == math.MaxInt {
			panic("attempted to index slice exclusively from maximum int")
		}

		return r.Start + 1, length
	case FromExclusiveToInclusive[int]:
		if r.Start == math.MaxInt {
			panic("attempted to index slice exclusively from maximum int")
		}
		if r.End == math.MaxInt {
			panic("attempted to index slice inclusively to maximum int")
		}

		return r.Start + 1, r.End + 1
	case FromExclusiveToExclusive[int]:
		if r.Start == math.MaxInt {
			panic("attempted to index slice exclusively from maximum int")
		}

		return r.Start + 1, r.End
	default:
		panic(fmt.Sprintf("unsupported range type %T", r))
	}
}
