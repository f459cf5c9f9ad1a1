package xrange

import (
	"math"

	"github.com/openrange/xrange/ordinal"
)

// region FromExclusive ////////////////////////////////////////////////////////////////////////////////////////////////

// Next advances the range to its next element and returns it. Since the range has no upper bound,
// it never reports exhaustion; at the upper end of the element type's domain the elements wrap
// around just like the element type itself does.
func (r *FromExclusive[T]) Next() (element T, ok bool) {
	r.Start = ordinal.Forward(r.Start, 1)

	return r.Start, true
}

// Nth advances the range past n elements and returns the element right after the skipped ones, so
// Nth(0) behaves like Next. The jump is taken as two jumps of n and 1 steps, so the combined step
// count stays exact even when n is the highest uint64 value.
func (r *FromExclusive[T]) Nth(n uint64) (element T, ok bool) {
	r.Start = ordinal.Forward(ordinal.Forward(r.Start, n), 1)

	return r.Start, true
}

// Min returns the smallest element of the range without advancing it.
func (r FromExclusive[T]) Min() (element T, ok bool) {
	return r.Next()
}

// Size returns a lower bound on the number of remaining elements and whether that bound is exact.
// A FromExclusive range is effectively unbounded, so the count is never exact.
func (r FromExclusive[T]) Size() (size uint64, exact bool) {
	return math.MaxUint64, false
}

// ForEach feeds the elements of the range to the given callback until the callback returns false.
// The consumed elements are removed from the range.
func (r *FromExclusive[T]) ForEach(callback func(element T) bool) {
	for {
		element, _ := r.Next()
		if !callback(element) {
			return
		}
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FromExclusiveToInclusive /////////////////////////////////////////////////////////////////////////////////////

// Next advances the range to its next element and returns it. The returned flag turns false once
// the range is exhausted and stays false afterwards.
func (r *FromExclusiveToInclusive[T]) Next() (element T, ok bool) {
	if r.Start >= r.End {
		return element, false
	}
	r.Start = ordinal.Forward(r.Start, 1)

	return r.Start, true
}

// NextBack advances the range from its upper side to the previous element and returns it. The
// returned flag turns false once the range is exhausted and stays false afterwards.
func (r *FromExclusiveToInclusive[T]) NextBack() (element T, ok bool) {
	if r.Start >= r.End {
		return element, false
	}
	element = r.End
	r.End = ordinal.Backward(r.End, 1)

	return element, true
}

// Nth advances the range past n elements and returns the element right after the skipped ones, so
// Nth(0) behaves like Next. If fewer than n+1 elements remain, the range is exhausted and the
// returned flag is false.
func (r *FromExclusiveToInclusive[T]) Nth(n uint64) (element T, ok bool) {
	if r.Start == r.End {
		return element, false
	}

	if plusN, stepOK := ordinal.ForwardChecked(r.Start, n); stepOK && plusN < r.End {
		r.Start = ordinal.Forward(plusN, 1)

		return r.Start, true
	}
	r.Start = r.End

	return element, false
}

// NthBack advances the range past n elements from its upper side and returns the element right
// before the skipped ones, so NthBack(0) behaves like NextBack. If fewer than n+1 elements remain,
// the range is exhausted and the returned flag is false.
func (r *FromExclusiveToInclusive[T]) NthBack(n uint64) (element T, ok bool) {
	if r.Start >= r.End {
		return element, false
	}

	if minusN, stepOK := ordinal.BackwardChecked(r.End, n); stepOK && r.Start < minusN {
		r.End = ordinal.Backward(minusN, 1)

		return minusN, true
	}
	r.End = r.Start

	return element, false
}

// Last returns the final element of the range without advancing it.
func (r FromExclusiveToInclusive[T]) Last() (element T, ok bool) {
	return r.NextBack()
}

// Min returns the smallest element of the range without advancing it.
func (r FromExclusiveToInclusive[T]) Min() (element T, ok bool) {
	return r.Next()
}

// Max returns the largest element of the range without advancing it.
func (r FromExclusiveToInclusive[T]) Max() (element T, ok bool) {
	return r.NextBack()
}

// Size returns the number of remaining elements and whether that count is exact, which it is for
// every element type whose distances are computable.
func (r FromExclusiveToInclusive[T]) Size() (size uint64, exact bool) {
	if r.Start >= r.End {
		return 0, true
	}

	if steps, ok := ordinal.Distance(r.Start, r.End); ok {
		return steps, true
	}

	return math.MaxUint64, false
}

// Len returns the exact number of remaining elements of the range.
func (r FromExclusiveToInclusive[T]) Len() (length uint64) {
	length, _ = ordinal.Distance(r.Start, r.End)

	return length
}

// ForEach feeds the elements of the range to the given callback until the callback returns false
// or the range is exhausted. The consumed elements are removed from the range.
func (r *FromExclusiveToInclusive[T]) ForEach(callback func(element T) bool) {
	for element, ok := r.Next(); ok; element, ok = r.Next() {
		if !callback(element) {
			return
		}
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FromExclusiveToExclusive /////////////////////////////////////////////////////////////////////////////////////

// Next advances the range to its next element and returns it. The returned flag turns false once
// the range is exhausted and stays false afterwards.
func (r *FromExclusiveToExclusive[T]) Next() (element T, ok bool) {
	if steps, stepsOK := ordinal.Distance(r.Start, r.End); stepsOK && steps > 1 {
		r.Start = ordinal.Forward(r.Start, 1)

		return r.Start, true
	}

	return element, false
}

// NextBack advances the range from its upper side to the previous element and returns it. The
// returned flag turns false once the range is exhausted and stays false afterwards.
func (r *FromExclusiveToExclusive[T]) NextBack() (element T, ok bool) {
	if steps, stepsOK := ordinal.Distance(r.Start, r.End); stepsOK && steps > 1 {
		r.End = ordinal.Backward(r.End, 1)

		return r.End, true
	}

	return element, false
}

// Nth advances the range past n elements and returns the element right after the skipped ones, so
// Nth(0) behaves like Next. If fewer than n+1 elements remain, the range is exhausted and the
// returned flag is false.
func (r *FromExclusiveToExclusive[T]) Nth(n uint64) (element T, ok bool) {
	if steps, stepsOK := ordinal.Distance(r.Start, r.End); !stepsOK || steps <= 1 {
		return element, false
	}

	if plusN, stepOK := ordinal.ForwardChecked(r.Start, n); stepOK {
		if remaining, remainingOK := ordinal.Distance(plusN, r.End); remainingOK && remaining > 1 {
			r.Start = ordinal.Forward(plusN, 1)

			return r.Start, true
		}
	}
	r.Start = ordinal.Backward(r.End, 1)

	return element, false
}

// NthBack advances the range past n elements from its upper side and returns the element right
// before the skipped ones, so NthBack(0) behaves like NextBack. If fewer than n+1 elements remain,
// the range is exhausted and the returned flag is false.
func (r *FromExclusiveToExclusive[T]) NthBack(n uint64) (element T, ok bool) {
	if steps, stepsOK := ordinal.Distance(r.Start, r.End); !stepsOK || steps <= 1 {
		return element, false
	}

	if minusN, stepOK := ordinal.BackwardChecked(r.End, n); stepOK {
		if remaining, remainingOK := ordinal.Distance(r.Start, minusN); remainingOK && remaining > 1 {
			r.End = ordinal.Backward(minusN, 1)

			return r.End, true
		}
	}
	r.End = ordinal.Forward(r.Start, 1)

	return element, false
}

// Last returns the final element of the range without advancing it.
func (r FromExclusiveToExclusive[T]) Last() (element T, ok bool) {
	return r.NextBack()
}

// Min returns the smallest element of the range without advancing it.
func (r FromExclusiveToExclusive[T]) Min() (element T, ok bool) {
	return r.Next()
}

// Max returns the largest element of the range without advancing it.
func (r FromExclusiveToExclusive[T]) Max() (element T, ok bool) {
	return r.NextBack()
}

// Size returns the number of remaining elements and whether that count is exact, which it is for
// every element type whose distances are computable.
func (r FromExclusiveToExclusive[T]) Size() (size uint64, exact bool) {
	if r.Start >= r.End {
		return 0, true
	}

	if steps, ok := ordinal.Distance(r.Start, r.End); ok {
		if steps > 1 {
			return steps - 1, true
		}

		return 0, true
	}

	return math.MaxUint64, false
}

// Len returns the exact number of remaining elements of the range.
func (r FromExclusiveToExclusive[T]) Len() (length uint64) {
	if steps, ok := ordinal.Distance(r.Start, r.End); ok && steps > 1 {
		return steps - 1
	}

	return 0
}

// ForEach feeds the elements of the range to the given callback until the callback returns false
// or the range is exhausted. The consumed elements are removed from the range.
func (r *FromExclusiveToExclusive[T]) ForEach(callback func(element T) bool) {
	for element, ok := r.Next(); ok; element, ok = r.Next() {
		if !callback(element) {
			return
		}
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
