// Package xrange provides range types whose lower bound is excluded, complementing Go's native
// half-open intervals that always include their start.
//
// With an excluded start and the three possible upper bounds, this yields the following types:
//
// Notation          Definition              Type
// (start .. +INF)   {x | x > start}         FromExclusive
// (start .. end]    {x | start < x <= end}  FromExclusiveToInclusive
// (start .. end)    {x | start < x < end}   FromExclusiveToExclusive
//
// Ranges are plain value types: they are constructed from their fields directly, compared with ==
// and usable as map keys. A range is at the same time its own iteration cursor, with the stepping
// behavior of the element type defined by the ordinal package.
package xrange

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"

	"github.com/openrange/xrange/ordinal"
)

// region FromExclusive ////////////////////////////////////////////////////////////////////////////////////////////////

// FromExclusive is a range that contains all values above the excluded Start, unbounded on the
// upper side.
type FromExclusive[T constraints.Integer] struct {
	Start T `json:"start"`
}

// Contains returns true if the given value is within the bounds of the range.
func (r FromExclusive[T]) Contains(value T) bool {
	return value > r.Start
}

// IsEmpty returns false: a FromExclusive range contains every value above Start by definition.
func (r FromExclusive[T]) IsEmpty() bool {
	return false
}

// Equal returns true if the range is equal to the given one.
func (r FromExclusive[T]) Equal(other FromExclusive[T]) bool {
	return r == other
}

// Clone returns a copy of the range.
func (r FromExclusive[T]) Clone() FromExclusive[T] {
	return r
}

// Compare returns -1, 0 or 1 if the range starts before, together with or after the given one.
func (r FromExclusive[T]) Compare(other FromExclusive[T]) int {
	return lo.Compare(r.Start, other.Start)
}

// String returns a human-readable version of the range.
func (r FromExclusive[T]) String() string {
	return fmt.Sprintf("FromExclusive(%v ... +INF)", r.Start)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FromExclusiveToInclusive /////////////////////////////////////////////////////////////////////////////////////

// FromExclusiveToInclusive is a range that contains all values above the excluded Start, up to and
// including End.
type FromExclusiveToInclusive[T constraints.Integer] struct {
	Start T `json:"start"`
	End   T `json:"end"`
}

// Contains returns true if the given value is within the bounds of the range.
func (r FromExclusiveToInclusive[T]) Contains(value T) bool {
	return value > r.Start && value <= r.End
}

// IsEmpty returns true if the range contains no values, which is the case whenever Start is not
// below End.
func (r FromExclusiveToInclusive[T]) IsEmpty() bool {
	return r.Start >= r.End
}

// Equal returns true if the range is equal to the given one.
func (r FromExclusiveToInclusive[T]) Equal(other FromExclusiveToInclusive[T]) bool {
	return r == other
}

// Clone returns a copy of the range.
func (r FromExclusiveToInclusive[T]) Clone() FromExclusiveToInclusive[T] {
	return r
}

// Compare returns -1, 0 or 1 if the range is ordered before, together with or after the given one,
// comparing the Start values first and the End values second.
func (r FromExclusiveToInclusive[T]) Compare(other FromExclusiveToInclusive[T]) int {
	if cmp := lo.Compare(r.Start, other.Start); cmp != 0 {
		return cmp
	}

	return lo.Compare(r.End, other.End)
}

// String returns a human-readable version of the range.
func (r FromExclusiveToInclusive[T]) String() string {
	return fmt.Sprintf("FromExclusiveToInclusive(%v ... %v]", r.Start, r.End)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FromExclusiveToExclusive /////////////////////////////////////////////////////////////////////////////////////

// FromExclusiveToExclusive is a range that contains all values above the excluded Start and below
// the excluded End.
type FromExclusiveToExclusive[T constraints.Integer] struct {
	Start T `json:"start"`
	End   T `json:"end"`
}

// Contains returns true if the given value is within the bounds of the range.
func (r FromExclusiveToExclusive[T]) Contains(value T) bool {
	return value > r.Start && value < r.End
}

// IsEmpty returns true if the range contains no values, which is the case whenever fewer than two
// steps separate Start and End.
func (r FromExclusiveToExclusive[T]) IsEmpty() bool {
	steps, ok := ordinal.Distance(r.Start, r.End)

	return !ok || steps <= 1
}

// Equal returns true if the range is equal to the given one.
func (r FromExclusiveToExclusive[T]) Equal(other FromExclusiveToExclusive[T]) bool {
	return r == other
}

// Clone returns a copy of the range.
func (r FromExclusiveToExclusive[T]) Clone() FromExclusiveToExclusive[T] {
	return r
}

// Compare returns -1, 0 or 1 if the range is ordered before, together with or after the given one,
// comparing the Start values first and the End values second.
func (r FromExclusiveToExclusive[T]) Compare(other FromExclusiveToExclusive[T]) int {
	if cmp := lo.Compare(r.Start, other.Start); cmp != 0 {
		return cmp
	}

	return lo.Compare(r.End, other.End)
}

// String returns a human-readable version of the range.
func (r FromExclusiveToExclusive[T]) String() string {
	return fmt.Sprintf("FromExclusiveToExclusive(%v ... %v)", r.Start, r.End)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
