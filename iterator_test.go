package xrange

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openrange/xrange/ordinal"
)

// region FromExclusive ////////////////////////////////////////////////////////////////////////////////////////////////

// TestFromExclusive_Next tests if forward iteration yields the successors of Start.
func TestFromExclusive_Next(t *testing.T) {
	r := FromExclusive[int]{Start: 1}

	element, ok := r.Next()
	require.True(t, ok)
	require.Equal(t, 2, element)

	element, ok = r.Next()
	require.True(t, ok)
	require.Equal(t, 3, element)

	require.Equal(t, FromExclusive[int]{Start: 3}, r)
}

// TestFromExclusive_NextWrapsAround tests if iteration wraps around at the upper end of the
// element type's domain.
func TestFromExclusive_NextWrapsAround(t *testing.T) {
	r := FromExclusive[uint8]{Start: math.MaxUint8}

	element, ok := r.Next()
	require.True(t, ok)
	require.Equal(t, uint8(0), element)
}

// TestFromExclusive_Nth tests if skipping ahead yields the element right after the skipped ones.
func TestFromExclusive_Nth(t *testing.T) {
	r := FromExclusive[int]{Start: 1}

	element, ok := r.Nth(0)
	require.True(t, ok)
	require.Equal(t, 2, element)

	element, ok = r.Nth(2)
	require.True(t, ok)
	require.Equal(t, 5, element)
}

// TestFromExclusive_NthMaxSkip tests the largest possible skip: a jump past the highest uint64
// count of elements is a whole number of domain cycles for every fixed-width element type, so it
// wraps around and lands back on Start.
func TestFromExclusive_NthMaxSkip(t *testing.T) {
	r := FromExclusive[int]{Start: 1}

	element, ok := r.Nth(math.MaxUint64)
	require.True(t, ok)
	require.Equal(t, 1, element)
	require.Equal(t, FromExclusive[int]{Start: 1}, r)

	narrow := FromExclusive[uint8]{Start: 5}
	narrowElement, ok := narrow.Nth(math.MaxUint64)
	require.True(t, ok)
	require.Equal(t, uint8(5), narrowElement)
}

// TestFromExclusive_Min tests if the smallest element is the successor of Start and the range is
// not advanced by asking for it.
func TestFromExclusive_Min(t *testing.T) {
	r := FromExclusive[int]{Start: 1}

	element, ok := r.Min()
	require.True(t, ok)
	require.Equal(t, 2, element)
	require.Equal(t, FromExclusive[int]{Start: 1}, r)
}

// TestFromExclusive_Size tests if the reported size is never exact.
func TestFromExclusive_Size(t *testing.T) {
	size, exact := FromExclusive[int]{Start: 1}.Size()
	require.Equal(t, uint64(math.MaxUint64), size)
	require.False(t, exact)
}

// TestFromExclusive_ForEach tests if the callback sees the elements in order and can stop the
// iteration.
func TestFromExclusive_ForEach(t *testing.T) {
	r := FromExclusive[int]{Start: 1}

	var elements []int
	r.ForEach(func(element int) bool {
		elements = append(elements, element)

		return len(elements) < 5
	})

	require.Equal(t, []int{2, 3, 4, 5, 6}, elements)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FromExclusiveToInclusive /////////////////////////////////////////////////////////////////////////////////////

// TestFromExclusiveToInclusive_Next tests if forward iteration yields the values above Start up to
// and including End and reports exhaustion afterwards.
func TestFromExclusiveToInclusive_Next(t *testing.T) {
	r := FromExclusiveToInclusive[int]{Start: 1, End: 3}

	element, ok := r.Next()
	require.True(t, ok)
	require.Equal(t, 2, element)

	element, ok = r.Next()
	require.True(t, ok)
	require.Equal(t, 3, element)

	_, ok = r.Next()
	require.False(t, ok)

	_, ok = r.Next()
	require.False(t, ok)
}

// TestFromExclusiveToInclusive_NextBack tests if backward iteration yields the elements from End
// downwards and reports exhaustion afterwards.
func TestFromExclusiveToInclusive_NextBack(t *testing.T) {
	r := FromExclusiveToInclusive[int]{Start: 1, End: 3}

	element, ok := r.NextBack()
	require.True(t, ok)
	require.Equal(t, 3, element)
	require.Equal(t, FromExclusiveToInclusive[int]{Start: 1, End: 2}, r)

	element, ok = r.NextBack()
	require.True(t, ok)
	require.Equal(t, 2, element)

	_, ok = r.NextBack()
	require.False(t, ok)
}

// TestFromExclusiveToInclusive_Nth tests skipping ahead, including the case where the skip
// overshoots the upper bound and exhausts the range.
func TestFromExclusiveToInclusive_Nth(t *testing.T) {
	r := FromExclusiveToInclusive[int]{Start: 1, End: 5}

	element, ok := r.Nth(0)
	require.True(t, ok)
	require.Equal(t, 2, element)

	element, ok = r.Nth(2)
	require.True(t, ok)
	require.Equal(t, 5, element)

	_, ok = r.Nth(0)
	require.False(t, ok)

	r = FromExclusiveToInclusive[int]{Start: 1, End: 6}
	_, ok = r.Nth(10)
	require.False(t, ok)
	require.Equal(t, FromExclusiveToInclusive[int]{Start: 6, End: 6}, r)
}

// TestFromExclusiveToInclusive_NthBack tests skipping backwards, including the case where the skip
// overshoots the lower bound and exhausts the range.
func TestFromExclusiveToInclusive_NthBack(t *testing.T) {
	r := FromExclusiveToInclusive[int]{Start: 1, End: 6}

	element, ok := r.NthBack(0)
	require.True(t, ok)
	require.Equal(t, 6, element)
	require.Equal(t, FromExclusiveToInclusive[int]{Start: 1, End: 5}, r)

	element, ok = r.NthBack(3)
	require.True(t, ok)
	require.Equal(t, 2, element)

	_, ok = r.NthBack(0)
	require.False(t, ok)

	r = FromExclusiveToInclusive[int]{Start: 1, End: 6}
	_, ok = r.NthBack(10)
	require.False(t, ok)
	require.Equal(t, FromExclusiveToInclusive[int]{Start: 1, End: 1}, r)
}

// TestFromExclusiveToInclusive_LastMinMax tests the element lookups that do not advance the range.
func TestFromExclusiveToInclusive_LastMinMax(t *testing.T) {
	r := FromExclusiveToInclusive[int]{Start: 1, End: 3}

	element, ok := r.Last()
	require.True(t, ok)
	require.Equal(t, 3, element)

	element, ok = r.Min()
	require.True(t, ok)
	require.Equal(t, 2, element)

	element, ok = r.Max()
	require.True(t, ok)
	require.Equal(t, 3, element)

	require.Equal(t, FromExclusiveToInclusive[int]{Start: 1, End: 3}, r)

	empty := FromExclusiveToInclusive[int]{Start: 1, End: 1}
	_, ok = empty.Last()
	require.False(t, ok)
	_, ok = empty.Min()
	require.False(t, ok)
	_, ok = empty.Max()
	require.False(t, ok)
}

// TestFromExclusiveToInclusive_Size tests if the reported size is exact for filled and empty
// ranges.
func TestFromExclusiveToInclusive_Size(t *testing.T) {
	size, exact := FromExclusiveToInclusive[int]{Start: 1, End: 3}.Size()
	require.Equal(t, uint64(2), size)
	require.True(t, exact)

	size, exact = FromExclusiveToInclusive[int]{Start: 1, End: 1}.Size()
	require.Equal(t, uint64(0), size)
	require.True(t, exact)

	size, exact = FromExclusiveToInclusive[int]{Start: 3, End: 1}.Size()
	require.Equal(t, uint64(0), size)
	require.True(t, exact)
}

// TestFromExclusiveToInclusive_Len tests the exact element counts, including the ranges that span
// an element type's full domain.
func TestFromExclusiveToInclusive_Len(t *testing.T) {
	require.Equal(t, uint64(2), FromExclusiveToInclusive[int]{Start: 1, End: 3}.Len())
	require.Equal(t, uint64(0), FromExclusiveToInclusive[int]{Start: 1, End: 1}.Len())
	require.Equal(t, uint64(0), FromExclusiveToInclusive[int]{Start: 3, End: 1}.Len())
	require.Equal(t, uint64(math.MaxUint8), FromExclusiveToInclusive[uint8]{Start: 0, End: math.MaxUint8}.Len())
	require.Equal(t, uint64(255), FromExclusiveToInclusive[int8]{Start: math.MinInt8, End: math.MaxInt8}.Len())
	require.Equal(t, uint64(math.MaxUint64), FromExclusiveToInclusive[uint64]{Start: 0, End: math.MaxUint64}.Len())
	require.Equal(t, uint64(math.MaxUint64), FromExclusiveToInclusive[int64]{Start: math.MinInt64, End: math.MaxInt64}.Len())
}

// TestFromExclusiveToInclusive_ForEach tests if the callback sees all elements of the range.
func TestFromExclusiveToInclusive_ForEach(t *testing.T) {
	r := FromExclusiveToInclusive[int]{Start: 1, End: 4}

	var elements []int
	r.ForEach(func(element int) bool {
		elements = append(elements, element)

		return true
	})

	require.Equal(t, []int{2, 3, 4}, elements)
}

// TestFromExclusiveToInclusive_CharSurrogates tests if iteration over Chars skips the surrogate
// block.
func TestFromExclusiveToInclusive_CharSurrogates(t *testing.T) {
	r := FromExclusiveToInclusive[ordinal.Char]{Start: 0xD7FE, End: 0xE001}

	require.Equal(t, uint64(3), r.Len())

	element, ok := r.Next()
	require.True(t, ok)
	require.Equal(t, ordinal.Char(0xD7FF), element)

	element, ok = r.Next()
	require.True(t, ok)
	require.Equal(t, ordinal.Char(0xE000), element)

	element, ok = r.Next()
	require.True(t, ok)
	require.Equal(t, ordinal.Char(0xE001), element)

	_, ok = r.Next()
	require.False(t, ok)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FromExclusiveToExclusive /////////////////////////////////////////////////////////////////////////////////////

// TestFromExclusiveToExclusive_Next tests if forward iteration yields the values strictly between
// Start and End and reports exhaustion afterwards.
func TestFromExclusiveToExclusive_Next(t *testing.T) {
	r := FromExclusiveToExclusive[int]{Start: 1, End: 4}

	element, ok := r.Next()
	require.True(t, ok)
	require.Equal(t, 2, element)

	element, ok = r.Next()
	require.True(t, ok)
	require.Equal(t, 3, element)

	_, ok = r.Next()
	require.False(t, ok)

	_, ok = r.Next()
	require.False(t, ok)
}

// TestFromExclusiveToExclusive_NextBack tests if backward iteration yields the elements below End
// downwards and reports exhaustion afterwards.
func TestFromExclusiveToExclusive_NextBack(t *testing.T) {
	r := FromExclusiveToExclusive[int]{Start: 1, End: 4}

	element, ok := r.NextBack()
	require.True(t, ok)
	require.Equal(t, 3, element)
	require.Equal(t, FromExclusiveToExclusive[int]{Start: 1, End: 3}, r)

	element, ok = r.NextBack()
	require.True(t, ok)
	require.Equal(t, 2, element)

	_, ok = r.NextBack()
	require.False(t, ok)
}

// TestFromExclusiveToExclusive_Nth tests skipping ahead, including the case where the skip
// overshoots the upper bound and exhausts the range.
func TestFromExclusiveToExclusive_Nth(t *testing.T) {
	r := FromExclusiveToExclusive[int]{Start: 1, End: 6}

	element, ok := r.Nth(0)
	require.True(t, ok)
	require.Equal(t, 2, element)

	element, ok = r.Nth(2)
	require.True(t, ok)
	require.Equal(t, 5, element)

	_, ok = r.Nth(0)
	require.False(t, ok)

	r = FromExclusiveToExclusive[int]{Start: 1, End: 6}
	_, ok = r.Nth(10)
	require.False(t, ok)
	require.Equal(t, FromExclusiveToExclusive[int]{Start: 5, End: 6}, r)

	r = FromExclusiveToExclusive[int]{Start: 6, End: 1}
	_, ok = r.Nth(0)
	require.False(t, ok)
	require.Equal(t, FromExclusiveToExclusive[int]{Start: 6, End: 1}, r)
}

// TestFromExclusiveToExclusive_NthBack tests skipping backwards, including the case where the skip
// overshoots the lower bound and exhausts the range.
func TestFromExclusiveToExclusive_NthBack(t *testing.T) {
	r := FromExclusiveToExclusive[int]{Start: 1, End: 7}

	element, ok := r.NthBack(0)
	require.True(t, ok)
	require.Equal(t, 6, element)
	require.Equal(t, FromExclusiveToExclusive[int]{Start: 1, End: 6}, r)

	element, ok = r.NthBack(3)
	require.True(t, ok)
	require.Equal(t, 2, element)

	_, ok = r.NthBack(0)
	require.False(t, ok)

	r = FromExclusiveToExclusive[int]{Start: 1, End: 6}
	_, ok = r.NthBack(10)
	require.False(t, ok)
	require.Equal(t, FromExclusiveToExclusive[int]{Start: 1, End: 2}, r)

	r = FromExclusiveToExclusive[int]{Start: 6, End: 1}
	_, ok = r.NthBack(0)
	require.False(t, ok)
	require.Equal(t, FromExclusiveToExclusive[int]{Start: 6, End: 1}, r)
}

// TestFromExclusiveToExclusive_LastMinMax tests the element lookups that do not advance the range.
func TestFromExclusiveToExclusive_LastMinMax(t *testing.T) {
	r := FromExclusiveToExclusive[int]{Start: 1, End: 4}

	element, ok := r.Last()
	require.True(t, ok)
	require.Equal(t, 3, element)

	element, ok = r.Min()
	require.True(t, ok)
	require.Equal(t, 2, element)

	element, ok = r.Max()
	require.True(t, ok)
	require.Equal(t, 3, element)

	require.Equal(t, FromExclusiveToExclusive[int]{Start: 1, End: 4}, r)

	empty := FromExclusiveToExclusive[int]{Start: 1, End: 2}
	_, ok = empty.Last()
	require.False(t, ok)
	_, ok = empty.Min()
	require.False(t, ok)
	_, ok = empty.Max()
	require.False(t, ok)
}

// TestFromExclusiveToExclusive_Size tests if the reported size is exact for filled and empty
// ranges.
func TestFromExclusiveToExclusive_Size(t *testing.T) {
	size, exact := FromExclusiveToExclusive[int]{Start: 1, End: 3}.Size()
	require.Equal(t, uint64(1), size)
	require.True(t, exact)

	size, exact = FromExclusiveToExclusive[int]{Start: 1, End: 2}.Size()
	require.Equal(t, uint64(0), size)
	require.True(t, exact)

	size, exact = FromExclusiveToExclusive[int]{Start: 3, End: 1}.Size()
	require.Equal(t, uint64(0), size)
	require.True(t, exact)
}

// TestFromExclusiveToExclusive_Len tests the exact element counts, including the ranges that span
// an element type's full domain.
func TestFromExclusiveToExclusive_Len(t *testing.T) {
	require.Equal(t, uint64(2), FromExclusiveToExclusive[int]{Start: 1, End: 4}.Len())
	require.Equal(t, uint64(0), FromExclusiveToExclusive[int]{Start: 1, End: 2}.Len())
	require.Equal(t, uint64(0), FromExclusiveToExclusive[int]{Start: 3, End: 1}.Len())
	require.Equal(t, uint64(math.MaxUint8-1), FromExclusiveToExclusive[uint8]{Start: 0, End: math.MaxUint8}.Len())
	require.Equal(t, uint64(254), FromExclusiveToExclusive[int8]{Start: math.MinInt8, End: math.MaxInt8}.Len())
	require.Equal(t, uint64(math.MaxUint64-1), FromExclusiveToExclusive[int64]{Start: math.MinInt64, End: math.MaxInt64}.Len())
}

// TestFromExclusiveToExclusive_ForEach tests if the callback sees all elements of the range.
func TestFromExclusiveToExclusive_ForEach(t *testing.T) {
	r := FromExclusiveToExclusive[int]{Start: 1, End: 5}

	var elements []int
	r.ForEach(func(element int) bool {
		elements = append(elements, element)

		return true
	})

	require.Equal(t, []int{2, 3, 4}, elements)
}

// TestFromExclusiveToExclusive_CharLen tests the element counts of the ranges spanning the whole
// Char domain.
func TestFromExclusiveToExclusive_CharLen(t *testing.T) {
	require.Equal(t, uint64(1112063), FromExclusiveToInclusive[ordinal.Char]{Start: 0, End: ordinal.MaxChar}.Len())
	require.Equal(t, uint64(1112062), FromExclusiveToExclusive[ordinal.Char]{Start: 0, End: ordinal.MaxChar}.Len())
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
