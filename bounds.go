package xrange

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// region BoundType ////////////////////////////////////////////////////////////////////////////////////////////////////

// BoundType indicates whether a Bound of a range contains its Value ("included"), leaves it out
// ("excluded") or does not exist at all ("unbounded").
type BoundType uint8

const (
	// BoundTypeExcluded indicates that the Value of the Bound is not part of the range ("exclusive").
	BoundTypeExcluded BoundType = iota

	// BoundTypeIncluded indicates that the Value of the Bound is part of the range ("inclusive").
	BoundTypeIncluded

	// BoundTypeUnbounded indicates that the range continues without limit on that side, so the Bound
	// carries no Value.
	BoundTypeUnbounded
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeExcluded",
	"BoundTypeIncluded",
	"BoundTypeUnbounded",
}

// BoundTypeFromBytes unmarshals a BoundType from a sequence of bytes.
func BoundTypeFromBytes(boundTypeBytes []byte) (boundType BoundType, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(boundTypeBytes)
	if boundType, err = BoundTypeFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse BoundType from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BoundTypeFromMarshalUtil unmarshals a BoundType using a MarshalUtil (for easier unmarshalling).
func BoundTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (boundType BoundType, err error) {
	boundTypeByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read BoundType: %w", err)

		return
	}

	if boundType = BoundType(boundTypeByte); boundType > BoundTypeUnbounded {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unsupported BoundType (%X)", boundType)

		return
	}

	return
}

// Bytes returns a marshaled version of the BoundType.
func (b BoundType) Bytes() []byte {
	return []byte{byte(b)}
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Bound ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Bound describes one side of a range. It combines an endpoint value with a BoundType; if the
// BoundType is BoundTypeUnbounded, there is no endpoint and the value is meaningless.
type Bound[T constraints.Integer] struct {
	value     T
	boundType BoundType
}

// NewBound creates a new Bound from the given details.
func NewBound[T constraints.Integer](value T, boundType BoundType) Bound[T] {
	return Bound[T]{
		value:     value,
		boundType: boundType,
	}
}

// Unbounded returns the Bound of a side that has no endpoint.
func Unbounded[T constraints.Integer]() Bound[T] {
	return Bound[T]{
		boundType: BoundTypeUnbounded,
	}
}

// BoundFromBytes unmarshals a Bound from a sequence of bytes.
func BoundFromBytes[T constraints.Integer](boundBytes []byte) (bound Bound[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(boundBytes)
	if bound, err = BoundFromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse Bound from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BoundFromMarshalUtil unmarshals a Bound using a MarshalUtil (for easier unmarshalling).
func BoundFromMarshalUtil[T constraints.Integer](marshalUtil *marshalutil.MarshalUtil) (bound Bound[T], err error) {
	value, err := marshalUtil.ReadUint64()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read value: %w", err)

		return
	}
	bound.value = T(value)

	if bound.boundType, err = BoundTypeFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse BoundType from MarshalUtil")

		return
	}

	return
}

// Value returns the endpoint value of the Bound. It is only meaningful if the Bound is not
// unbounded.
func (b Bound[T]) Value() T {
	return b.value
}

// BoundType returns the BoundType of the Bound.
func (b Bound[T]) BoundType() BoundType {
	return b.boundType
}

// Bytes returns a marshaled version of the Bound. The endpoint value is encoded as a sign-extended
// little-endian 64-bit word, independently of the element type's width.
func (b Bound[T]) Bytes() []byte {
	return marshalutil.New().
		WriteUint64(uint64(b.value)).
		Write(b.boundType).
		Bytes()
}

// String returns a human-readable version of the Bound.
func (b Bound[T]) String() string {
	return stringify.Struct("Bound",
		stringify.NewStructField("value", b.value),
		stringify.NewStructField("boundType", b.boundType),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Bounds ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Bounds describes the two sides of a range, independently of the concrete range type.
type Bounds[T constraints.Integer] interface {
	// StartBound returns the Bound on the lower side of the range.
	StartBound() Bound[T]

	// EndBound returns the Bound on the upper side of the range.
	EndBound() Bound[T]
}

var (
	_ Bounds[int] = FromExclusive[int]{}
	_ Bounds[int] = FromExclusiveToInclusive[int]{}
	_ Bounds[int] = FromExclusiveToExclusive[int]{}
)

// StartBound returns the Bound on the lower side of the range, which always excludes Start.
func (r FromExclusive[T]) StartBound() Bound[T] {
	return NewBound(r.Start, BoundTypeExcluded)
}

// EndBound returns the Bound on the upper side of the range, which is always unbounded.
func (r FromExclusive[T]) EndBound() Bound[T] {
	return Unbounded[T]()
}

// StartBound returns the Bound on the lower side of the range, which always excludes Start.
func (r FromExclusiveToInclusive[T]) StartBound() Bound[T] {
	return NewBound(r.Start, BoundTypeExcluded)
}

// EndBound returns the Bound on the upper side of the range, which always includes End.
func (r FromExclusiveToInclusive[T]) EndBound() Bound[T] {
	return NewBound(r.End, BoundTypeIncluded)
}

// StartBound returns the Bound on the lower side of the range, which always excludes Start.
func (r FromExclusiveToExclusive[T]) StartBound() Bound[T] {
	return NewBound(r.Start, BoundTypeExcluded)
}

// EndBound returns the Bound on the upper side of the range, which always excludes End.
func (r FromExclusiveToExclusive[T]) EndBound() Bound[T] {
	return NewBound(r.End, BoundTypeExcluded)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
