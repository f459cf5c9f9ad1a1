package xrange

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// The endpoint values of a range are encoded as sign-extended little-endian 64-bit words,
// independently of the element type's width. This keeps the wire format identical for all
// instantiations and round-trips every value exactly.

// region FromExclusive ////////////////////////////////////////////////////////////////////////////////////////////////

// FromExclusiveFromBytes unmarshals a FromExclusive range from a sequence of bytes.
func FromExclusiveFromBytes[T constraints.Integer](rangeBytes []byte) (rangeValue FromExclusive[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(rangeBytes)
	if rangeValue, err = FromExclusiveFromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse FromExclusive from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromExclusiveFromMarshalUtil unmarshals a FromExclusive range using a MarshalUtil (for easier
// unmarshalling).
func FromExclusiveFromMarshalUtil[T constraints.Integer](marshalUtil *marshalutil.MarshalUtil) (rangeValue FromExclusive[T], err error) {
	start, err := marshalUtil.ReadUint64()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Start: %w", err)

		return
	}
	rangeValue.Start = T(start)

	return
}

// Bytes returns a marshaled version of the range.
func (r FromExclusive[T]) Bytes() []byte {
	return marshalutil.New().
		WriteUint64(uint64(r.Start)).
		Bytes()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FromExclusiveToInclusive /////////////////////////////////////////////////////////////////////////////////////

// FromExclusiveToInclusiveFromBytes unmarshals a FromExclusiveToInclusive range from a sequence of
// bytes.
func FromExclusiveToInclusiveFromBytes[T constraints.Integer](rangeBytes []byte) (rangeValue FromExclusiveToInclusive[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(rangeBytes)
	if rangeValue, err = FromExclusiveToInclusiveFromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse FromExclusiveToInclusive from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromExclusiveToInclusiveFromMarshalUtil unmarshals a FromExclusiveToInclusive range using a
// MarshalUtil (for easier unmarshalling).
func FromExclusiveToInclusiveFromMarshalUtil[T constraints.Integer](marshalUtil *marshalutil.MarshalUtil) (rangeValue FromExclusiveToInclusive[T], err error) {
	start, err := marshalUtil.ReadUint64()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Start: %w", err)

		return
	}
	rangeValue.Start = T(start)

	end, err := marshalUtil.ReadUint64()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read End: %w", err)

		return
	}
	rangeValue.End = T(end)

	return
}

// Bytes returns a marshaled version of the range.
func (r FromExclusiveToInclusive[T]) Bytes() []byte {
	return marshalutil.New().
		WriteUint64(uint64(r.Start)).
		WriteUint64(uint64(r.End)).
		Bytes()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FromExclusiveToExclusive /////////////////////////////////////////////////////////////////////////////////////

// FromExclusiveToExclusiveFromBytes unmarshals a FromExclusiveToExclusive range from a sequence of
// bytes.
func FromExclusiveToExclusiveFromBytes[T constraints.Integer](rangeBytes []byte) (rangeValue FromExclusiveToExclusive[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(rangeBytes)
	if rangeValue, err = FromExclusiveToExclusiveFromMarshalUtil[T](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse FromExclusiveToExclusive from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromExclusiveToExclusiveFromMarshalUtil unmarshals a FromExclusiveToExclusive range using a
// MarshalUtil (for easier unmarshalling).
func FromExclusiveToExclusiveFromMarshalUtil[T constraints.Integer](marshalUtil *marshalutil.MarshalUtil) (rangeValue FromExclusiveToExclusive[T], err error) {
	start, err := marshalUtil.ReadUint64()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Start: %w", err)

		return
	}
	rangeValue.Start = T(start)

	end, err := marshalUtil.ReadUint64()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read End: %w", err)

		return
	}
	rangeValue.End = T(end)

	return
}

// Bytes returns a marshaled version of the range.
func (r FromExclusiveToExclusive[T]) Bytes() []byte {
	return marshalutil.New().
		WriteUint64(uint64(r.Start)).
		WriteUint64(uint64(r.End)).
		Bytes()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
