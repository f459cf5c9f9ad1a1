package xrange

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrParseBytesFailed is returned if information can not be parsed from a sequence of bytes.
	ErrParseBytesFailed = ierrors.New("failed to parse bytes")

	// ErrDuplicateField is returned if a field appears more than once in a serialized record.
	ErrDuplicateField = ierrors.New("duplicate field")

	// ErrMissingField is returned if a serialized record lacks one of the fields of the target type.
	ErrMissingField = ierrors.New("missing field")

	// ErrUnknownField is returned if a serialized record contains a field that the target type does
	// not have.
	ErrUnknownField = ierrors.New("unknown field")

	// ErrInvalidLength is returned if a serialized sequence does not contain exactly one element per
	// field of the target type.
	ErrInvalidLength = ierrors.New("invalid length")
)
