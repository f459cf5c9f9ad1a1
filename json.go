package xrange

import (
	"bytes"
	"encoding/json"

	"github.com/iotaledger/hive.go/ierrors"
)

// Ranges marshal to the record form through their field tags: a JSON object holding the endpoint
// values under "start" and "end" in declaration order. Unmarshaling additionally accepts the
// sequence form, a JSON array holding the endpoint values in the same order, and reports
// malformed records through the Err* sentinels declared in errors.go.

// UnmarshalJSON decodes the range from its record form, an object with a "start" field, or its
// sequence form, an array holding the start value alone.
func (r *FromExclusive[T]) UnmarshalJSON(data []byte) error {
	var start T
	if err := unmarshalFields(data, []string{"start"}, []any{&start}); err != nil {
		return err
	}
	r.Start = start

	return nil
}

// UnmarshalJSON decodes the range from its record form, an object with a "start" and an "end"
// field, or its sequence form, an array holding the start and end values in that order.
func (r *FromExclusiveToInclusive[T]) UnmarshalJSON(data []byte) error {
	var start, end T
	if err := unmarshalFields(data, []string{"start", "end"}, []any{&start, &end}); err != nil {
		return err
	}
	r.Start, r.End = start, end

	return nil
}

// UnmarshalJSON decodes the range from its record form, an object with a "start" and an "end"
// field, or its sequence form, an array holding the start and end values in that order.
func (r *FromExclusiveToExclusive[T]) UnmarshalJSON(data []byte) error {
	var start, end T
	if err := unmarshalFields(data, []string{"start", "end"}, []any{&start, &end}); err != nil {
		return err
	}
	r.Start, r.End = start, end

	return nil
}

// unmarshalFields decodes a serialized record into the given field destinations, accepting both
// the record form and the sequence form.
func unmarshalFields(data []byte, fieldNames []string, fields []any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	startToken, err := decoder.Token()
	if err != nil {
		return err
	}

	if delim, isDelim := startToken.(json.Delim); isDelim {
		switch delim {
		case '{':
			return unmarshalRecordForm(decoder, fieldNames, fields)
		case '[':
			return unmarshalSequenceForm(decoder, fields)
		}
	}

	return ierrors.Errorf("unsupported JSON form (%v)", startToken)
}

// unmarshalRecordForm decodes the fields of an object whose opening delimiter was already
// consumed. Every field has to appear exactly once for the record to be well-formed.
func unmarshalRecordForm(decoder *json.Decoder, fieldNames []string, fields []any) error {
	decoded := make([]bool, len(fields))
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}

		key, isString := keyToken.(string)
		if !isString {
			return ierrors.Errorf("unsupported field name (%v)", keyToken)
		}

		fieldIndex := -1
		for i, fieldName := range fieldNames {
			if fieldName == key {
				fieldIndex = i

				break
			}
		}

		if fieldIndex < 0 {
			return ierrors.Wrapf(ErrUnknownField, "%q", key)
		}
		if decoded[fieldIndex] {
			return ierrors.Wrapf(ErrDuplicateField, "%q", key)
		}
		decoded[fieldIndex] = true

		if err = decoder.Decode(fields[fieldIndex]); err != nil {
			return err
		}
	}

	if _, err := decoder.Token(); err != nil {
		return err
	}

	for i, fieldName := range fieldNames {
		if !decoded[i] {
			return ierrors.Wrapf(ErrMissingField, "%q", fieldName)
		}
	}

	return nil
}

// unmarshalSequenceForm decodes the elements of an array whose opening delimiter was already
// consumed. The array has to hold exactly one element per field to be well-formed.
func unmarshalSequenceForm(decoder *json.Decoder, fields []any) error {
	for i, field := range fields {
		if !decoder.More() {
			return ierrors.Wrapf(ErrInvalidLength, "got %d elements, want %d", i, len(fields))
		}
		if err := decoder.Decode(field); err != nil {
			return err
		}
	}

	if decoder.More() {
		return ierrors.Wrapf(ErrInvalidLength, "got more than %d elements", len(fields))
	}

	if _, err := decoder.Token(); err != nil {
		return err
	}

	return nil
}
