package cborlite

import "errors"

// Decode errors.
var (
	// ErrInputTooShort indicates the input ends before the item does.
	ErrInputTooShort = errors.New("input too short")

	// ErrInvalidMajorType indicates a major type outside the decoder's
	// accepted set.
	ErrInvalidMajorType = errors.New("invalid major type")

	// ErrInvalidAdditionalInfo indicates additional info 28-31, which
	// is reserved or indefinite-length and not part of this subset.
	ErrInvalidAdditionalInfo = errors.New("invalid additional info")

	// ErrLengthTooLong indicates a string length that needs more than
	// 32 bits.
	ErrLengthTooLong = errors.New("string length exceeds 32 bits")

	// ErrIntOverflow indicates an integer magnitude that does not fit
	// in an int64.
	ErrIntOverflow = errors.New("integer overflows int64")
)
