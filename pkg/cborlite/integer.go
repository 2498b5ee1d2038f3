package cborlite

import (
	"fmt"
	"math"
)

// UintSize returns the encoded size of v in bytes.
func UintSize(v uint64) int {
	return headerSize(v)
}

// IntSize returns the encoded size of v in bytes.
func IntSize(v int64) int {
	if v >= 0 {
		return headerSize(uint64(v))
	}
	return headerSize(uint64(-1 - v))
}

// AppendUint appends the canonical encoding of v (major type 0).
func AppendUint(dst []byte, v uint64) []byte {
	return appendHeader(dst, MajorUnsigned, v)
}

// EncodeUint returns the canonical encoding of v.
func EncodeUint(v uint64) []byte {
	return AppendUint(make([]byte, 0, UintSize(v)), v)
}

// AppendInt appends the canonical encoding of v. Non-negative values
// encode as major type 0; negative values encode as major type 1
// with magnitude -1-v.
func AppendInt(dst []byte, v int64) []byte {
	if v >= 0 {
		return appendHeader(dst, MajorUnsigned, uint64(v))
	}
	return appendHeader(dst, MajorNegative, uint64(-1-v))
}

// EncodeInt returns the canonical encoding of v.
func EncodeInt(v int64) []byte {
	return AppendInt(make([]byte, 0, IntSize(v)), v)
}

// DecodeUint decodes an unsigned integer (major type 0) from the
// start of data. It returns the value and the number of bytes
// consumed.
func DecodeUint(data []byte) (uint64, int, error) {
	h, err := decodeHead(data)
	if err != nil {
		return 0, 0, err
	}
	if h.major != MajorUnsigned {
		return 0, 0, fmt.Errorf("%w: expected unsigned integer, got major type %d", ErrInvalidMajorType, h.major)
	}
	return h.magnitude, h.width, nil
}

// DecodeInt decodes an integer (major type 0 or 1) from the start of
// data. Magnitudes beyond the int64 range fail with ErrIntOverflow.
func DecodeInt(data []byte) (int64, int, error) {
	h, err := decodeHead(data)
	if err != nil {
		return 0, 0, err
	}
	switch h.major {
	case MajorUnsigned:
		if h.magnitude > math.MaxInt64 {
			return 0, 0, fmt.Errorf("%w: %d", ErrIntOverflow, h.magnitude)
		}
		return int64(h.magnitude), h.width, nil
	case MajorNegative:
		if h.magnitude > math.MaxInt64 {
			return 0, 0, fmt.Errorf("%w: -1-%d", ErrIntOverflow, h.magnitude)
		}
		return -1 - int64(h.magnitude), h.width, nil
	default:
		return 0, 0, fmt.Errorf("%w: expected integer, got major type %d", ErrInvalidMajorType, h.major)
	}
}
