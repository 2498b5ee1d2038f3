package cborlite

import (
	"encoding/binary"
	"fmt"
)

// CBOR major types (RFC 8949 §3.1). Only 0-3 are supported.
const (
	MajorUnsigned byte = 0 // unsigned integer
	MajorNegative byte = 1 // negative integer
	MajorBytes    byte = 2 // byte string
	MajorText     byte = 3 // UTF-8 text string
)

// Additional-info codes signalling trailing big-endian magnitude bytes.
const (
	aiOneByte    = 24
	aiTwoBytes   = 25
	aiFourBytes  = 26
	aiEightBytes = 27

	// maxDirect is the largest magnitude carried in the initial byte.
	maxDirect = 23
)

// headerSize returns the canonical header width for magnitude:
// 1, 2, 3, 5, or 9 bytes.
func headerSize(magnitude uint64) int {
	switch {
	case magnitude <= maxDirect:
		return 1
	case magnitude <= 0xff:
		return 2
	case magnitude <= 0xffff:
		return 3
	case magnitude <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// appendHeader appends the canonical header for magnitude under the
// given major type, always using the shortest form. major must be
// 0-3; anything else is a programming error, not input.
func appendHeader(dst []byte, major byte, magnitude uint64) []byte {
	if major > MajorText {
		panic(fmt.Sprintf("cborlite: major type %d out of range", major))
	}
	prefix := major << 5
	switch {
	case magnitude <= maxDirect:
		return append(dst, prefix|byte(magnitude))
	case magnitude <= 0xff:
		return append(dst, prefix|aiOneByte, byte(magnitude))
	case magnitude <= 0xffff:
		return append(dst, prefix|aiTwoBytes, byte(magnitude>>8), byte(magnitude))
	case magnitude <= 0xffffffff:
		dst = append(dst, prefix|aiFourBytes)
		return binary.BigEndian.AppendUint32(dst, uint32(magnitude))
	default:
		dst = append(dst, prefix|aiEightBytes)
		return binary.BigEndian.AppendUint64(dst, magnitude)
	}
}

// head is a parsed item header.
type head struct {
	major     byte
	magnitude uint64
	width     int // header bytes consumed
}

// decodeHead parses the header of the first item in data. It accepts
// non-minimal headers; use Canonical to detect them.
func decodeHead(data []byte) (head, error) {
	if len(data) == 0 {
		return head{}, ErrInputTooShort
	}
	h := head{major: data[0] >> 5}
	ai := data[0] & 0x1f
	switch {
	case ai <= maxDirect:
		h.magnitude = uint64(ai)
		h.width = 1
	case ai == aiOneByte:
		if len(data) < 2 {
			return head{}, fmt.Errorf("%w: additional info 24 needs 1 more byte", ErrInputTooShort)
		}
		h.magnitude = uint64(data[1])
		h.width = 2
	case ai == aiTwoBytes:
		if len(data) < 3 {
			return head{}, fmt.Errorf("%w: additional info 25 needs 2 more bytes, have %d", ErrInputTooShort, len(data)-1)
		}
		h.magnitude = uint64(binary.BigEndian.Uint16(data[1:3]))
		h.width = 3
	case ai == aiFourBytes:
		if len(data) < 5 {
			return head{}, fmt.Errorf("%w: additional info 26 needs 4 more bytes, have %d", ErrInputTooShort, len(data)-1)
		}
		h.magnitude = uint64(binary.BigEndian.Uint32(data[1:5]))
		h.width = 5
	case ai == aiEightBytes:
		if len(data) < 9 {
			return head{}, fmt.Errorf("%w: additional info 27 needs 8 more bytes, have %d", ErrInputTooShort, len(data)-1)
		}
		h.magnitude = binary.BigEndian.Uint64(data[1:9])
		h.width = 9
	default:
		return head{}, fmt.Errorf("%w: %d", ErrInvalidAdditionalInfo, ai)
	}
	return h, nil
}

// Canonical reports whether the first item in data encodes its
// magnitude with the fewest possible header bytes. It does not
// inspect the payload of strings.
func Canonical(data []byte) (bool, error) {
	h, err := decodeHead(data)
	if err != nil {
		return false, err
	}
	return h.width == headerSize(h.magnitude), nil
}
