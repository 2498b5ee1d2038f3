package cborlite

import "fmt"

// BytesSize returns the encoded size of an n-byte byte string.
func BytesSize(n int) int {
	return headerSize(uint64(n)) + n
}

// TextSize returns the encoded size of s as a text string.
func TextSize(s string) int {
	return headerSize(uint64(len(s))) + len(s)
}

// AppendBytes appends the canonical encoding of p as a byte string
// (major type 2): length header followed by the payload verbatim.
func AppendBytes(dst, p []byte) []byte {
	dst = appendHeader(dst, MajorBytes, uint64(len(p)))
	return append(dst, p...)
}

// EncodeBytes returns the canonical encoding of p as a byte string.
func EncodeBytes(p []byte) []byte {
	return AppendBytes(make([]byte, 0, BytesSize(len(p))), p)
}

// AppendText appends the canonical encoding of s as a text string
// (major type 3). s is trusted to be valid UTF-8, which Go string
// values produced from UTF-8 sources are; nothing re-validates it.
func AppendText(dst []byte, s string) []byte {
	dst = appendHeader(dst, MajorText, uint64(len(s)))
	return append(dst, s...)
}

// EncodeText returns the canonical encoding of s as a text string.
func EncodeText(s string) []byte {
	return AppendText(make([]byte, 0, TextSize(s)), s)
}

// decodeString recovers a string payload under the given major type.
// The returned slice aliases data.
func decodeString(data []byte, major byte) ([]byte, int, error) {
	h, err := decodeHead(data)
	if err != nil {
		return nil, 0, err
	}
	if h.major != major {
		return nil, 0, fmt.Errorf("%w: expected major type %d, got %d", ErrInvalidMajorType, major, h.major)
	}
	// An 8-byte length would exceed what a []byte can be sized to on
	// 32-bit targets; reject it before looking at the payload.
	if h.width == 9 {
		return nil, 0, fmt.Errorf("%w: %d", ErrLengthTooLong, h.magnitude)
	}
	// Bounds arithmetic stays in uint64: a 4-byte length can exceed
	// int where int is 32 bits.
	avail := uint64(len(data) - h.width)
	if h.magnitude > avail {
		return nil, 0, fmt.Errorf("%w: need %d payload bytes, have %d", ErrInputTooShort, h.magnitude, avail)
	}
	end := h.width + int(h.magnitude)
	return data[h.width:end], end, nil
}

// DecodeBytes decodes a byte string (major type 2) from the start of
// data. The returned payload is a copy and does not alias data.
func DecodeBytes(data []byte) ([]byte, int, error) {
	p, n, err := decodeString(data, MajorBytes)
	if err != nil {
		return nil, 0, err
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, n, nil
}

// DecodeText decodes a text string (major type 3) from the start of
// data. The payload is not checked for well-formed UTF-8; callers
// that need the guarantee must validate it themselves.
func DecodeText(data []byte) (string, int, error) {
	p, n, err := decodeString(data, MajorText)
	if err != nil {
		return "", 0, err
	}
	return string(p), n, nil
}
