package cborlite

import "fmt"

// Value is a CBOR data item in the supported subset. Exactly four
// types implement it:
//   - Uint
//   - Int
//   - Bytes
//   - Text
//
// Only the active kind's payload exists; there is no shared record
// with inactive fields.
type Value interface {
	// EncodedSize returns the number of bytes Encode produces.
	EncodedSize() int

	append(dst []byte) []byte
}

var (
	_ Value = Uint(0)
	_ Value = Int(0)
	_ Value = Bytes(nil)
	_ Value = Text("")
)

// Uint is an unsigned integer (major type 0).
type Uint uint64

// Int is a signed integer (major type 0 when non-negative, 1 when
// negative).
type Int int64

// Bytes is a byte string (major type 2).
type Bytes []byte

// Text is a UTF-8 text string (major type 3).
type Text string

func (v Uint) EncodedSize() int  { return UintSize(uint64(v)) }
func (v Int) EncodedSize() int   { return IntSize(int64(v)) }
func (v Bytes) EncodedSize() int { return BytesSize(len(v)) }
func (v Text) EncodedSize() int  { return TextSize(string(v)) }

func (v Uint) append(dst []byte) []byte  { return AppendUint(dst, uint64(v)) }
func (v Int) append(dst []byte) []byte   { return AppendInt(dst, int64(v)) }
func (v Bytes) append(dst []byte) []byte { return AppendBytes(dst, v) }
func (v Text) append(dst []byte) []byte  { return AppendText(dst, string(v)) }

// Append appends the canonical encoding of v to dst.
func Append(dst []byte, v Value) []byte {
	return v.append(dst)
}

// Encode returns the canonical encoding of v.
func Encode(v Value) []byte {
	return v.append(make([]byte, 0, v.EncodedSize()))
}

// Decode decodes the first item in data, dispatching on its major
// type: Uint for major type 0, Int for 1, Bytes for 2, Text for 3.
// Major types 4-7 fail with ErrInvalidMajorType. It returns the
// value and the number of bytes consumed.
func Decode(data []byte) (Value, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrInputTooShort
	}
	switch major := data[0] >> 5; major {
	case MajorUnsigned:
		v, n, err := DecodeUint(data)
		if err != nil {
			return nil, 0, err
		}
		return Uint(v), n, nil
	case MajorNegative:
		v, n, err := DecodeInt(data)
		if err != nil {
			return nil, 0, err
		}
		return Int(v), n, nil
	case MajorBytes:
		p, n, err := DecodeBytes(data)
		if err != nil {
			return nil, 0, err
		}
		return Bytes(p), n, nil
	case MajorText:
		s, n, err := DecodeText(data)
		if err != nil {
			return nil, 0, err
		}
		return Text(s), n, nil
	default:
		return nil, 0, fmt.Errorf("%w: major type %d not supported", ErrInvalidMajorType, major)
	}
}
