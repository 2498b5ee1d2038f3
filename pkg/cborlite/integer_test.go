package cborlite

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestEncodeUintVectors(t *testing.T) {
	tests := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{10, []byte{0x0a}},
		{23, []byte{0x17}},
		{24, []byte{0x18, 0x18}},
		{100, []byte{0x18, 0x64}},
		{255, []byte{0x18, 0xff}},
		{256, []byte{0x19, 0x01, 0x00}},
		{1000, []byte{0x19, 0x03, 0xe8}},
		{65535, []byte{0x19, 0xff, 0xff}},
		{65536, []byte{0x1a, 0x00, 0x01, 0x00, 0x00}},
		{1000000, []byte{0x1a, 0x00, 0x0f, 0x42, 0x40}},
		{4294967295, []byte{0x1a, 0xff, 0xff, 0xff, 0xff}},
		{4294967296, []byte{0x1b, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}},
		{math.MaxUint64, []byte{0x1b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		got := EncodeUint(tt.value)
		if !bytes.Equal(got, tt.want) {
			t.Errorf("EncodeUint(%d) = %x, want %x", tt.value, got, tt.want)
		}
		if len(got) != UintSize(tt.value) {
			t.Errorf("EncodeUint(%d) length %d, UintSize says %d", tt.value, len(got), UintSize(tt.value))
		}
	}
}

func TestEncodeIntVectors(t *testing.T) {
	tests := []struct {
		value int64
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{23, []byte{0x17}},
		{24, []byte{0x18, 0x18}},
		{-1, []byte{0x20}},
		{-10, []byte{0x29}},
		{-24, []byte{0x37}},
		{-25, []byte{0x38, 0x18}},
		{-100, []byte{0x38, 0x63}},
		{-256, []byte{0x38, 0xff}},
		{-257, []byte{0x39, 0x01, 0x00}},
		{-1000, []byte{0x39, 0x03, 0xe7}},
		{math.MaxInt64, []byte{0x1b, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{math.MinInt64, []byte{0x3b, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		got := EncodeInt(tt.value)
		if !bytes.Equal(got, tt.want) {
			t.Errorf("EncodeInt(%d) = %x, want %x", tt.value, got, tt.want)
		}
		if len(got) != IntSize(tt.value) {
			t.Errorf("EncodeInt(%d) length %d, IntSize says %d", tt.value, len(got), IntSize(tt.value))
		}
	}
}

func TestUintRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 23, 24, 255, 256, 65535, 65536,
		4294967295, 4294967296, math.MaxInt64, math.MaxUint64,
	}

	for _, v := range values {
		data := EncodeUint(v)
		got, n, err := DecodeUint(data)
		if err != nil {
			t.Fatalf("DecodeUint(%x) failed: %v", data, err)
		}
		if got != v {
			t.Errorf("round trip of %d gave %d", v, got)
		}
		if n != len(data) {
			t.Errorf("DecodeUint(%x) consumed %d of %d bytes", data, n, len(data))
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, 23, 24, 255, 256, -1, -24, -25, -256, -257,
		-65536, -65537, -4294967296, -4294967297,
		math.MaxInt64, math.MinInt64,
	}

	for _, v := range values {
		data := EncodeInt(v)
		got, n, err := DecodeInt(data)
		if err != nil {
			t.Fatalf("DecodeInt(%x) failed: %v", data, err)
		}
		if got != v {
			t.Errorf("round trip of %d gave %d", v, got)
		}
		if n != len(data) {
			t.Errorf("DecodeInt(%x) consumed %d of %d bytes", data, n, len(data))
		}
	}
}

func TestDecodeUintWrongMajorType(t *testing.T) {
	inputs := [][]byte{
		{0x20},       // negative integer
		{0x41, 0x00}, // byte string
		{0x61, 0x61}, // text string
	}

	for _, input := range inputs {
		if _, _, err := DecodeUint(input); !errors.Is(err, ErrInvalidMajorType) {
			t.Errorf("DecodeUint(%x) error = %v, want ErrInvalidMajorType", input, err)
		}
	}
}

func TestDecodeIntWrongMajorType(t *testing.T) {
	inputs := [][]byte{
		{0x41, 0x00}, // byte string
		{0x61, 0x61}, // text string
	}

	for _, input := range inputs {
		if _, _, err := DecodeInt(input); !errors.Is(err, ErrInvalidMajorType) {
			t.Errorf("DecodeInt(%x) error = %v, want ErrInvalidMajorType", input, err)
		}
	}
}

func TestDecodeIntOverflow(t *testing.T) {
	// Magnitude 2^63 does not fit an int64 under either sign.
	tooBig := []byte{0x1b, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if _, _, err := DecodeInt(tooBig); !errors.Is(err, ErrIntOverflow) {
		t.Errorf("DecodeInt(%x) error = %v, want ErrIntOverflow", tooBig, err)
	}

	tooNegative := []byte{0x3b, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if _, _, err := DecodeInt(tooNegative); !errors.Is(err, ErrIntOverflow) {
		t.Errorf("DecodeInt(%x) error = %v, want ErrIntOverflow", tooNegative, err)
	}

	// The full uint64 range stays available through DecodeUint.
	if v, _, err := DecodeUint(tooBig); err != nil || v != 1<<63 {
		t.Errorf("DecodeUint(%x) = %d, %v, want %d", tooBig, v, err, uint64(1)<<63)
	}
}

func TestDecodeIntNonMinimalHeader(t *testing.T) {
	// Non-minimal encodings decode to their literal magnitude.
	v, n, err := DecodeInt([]byte{0x38, 0x00})
	if err != nil {
		t.Fatalf("DecodeInt failed: %v", err)
	}
	if v != -1 || n != 2 {
		t.Errorf("DecodeInt(3800) = %d (consumed %d), want -1 (consumed 2)", v, n)
	}
}
