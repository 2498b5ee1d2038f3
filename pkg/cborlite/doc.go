// Package cborlite implements a minimal, canonical codec for the
// CBOR (RFC 8949) subset covering major types 0-3: unsigned integers,
// negative integers, byte strings, and UTF-8 text strings.
//
// # Canonical Encoding
//
// Encoders always produce the shortest header form that can represent
// a magnitude (RFC 8949 §4.2.1): values 0-23 live in the initial
// byte, larger magnitudes use 1, 2, 4, or 8 trailing big-endian
// bytes. The same value always encodes to the same bytes.
//
// Decoders are lenient: a non-minimal header (for example additional
// info 24 carrying the value 5) is accepted and decoded to its
// literal magnitude. Callers that require canonical input combine a
// decoder with Canonical.
//
// # Supported Subset
//
// Arrays, maps, tags, floats, simple values, and indefinite-length
// items are out of scope; any input using major types 4-7 is
// rejected with ErrInvalidMajorType. String lengths are limited to
// 32 bits on decode.
//
// # API Families
//
//   - AppendXxx appends an item to a byte slice.
//   - EncodeXxx allocates and returns the encoded item.
//   - DecodeXxx reads the first item from a byte slice and returns
//     the value along with the number of bytes consumed.
//   - XxxSize returns the exact encoded size ahead of encoding.
//
// The Value interface ties the four kinds together for callers that
// dispatch on the wire rather than on a known Go type.
package cborlite
