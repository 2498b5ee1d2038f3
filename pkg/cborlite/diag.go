package cborlite

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// DiagnoseValue returns the diagnostic notation (RFC 8949 §8) for v:
// decimal for integers, h'..' for byte strings, a quoted literal for
// text strings.
func DiagnoseValue(v Value) string {
	switch v := v.(type) {
	case Uint:
		return strconv.FormatUint(uint64(v), 10)
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case Bytes:
		return "h'" + hex.EncodeToString(v) + "'"
	case Text:
		return strconv.Quote(string(v))
	default:
		panic(fmt.Sprintf("cborlite: unknown value type %T", v))
	}
}

// Diagnose returns the diagnostic notation for the first item in
// data, along with the number of bytes it consumed.
func Diagnose(data []byte) (string, int, error) {
	v, n, err := Decode(data)
	if err != nil {
		return "", 0, err
	}
	return DiagnoseValue(v), n, nil
}
