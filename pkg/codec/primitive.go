package codec

import (
	"encoding/binary"
	"math"
)

// Primitive encoders always write exactly their declared width and never
// fail. They do no character substitution: only the bounded-string
// encoder (EncodeString) filters non-ASCII input.

// EncodeInt writes a signed integer in IntWidth bytes, little-endian.
func EncodeInt(v int64) []byte {
	b := make([]byte, IntWidth)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}

// DecodeInt reads a signed integer from exactly IntWidth bytes.
func DecodeInt(b []byte) (int64, error) {
	if len(b) < IntWidth {
		return 0, ErrDecode
	}
	return int64(binary.LittleEndian.Uint64(b[:IntWidth])), nil
}

// EncodeFloat writes a float64 in FloatWidth bytes, little-endian.
func EncodeFloat(v float64) []byte {
	b := make([]byte, FloatWidth)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return b
}

// DecodeFloat reads a float64 from exactly FloatWidth bytes.
func DecodeFloat(b []byte) (float64, error) {
	if len(b) < FloatWidth {
		return 0, ErrDecode
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:FloatWidth])), nil
}

// EncodeBool writes the canonical 0x00/0x01 byte.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{0x01}
	}
	return []byte{0x00}
}

// DecodeBool treats any nonzero byte as true.
func DecodeBool(b []byte) (bool, error) {
	if len(b) < BoolWidth {
		return false, ErrDecode
	}
	return b[0] != 0x00, nil
}

// EncodeChar writes a single byte as given. No ASCII filtering is applied
// here or by Encode's KindChar case.
func EncodeChar(v byte) []byte {
	return []byte{v}
}

// DecodeChar reads a single character byte.
func DecodeChar(b []byte) (byte, error) {
	if len(b) < CharWidth {
		return 0, ErrDecode
	}
	return b[0], nil
}
