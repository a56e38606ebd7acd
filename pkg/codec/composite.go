package codec

import "regexp"

// nonASCII matches any code point outside the 7-bit ASCII range, mirroring
// ReadWriteHelper's _remove_invalid_char.
var nonASCII = regexp.MustCompile(`[^\x00-\x7f]`)

// sanitizeASCII replaces every non-ASCII code point with a single space
// before a string is encoded, never erroring.
func sanitizeASCII(s string) string {
	return nonASCII.ReplaceAllString(s, " ")
}

// EncodeString writes a bounded string of declared maximum character
// count maxChars: up to maxChars characters, a null terminator, and
// padding to the full (maxChars+1)*CharWidth reserved width. Non-ASCII
// input is filtered to spaces rather than rejected.
func EncodeString(s string, maxChars int) []byte {
	s = sanitizeASCII(s)
	width := (maxChars + 1) * CharWidth
	out := make([]byte, width) // zero-valued bytes already serve as null padding
	n := len(s)
	if n > maxChars {
		n = maxChars
	}
	copy(out, s[:n])
	// out[n] is already 0x00 (the terminator); the rest is padding.
	return out
}

// DecodeString reads characters until the first null or maxChars
// characters, whichever comes first, then treats the cursor as advanced
// to the end of the reserved slot regardless.
func DecodeString(b []byte, maxChars int) (string, error) {
	width := (maxChars + 1) * CharWidth
	if len(b) < width {
		return "", ErrDecode
	}
	n := 0
	for n < maxChars && b[n] != 0 {
		n++
	}
	return string(b[:n]), nil
}

// primitiveWidth returns the width of a primitive element kind usable
// inside a list, or 0 if kind is not a supported list element kind.
func primitiveWidth(kind Kind) int {
	switch kind {
	case KindInt:
		return IntWidth
	case KindFloat:
		return FloatWidth
	case KindBool:
		return BoolWidth
	default:
		return 0
	}
}

func encodePrimitive(v Value) ([]byte, error) {
	switch v.Kind {
	case KindInt:
		return EncodeInt(v.Int), nil
	case KindFloat:
		return EncodeFloat(v.Float), nil
	case KindBool:
		return EncodeBool(v.Bool), nil
	default:
		return nil, ErrNonPrimitiveAsPrimitive
	}
}

func decodePrimitive(kind Kind, b []byte) (Value, error) {
	switch kind {
	case KindInt:
		n, err := DecodeInt(b)
		return IntValue(n), err
	case KindFloat:
		f, err := DecodeFloat(b)
		return FloatValue(f), err
	case KindBool:
		bl, err := DecodeBool(b)
		return BoolValue(bl), err
	default:
		return Value{}, ErrNonPrimitiveAsPrimitive
	}
}

// EncodeList writes a length prefix (IntWidth) followed by exactly maxLen
// element slots of elemKind's fixed width. Only the first len(values)
// slots carry meaningful data; the rest are the element kind's zero
// value. elemKind must be one of the primitive kinds supported in lists
// (int, float, bool).
func EncodeList(values []Value, elemKind Kind, maxLen int) ([]byte, error) {
	elemWidth := primitiveWidth(elemKind)
	if elemWidth == 0 {
		return nil, ErrListElementKindUnsupported
	}
	if len(values) > maxLen {
		return nil, ErrListTooLarge
	}

	out := make([]byte, 0, IntWidth+maxLen*elemWidth)
	out = append(out, EncodeInt(int64(len(values)))...)
	for _, v := range values {
		if v.Kind != elemKind {
			return nil, ErrListElementTypeMismatch
		}
		enc, err := encodePrimitive(v)
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
	}
	// Remaining slots are the element kind's zero value (int 0, float
	// 0.0, bool false), which is exactly the zero byte pattern.
	out = out[:cap(out)]
	return out, nil
}

// DecodeList reads a length prefix then up to maxLen element slots of
// elemKind, returning only the meaningful ones (the first `length`).
func DecodeList(b []byte, elemKind Kind, maxLen int) ([]Value, error) {
	elemWidth := primitiveWidth(elemKind)
	if elemWidth == 0 {
		return nil, ErrListElementKindUnsupported
	}
	width := IntWidth + maxLen*elemWidth
	if len(b) < width {
		return nil, ErrDecode
	}
	length, err := DecodeInt(b[:IntWidth])
	if err != nil {
		return nil, err
	}
	if length < 0 || int(length) > maxLen {
		return nil, ErrDecode
	}

	out := make([]Value, 0, length)
	pos := IntWidth
	for i := int64(0); i < length; i++ {
		v, err := decodePrimitive(elemKind, b[pos:pos+elemWidth])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		pos += elemWidth
	}
	return out, nil
}
