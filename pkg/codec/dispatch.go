package codec

// Encode serializes v according to its declared FieldKind fk, returning
// exactly Width(fk) bytes on success.
func Encode(fk FieldKind, v Value) ([]byte, error) {
	switch fk.Kind {
	case KindInt:
		if v.Kind != KindInt {
			return nil, ErrEncode
		}
		return EncodeInt(v.Int), nil
	case KindFloat:
		if v.Kind != KindFloat {
			return nil, ErrEncode
		}
		return EncodeFloat(v.Float), nil
	case KindBool:
		if v.Kind != KindBool {
			return nil, ErrEncode
		}
		return EncodeBool(v.Bool), nil
	case KindChar:
		if v.Kind != KindChar {
			return nil, ErrEncode
		}
		return EncodeChar(v.Char), nil
	case KindString:
		if v.Kind != KindString {
			return nil, ErrEncode
		}
		return EncodeString(v.Str, fk.MaxChars), nil
	case KindList:
		if v.Kind != KindList {
			return nil, ErrEncode
		}
		return EncodeList(v.List, fk.Elem.Kind, fk.MaxLen)
	default:
		return nil, ErrEncode
	}
}

// Decode deserializes exactly Width(fk) bytes according to fk.
func Decode(fk FieldKind, b []byte) (Value, error) {
	if len(b) < Width(fk) {
		return Value{}, ErrDecode
	}
	switch fk.Kind {
	case KindInt:
		n, err := DecodeInt(b)
		return IntValue(n), err
	case KindFloat:
		f, err := DecodeFloat(b)
		return FloatValue(f), err
	case KindBool:
		bl, err := DecodeBool(b)
		return BoolValue(bl), err
	case KindChar:
		c, err := DecodeChar(b)
		return CharValue(c), err
	case KindString:
		s, err := DecodeString(b, fk.MaxChars)
		return StringValue(s), err
	case KindList:
		vs, err := DecodeList(b, fk.Elem.Kind, fk.MaxLen)
		return ListValue(vs), err
	default:
		return Value{}, ErrDecode
	}
}
