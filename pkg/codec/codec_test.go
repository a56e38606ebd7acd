package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	i, err := DecodeInt(EncodeInt(-42))
	require.NoError(t, err)
	require.Equal(t, int64(-42), i)

	f, err := DecodeFloat(EncodeFloat(3.5))
	require.NoError(t, err)
	require.Equal(t, 3.5, f)

	b, err := DecodeBool(EncodeBool(true))
	require.NoError(t, err)
	require.True(t, b)

	b, err = DecodeBool(EncodeBool(false))
	require.NoError(t, err)
	require.False(t, b)

	c, err := DecodeChar(EncodeChar('x'))
	require.NoError(t, err)
	require.Equal(t, byte('x'), c)
}

func TestPrimitiveWidthIsFixed(t *testing.T) {
	require.Len(t, EncodeInt(1), IntWidth)
	require.Len(t, EncodeFloat(1), FloatWidth)
	require.Len(t, EncodeBool(true), BoolWidth)
	require.Len(t, EncodeChar('a'), CharWidth)
}

func TestStringRoundTrip(t *testing.T) {
	enc := EncodeString("hello", 10)
	require.Len(t, enc, (10+1)*CharWidth)

	s, err := DecodeString(enc, 10)
	require.NoError(t, err)
	require.Equal(t, "hello", s)
}

func TestStringTruncatesToMaxChars(t *testing.T) {
	enc := EncodeString("abcdefgh", 3)
	s, err := DecodeString(enc, 3)
	require.NoError(t, err)
	require.Equal(t, "abc", s)
}

func TestStringFiltersNonASCII(t *testing.T) {
	enc := EncodeString("aéb", 10) // 'é' is outside 7-bit ASCII
	s, err := DecodeString(enc, 10)
	require.NoError(t, err)
	require.Equal(t, "a b", s)
}

// Padding invariant: encoding a string of length k<=M followed by another
// value must place that value at exactly offset (M+1)*W_c after the
// string's start.
func TestStringPaddingOffset(t *testing.T) {
	const maxChars = 5
	strBytes := EncodeString("ab", maxChars)
	nextBytes := EncodeInt(99)

	buf := append(append([]byte{}, strBytes...), nextBytes...)
	require.Equal(t, (maxChars+1)*CharWidth, len(strBytes))

	got, err := DecodeInt(buf[len(strBytes):])
	require.NoError(t, err)
	require.Equal(t, int64(99), got)
}

func TestListRoundTrip(t *testing.T) {
	values := []Value{IntValue(1), IntValue(2), IntValue(3)}
	enc, err := EncodeList(values, KindInt, 5)
	require.NoError(t, err)
	require.Len(t, enc, IntWidth+5*IntWidth)

	dec, err := DecodeList(enc, KindInt, 5)
	require.NoError(t, err)
	require.Equal(t, values, dec)
}

func TestListTooLarge(t *testing.T) {
	values := []Value{IntValue(1), IntValue(2), IntValue(3)}
	_, err := EncodeList(values, KindInt, 2)
	require.ErrorIs(t, err, ErrListTooLarge)
}

func TestListElementTypeMismatch(t *testing.T) {
	values := []Value{IntValue(1), FloatValue(2)}
	_, err := EncodeList(values, KindInt, 5)
	require.ErrorIs(t, err, ErrListElementTypeMismatch)
}

func TestListElementKindUnsupported(t *testing.T) {
	_, err := EncodeList(nil, KindString, 5)
	require.ErrorIs(t, err, ErrListElementKindUnsupported)
}

func TestEncodeDecodeDispatch(t *testing.T) {
	fk := List(Int(), 4)
	v := ListValue([]Value{IntValue(7), IntValue(8)})

	enc, err := Encode(fk, v)
	require.NoError(t, err)
	require.Len(t, enc, Width(fk))

	dec, err := Decode(fk, enc)
	require.NoError(t, err)
	require.Equal(t, v, dec)
}
