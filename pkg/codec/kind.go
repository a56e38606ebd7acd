// Package codec implements fixed-width binary encode/decode of the
// primitive and composite field kinds a record schema can declare:
// signed integer, float, boolean, character, bounded string and bounded
// homogeneous list. Every encoding occupies exactly its declared width so
// that a record's total byte size never depends on the values it holds.
package codec

// Width-in-bytes of each primitive kind. Chosen once for the life of a
// file — changing these changes record_width for every existing file.
const (
	IntWidth   = 8 // W_i
	FloatWidth = 8 // W_f
	BoolWidth  = 1 // W_b
	CharWidth  = 1 // W_c
)

// Kind discriminates the tagged FieldKind variant.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindChar
	KindString
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// FieldKind is the tagged variant described in spec's design notes:
// { Int, Float, Bool, Char, String{max_chars}, List{element, max_len} }.
// Constructed once per record type and passed wherever Record Layout needs
// it — never derived by reflection.
type FieldKind struct {
	Kind Kind

	// MaxChars is the declared maximum character count for KindString.
	MaxChars int

	// Elem and MaxLen describe a KindList's element kind and maximum
	// length. EncodeList and DecodeList accept only int, float and bool
	// elements; a list of strings or chars fails with
	// ErrListElementKindUnsupported.
	Elem   *FieldKind
	MaxLen int
}

// Int returns the FieldKind for a fixed-width signed integer.
func Int() FieldKind { return FieldKind{Kind: KindInt} }

// Float returns the FieldKind for a fixed-width float.
func Float() FieldKind { return FieldKind{Kind: KindFloat} }

// Bool returns the FieldKind for a fixed-width boolean.
func Bool() FieldKind { return FieldKind{Kind: KindBool} }

// Char returns the FieldKind for a fixed-width character.
func Char() FieldKind { return FieldKind{Kind: KindChar} }

// String returns the FieldKind for a bounded string of at most maxChars
// characters.
func String(maxChars int) FieldKind { return FieldKind{Kind: KindString, MaxChars: maxChars} }

// List returns the FieldKind for a bounded homogeneous list of at most
// maxLen elements of kind elem.
func List(elem FieldKind, maxLen int) FieldKind {
	e := elem
	return FieldKind{Kind: KindList, Elem: &e, MaxLen: maxLen}
}

// Width returns the constant number of bytes a value of this kind occupies
// on disk.
func Width(fk FieldKind) int {
	switch fk.Kind {
	case KindInt:
		return IntWidth
	case KindFloat:
		return FloatWidth
	case KindBool:
		return BoolWidth
	case KindChar:
		return CharWidth
	case KindString:
		return (fk.MaxChars + 1) * CharWidth
	case KindList:
		return IntWidth + fk.MaxLen*Width(*fk.Elem)
	default:
		return 0
	}
}

// Value is the discriminated union carried between Record Layout and
// Codec. Exactly one field is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Int   int64
	Float float64
	Bool  bool
	Char  byte
	Str   string
	List  []Value
}

func IntValue(v int64) Value     { return Value{Kind: KindInt, Int: v} }
func FloatValue(v float64) Value { return Value{Kind: KindFloat, Float: v} }
func BoolValue(v bool) Value     { return Value{Kind: KindBool, Bool: v} }
func CharValue(v byte) Value     { return Value{Kind: KindChar, Char: v} }
func StringValue(v string) Value { return Value{Kind: KindString, Str: v} }
func ListValue(v []Value) Value  { return Value{Kind: KindList, List: v} }
