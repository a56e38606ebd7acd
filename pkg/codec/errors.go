package codec

import "errors"

// Error kinds surfaced by the codec layer. Encode/decode failures are
// returned, never panicked, so a caller can abort the current operation
// cleanly.
var (
	// ErrEncode means a value does not fit its declared kind.
	ErrEncode = errors.New("codec: value does not fit its declared kind")
	// ErrDecode means bytes read are not valid for the declared kind.
	ErrDecode = errors.New("codec: bytes are not valid for the declared kind")
	// ErrListTooLarge means a list's length exceeds its declared maximum.
	ErrListTooLarge = errors.New("codec: list length exceeds declared maximum")
	// ErrListElementTypeMismatch means a list element's kind differs from
	// the list's declared element kind.
	ErrListElementTypeMismatch = errors.New("codec: list element kind differs from declared element kind")
	// ErrListElementKindUnsupported means the declared element kind is not
	// among the supported primitives for list serialization.
	ErrListElementKindUnsupported = errors.New("codec: list element kind is not a supported primitive")
	// ErrNonPrimitiveAsPrimitive means a complex value reached a code path
	// expecting a primitive, or vice versa.
	ErrNonPrimitiveAsPrimitive = errors.New("codec: non-primitive value used where a primitive was expected")
)
