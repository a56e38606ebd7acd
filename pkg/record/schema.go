// Package record implements the fixed-width record layout each node (and
// each generic persisted record) uses on disk: a leading existence flag
// followed by the concatenation of each field's encoded form, in schema
// order, at a pre-declared offset.
package record

import "btreeindex/pkg/codec"

// FieldSpec names one field of a record type and declares its kind.
type FieldSpec struct {
	Name string
	Kind codec.FieldKind
}

// Schema is the ordered field list Record Layout needs to compute offsets
// and total width — constructed once per record type and never derived by
// reflection.
type Schema struct {
	Fields []FieldSpec
}
