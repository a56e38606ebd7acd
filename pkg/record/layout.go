package record

import (
	"errors"
	"io"

	"btreeindex/pkg/codec"
)

// ErrFieldCountMismatch is returned when a caller passes a value slice
// whose length does not match the schema's field count.
var ErrFieldCountMismatch = errors.New("record: value count does not match schema field count")

// existsFlagWidth is the one leading byte every record carries: false
// means the slot is logically empty.
const existsFlagWidth = 1

// Layout precomputes each field's byte offset relative to the record
// start (offset 0 is the existence flag) and the record's total width.
type Layout struct {
	schema  Schema
	offsets []int
	Width   int
}

// NewLayout computes field offsets and total record width for schema.
// record_width must not change for an existing file.
func NewLayout(schema Schema) Layout {
	offsets := make([]int, len(schema.Fields))
	pos := existsFlagWidth
	for i, f := range schema.Fields {
		offsets[i] = pos
		pos += codec.Width(f.Kind)
	}
	return Layout{schema: schema, offsets: offsets, Width: pos}
}

// WriteRecord seeks to slot_id * record_width, writes existence=true and
// each field in schema order.
func (l Layout) WriteRecord(w io.WriterAt, slotID int64, values []codec.Value) error {
	if len(values) != len(l.schema.Fields) {
		return ErrFieldCountMismatch
	}

	buf := make([]byte, l.Width)
	buf[0] = 0x01
	for i, f := range l.schema.Fields {
		enc, err := codec.Encode(f.Kind, values[i])
		if err != nil {
			return err
		}
		copy(buf[l.offsets[i]:], enc)
	}

	_, err := w.WriteAt(buf, slotID*int64(l.Width))
	return err
}

// ReadRecord seeks to slot_id * record_width and reads the existence
// flag; if false (or the slot has never been written) it returns
// exists=false. Otherwise it decodes every field in schema order.
func (l Layout) ReadRecord(r io.ReaderAt, slotID int64) (values []codec.Value, exists bool, err error) {
	buf := make([]byte, l.Width)
	_, err = r.ReadAt(buf, slotID*int64(l.Width))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if buf[0] == 0x00 {
		return nil, false, nil
	}

	values = make([]codec.Value, len(l.schema.Fields))
	for i, f := range l.schema.Fields {
		w := codec.Width(f.Kind)
		v, err := codec.Decode(f.Kind, buf[l.offsets[i]:l.offsets[i]+w])
		if err != nil {
			return nil, false, err
		}
		values[i] = v
	}
	return values, true, nil
}

// DeleteRecord seeks to slot_id * record_width and overwrites only the
// first byte (the existence flag) with false — the rest of the slot is
// left untouched, matching ObjectReadWriteHelper.delete_obj.
func (l Layout) DeleteRecord(w io.WriterAt, slotID int64) error {
	_, err := w.WriteAt([]byte{0x00}, slotID*int64(l.Width))
	return err
}
