package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"btreeindex/pkg/codec"
)

func testSchema() Schema {
	return Schema{Fields: []FieldSpec{
		{Name: "age", Kind: codec.Int()},
		{Name: "score", Kind: codec.Float()},
		{Name: "active", Kind: codec.Bool()},
		{Name: "name", Kind: codec.String(8)},
		{Name: "tags", Kind: codec.List(codec.Int(), 3)},
	}}
}

func openTestFile(t *testing.T) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.bin")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriteReadRoundTrip(t *testing.T) {
	layout := NewLayout(testSchema())
	f := openTestFile(t)

	values := []codec.Value{
		codec.IntValue(30),
		codec.FloatValue(9.5),
		codec.BoolValue(true),
		codec.StringValue("alice"),
		codec.ListValue([]codec.Value{codec.IntValue(1), codec.IntValue(2)}),
	}

	require.NoError(t, layout.WriteRecord(f, 0, values))

	got, exists, err := layout.ReadRecord(f, 0)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, values, got)
}

func TestReadMissingSlotReturnsNotExists(t *testing.T) {
	layout := NewLayout(testSchema())
	f := openTestFile(t)

	_, exists, err := layout.ReadRecord(f, 5)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestDeleteOnlyClearsExistenceFlag(t *testing.T) {
	layout := NewLayout(testSchema())
	f := openTestFile(t)

	values := []codec.Value{
		codec.IntValue(1),
		codec.FloatValue(1),
		codec.BoolValue(true),
		codec.StringValue("x"),
		codec.ListValue(nil),
	}
	require.NoError(t, layout.WriteRecord(f, 0, values))
	require.NoError(t, layout.DeleteRecord(f, 0))

	_, exists, err := layout.ReadRecord(f, 0)
	require.NoError(t, err)
	require.False(t, exists)

	raw := make([]byte, layout.Width)
	_, err = f.ReadAt(raw, 0)
	require.NoError(t, err)
	// Field bytes beyond the flag remain, only the leading byte changed.
	require.Equal(t, byte(0x00), raw[0])
	require.Equal(t, codec.EncodeInt(1), raw[1:1+codec.IntWidth])
}

func TestRecordWidthConstantAcrossSlots(t *testing.T) {
	layout := NewLayout(testSchema())
	f := openTestFile(t)

	for i := int64(0); i < 4; i++ {
		values := []codec.Value{
			codec.IntValue(i),
			codec.FloatValue(float64(i)),
			codec.BoolValue(i%2 == 0),
			codec.StringValue("n"),
			codec.ListValue(nil),
		}
		require.NoError(t, layout.WriteRecord(f, i, values))
	}

	for i := int64(0); i < 4; i++ {
		got, exists, err := layout.ReadRecord(f, i)
		require.NoError(t, err)
		require.True(t, exists)
		require.Equal(t, i, got[0].Int)
	}
}

func TestFieldCountMismatch(t *testing.T) {
	layout := NewLayout(testSchema())
	f := openTestFile(t)
	err := layout.WriteRecord(f, 0, []codec.Value{codec.IntValue(1)})
	require.ErrorIs(t, err, ErrFieldCountMismatch)
}
