package recordstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"btreeindex/pkg/codec"
	"btreeindex/pkg/record"
)

func testLayout() record.Layout {
	return record.NewLayout(record.Schema{Fields: []record.FieldSpec{
		{Name: "v", Kind: codec.Int()},
	}})
}

func TestSaveAppendsThenOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t", "store.bin")
	s, err := Open(path, testLayout())
	require.NoError(t, err)
	defer s.Close()

	id0, err := s.Save(-1, []codec.Value{codec.IntValue(1)})
	require.NoError(t, err)
	require.Equal(t, int64(0), id0)

	id1, err := s.Save(-1, []codec.Value{codec.IntValue(2)})
	require.NoError(t, err)
	require.Equal(t, int64(1), id1)

	_, err = s.Save(id0, []codec.Value{codec.IntValue(99)})
	require.NoError(t, err)

	vals, exists, err := s.FindByID(id0)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, int64(99), vals[0].Int)
}

func TestFindByIDMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.bin")
	s, err := Open(path, testLayout())
	require.NoError(t, err)
	defer s.Close()

	_, exists, err := s.FindByID(7)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestDeleteLeavesSlotAsHole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.bin")
	s, err := Open(path, testLayout())
	require.NoError(t, err)
	defer s.Close()

	id, err := s.Save(-1, []codec.Value{codec.IntValue(5)})
	require.NoError(t, err)
	require.NoError(t, s.Delete(id))

	_, exists, err := s.FindByID(id)
	require.NoError(t, err)
	require.False(t, exists)

	// Append-only: the next save does not reuse the deleted slot.
	nextID, err := s.Save(-1, []codec.Value{codec.IntValue(6)})
	require.NoError(t, err)
	require.NotEqual(t, id, nextID)
}

func TestReopenResumesSlotAllocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.bin")
	s, err := Open(path, testLayout())
	require.NoError(t, err)

	id, err := s.Save(-1, []codec.Value{codec.IntValue(1)})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(path, testLayout())
	require.NoError(t, err)
	defer s2.Close()

	nextID, err := s2.Save(-1, []codec.Value{codec.IntValue(2)})
	require.NoError(t, err)
	require.Equal(t, id+1, nextID)
}

func TestDrop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.bin")
	s, err := Open(path, testLayout())
	require.NoError(t, err)
	require.NoError(t, s.Drop())

	_, err = Open(path, testLayout())
	require.NoError(t, err)
}
