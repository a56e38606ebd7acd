package btree

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeStorePutGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.bin")
	ns, err := NewNodeStore[int64](path, Int64Keys(), 4)
	require.NoError(t, err)
	t.Cleanup(func() { ns.Close() })

	n := &Node[int64]{
		ID:          -1,
		ParentID:    -1,
		Keys:        []int64{1, 2, 3},
		Contents:    []int64{10, 20, 30},
		ChildrenIDs: nil,
	}
	require.NoError(t, ns.Put(n))
	require.GreaterOrEqual(t, n.ID, int64(0))

	got, err := ns.Get(n.ID)
	require.NoError(t, err)
	require.Equal(t, n.Keys, got.Keys)
	require.Equal(t, n.Contents, got.Contents)
	require.Equal(t, n.ParentID, got.ParentID)
}

func TestNodeStoreGetMissingIsIndexCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.bin")
	ns, err := NewNodeStore[int64](path, Int64Keys(), 4)
	require.NoError(t, err)
	t.Cleanup(func() { ns.Close() })

	_, err = ns.Get(42)
	require.ErrorIs(t, err, ErrIndexCorrupt)
}

func TestNodeStoreDeleteFreesSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.bin")
	ns, err := NewNodeStore[int64](path, Int64Keys(), 4)
	require.NoError(t, err)
	t.Cleanup(func() { ns.Close() })

	n := &Node[int64]{ID: -1, ParentID: -1, Keys: []int64{1}, Contents: []int64{1}}
	require.NoError(t, ns.Put(n))
	require.NoError(t, ns.Delete(n.ID))

	_, err = ns.Get(n.ID)
	require.ErrorIs(t, err, ErrIndexCorrupt)
}

func TestMetaStoreBootstrapsAbsentRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.bin")
	m, err := openMetaStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { m.close() })

	_, exists, err := m.load()
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, m.save(7))
	rootID, exists, err := m.load()
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, int64(7), rootID)
}

func TestFloat64Keys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.bin")
	ns, err := NewNodeStore[float64](path, Float64Keys(), 4)
	require.NoError(t, err)
	t.Cleanup(func() { ns.Close() })

	n := &Node[float64]{ID: -1, ParentID: -1, Keys: []float64{1.5, 2.5}, Contents: []int64{1, 2}}
	require.NoError(t, ns.Put(n))

	got, err := ns.Get(n.ID)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 2.5}, got.Keys)
}
