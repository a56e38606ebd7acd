// Package btree implements the Node Store and the B-tree Engine: a
// disk-backed index supporting search, insert+split,
// delete+borrow+merge, and ordered extrema scans, generic over the key
// kind.
package btree

import (
	"btreeindex/pkg/codec"
	"btreeindex/pkg/record"
	"btreeindex/pkg/recordstore"
)

// Key is the constraint on a B-tree's key type. A node's keys[] field is
// a list, and the codec encodes lists of int, float and bool elements
// only, so a tree's key kind is restricted to the ordered ones among
// them: signed integer and float.
type Key interface {
	~int64 | ~float64
}

// KeyCodec binds a concrete key type K to the codec.FieldKind used to
// encode it inside the node record's keys[] list, and to the conversions
// between K and codec.Value. Constructed once per index, not derived by
// reflection.
type KeyCodec[K Key] struct {
	Kind   codec.FieldKind
	Encode func(K) codec.Value
	Decode func(codec.Value) K
}

// Int64Keys returns the KeyCodec for a B-tree keyed by int64.
func Int64Keys() KeyCodec[int64] {
	return KeyCodec[int64]{
		Kind:   codec.Int(),
		Encode: func(k int64) codec.Value { return codec.IntValue(k) },
		Decode: func(v codec.Value) int64 { return v.Int },
	}
}

// Float64Keys returns the KeyCodec for a B-tree keyed by float64.
func Float64Keys() KeyCodec[float64] {
	return KeyCodec[float64]{
		Kind:   codec.Float(),
		Encode: func(k float64) codec.Value { return codec.FloatValue(k) },
		Decode: func(v codec.Value) float64 { return v.Float },
	}
}

// Node is the in-memory form of one node record: ID is a slot id assigned
// on first write; ParentID's sentinel -1 denotes the root;
// Keys/Contents/ChildrenIDs are bounded lists. A node with no ChildrenIDs
// is a leaf.
type Node[K Key] struct {
	ID          int64
	ParentID    int64
	Keys        []K
	Contents    []int64
	ChildrenIDs []int64
}

func newEmptyNode[K Key]() *Node[K] {
	return &Node[K]{ID: -1, ParentID: -1}
}

func isLeaf[K Key](n *Node[K]) bool {
	return len(n.ChildrenIDs) == 0
}

// nodeSchema builds the record layout schema for a node record: existence
// flag (implicit, owned by record.Layout), id, parent_id, keys, contents,
// children_ids.
func nodeSchema[K Key](keyKind codec.FieldKind, keysSize, branching int) record.Schema {
	return record.Schema{Fields: []record.FieldSpec{
		{Name: "id", Kind: codec.Int()},
		{Name: "parent_id", Kind: codec.Int()},
		{Name: "keys", Kind: codec.List(keyKind, keysSize)},
		{Name: "contents", Kind: codec.List(codec.Int(), keysSize)},
		{Name: "children_ids", Kind: codec.List(codec.Int(), branching)},
	}}
}

// NodeStore is a paged record store specialised for tree nodes.
type NodeStore[K Key] struct {
	store     *recordstore.Store
	keyCodec  KeyCodec[K]
	keysSize  int
	branching int
}

// NewNodeStore opens (or creates) the node file at path.
func NewNodeStore[K Key](path string, keyCodec KeyCodec[K], branching int) (*NodeStore[K], error) {
	keysSize := branching - 1
	layout := record.NewLayout(nodeSchema[K](keyCodec.Kind, keysSize, branching))
	store, err := recordstore.Open(path, layout)
	if err != nil {
		return nil, err
	}
	return &NodeStore[K]{store: store, keyCodec: keyCodec, keysSize: keysSize, branching: branching}, nil
}

func (ns *NodeStore[K]) toValues(n *Node[K]) []codec.Value {
	keys := make([]codec.Value, len(n.Keys))
	for i, k := range n.Keys {
		keys[i] = ns.keyCodec.Encode(k)
	}
	contents := make([]codec.Value, len(n.Contents))
	for i, c := range n.Contents {
		contents[i] = codec.IntValue(c)
	}
	children := make([]codec.Value, len(n.ChildrenIDs))
	for i, c := range n.ChildrenIDs {
		children[i] = codec.IntValue(c)
	}
	return []codec.Value{
		codec.IntValue(n.ID),
		codec.IntValue(n.ParentID),
		codec.ListValue(keys),
		codec.ListValue(contents),
		codec.ListValue(children),
	}
}

func (ns *NodeStore[K]) fromValues(values []codec.Value) *Node[K] {
	keysV := values[2].List
	keys := make([]K, len(keysV))
	for i, v := range keysV {
		keys[i] = ns.keyCodec.Decode(v)
	}
	contentsV := values[3].List
	contents := make([]int64, len(contentsV))
	for i, v := range contentsV {
		contents[i] = v.Int
	}
	childrenV := values[4].List
	children := make([]int64, len(childrenV))
	for i, v := range childrenV {
		children[i] = v.Int
	}
	return &Node[K]{
		ID:          values[0].Int,
		ParentID:    values[1].Int,
		Keys:        keys,
		Contents:    contents,
		ChildrenIDs: children,
	}
}

// Get reads a node by slot id. A missing slot is always structural
// corruption at this layer — the B-tree Engine only ever asks for ids it
// read from a live node's own fields.
func (ns *NodeStore[K]) Get(id int64) (*Node[K], error) {
	values, exists, err := ns.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrIndexCorrupt
	}
	return ns.fromValues(values), nil
}

// Put persists n. If n.ID is negative it is a new node and is assigned a
// fresh slot id; otherwise its existing slot is overwritten.
func (ns *NodeStore[K]) Put(n *Node[K]) error {
	id, err := ns.store.Save(n.ID, ns.toValues(n))
	if err != nil {
		return err
	}
	if n.ID != id {
		// A new node was written before its slot id was known; rewrite it
		// so the persisted id field matches its slot.
		n.ID = id
		if _, err := ns.store.Save(id, ns.toValues(n)); err != nil {
			return err
		}
	}
	return nil
}

// Delete clears a node's slot.
func (ns *NodeStore[K]) Delete(id int64) error {
	return ns.store.Delete(id)
}

func (ns *NodeStore[K]) Drop() error  { return ns.store.Drop() }
func (ns *NodeStore[K]) Close() error { return ns.store.Close() }
