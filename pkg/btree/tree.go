package btree

import "path/filepath"

// Tree is a disk-backed B-tree index over a Node Store plus a metadata
// record holding its root id. Construction, insert and split live here;
// delete lives in delete.go, search/lookup in search.go, ordered scans in
// scan.go.
type Tree[K Key] struct {
	nodes     *NodeStore[K]
	meta      *metaStore
	keysSize  int
	minKeys   int
	branching int
	rootID    int64
}

// Open opens (or creates) the index directory at dir: one file for nodes,
// one for metadata. If the metadata record is absent — first ever access
// — an empty root is created and persisted.
func Open[K Key](dir string, keyCodec KeyCodec[K], branching int) (*Tree[K], error) {
	if branching < 2 {
		return nil, ErrInvalidBranching
	}

	nodes, err := NewNodeStore[K](filepath.Join(dir, "nodes.bin"), keyCodec, branching)
	if err != nil {
		return nil, err
	}
	meta, err := openMetaStore(filepath.Join(dir, "meta.bin"))
	if err != nil {
		return nil, err
	}

	t := &Tree[K]{
		nodes:     nodes,
		meta:      meta,
		keysSize:  branching - 1,
		minKeys:   (branching - 1) / 2,
		branching: branching,
	}

	rootID, exists, err := meta.load()
	if err != nil {
		return nil, err
	}
	if !exists {
		root := newEmptyNode[K]()
		if err := nodes.Put(root); err != nil {
			return nil, err
		}
		if err := meta.save(root.ID); err != nil {
			return nil, err
		}
		rootID = root.ID
	}
	t.rootID = rootID
	return t, nil
}

// Close releases the underlying file handles.
func (t *Tree[K]) Close() error {
	if err := t.nodes.Close(); err != nil {
		return err
	}
	return t.meta.close()
}

// Drop removes both files backing this index.
func (t *Tree[K]) Drop() error {
	if err := t.nodes.Drop(); err != nil {
		return err
	}
	return t.meta.drop()
}

func (t *Tree[K]) isRoot(n *Node[K]) bool { return n.ID == t.rootID }

func (t *Tree[K]) getParent(n *Node[K]) (*Node[K], error) {
	if n.ParentID == -1 {
		return nil, nil
	}
	return t.nodes.Get(n.ParentID)
}

func (t *Tree[K]) meetsMinimumSize(n *Node[K]) bool { return len(n.Keys) >= t.minKeys }
func (t *Tree[K]) aboveMinimumSize(n *Node[K]) bool  { return len(n.Keys) > t.minKeys }

func (t *Tree[K]) reparentChildren(n *Node[K]) error {
	for _, cid := range n.ChildrenIDs {
		child, err := t.nodes.Get(cid)
		if err != nil {
			return err
		}
		child.ParentID = n.ID
		if err := t.nodes.Put(child); err != nil {
			return err
		}
	}
	return nil
}

// descendToLeaf finds the leaf key must be inserted into: search ignoring
// exact-match early-exit, always descending to a leaf.
func (t *Tree[K]) descendToLeaf(key K) (*Node[K], error) {
	node, err := t.nodes.Get(t.rootID)
	if err != nil {
		return nil, err
	}
	for !isLeaf(node) {
		pos := insertPosition(node.Keys, key)
		child, err := t.nodes.Get(node.ChildrenIDs[pos])
		if err != nil {
			return nil, err
		}
		node = child
	}
	return node, nil
}

// Insert adds (key, content) to the tree.
func (t *Tree[K]) Insert(key K, content int64) error {
	leaf, err := t.descendToLeaf(key)
	if err != nil {
		return err
	}

	pos := insertPosition(leaf.Keys, key)
	leaf.Keys = insertAt(leaf.Keys, pos, key)
	leaf.Contents = insertAt(leaf.Contents, pos, content)

	if len(leaf.Keys) > t.keysSize {
		return t.split(leaf)
	}
	return t.nodes.Put(leaf)
}

// split rebalances an overflowing node n: mid = floor(keys_size/2); L gets
// keys[0:mid), R gets keys[mid+1:]; the middle pair is promoted to the
// parent, or becomes the new root's sole key if n had no parent.
func (t *Tree[K]) split(n *Node[K]) error {
	mid := t.keysSize / 2
	splitKey := n.Keys[mid]
	splitContent := n.Contents[mid]

	left := &Node[K]{
		Keys:     append([]K(nil), n.Keys[:mid]...),
		Contents: append([]int64(nil), n.Contents[:mid]...),
	}
	right := &Node[K]{
		Keys:     append([]K(nil), n.Keys[mid+1:]...),
		Contents: append([]int64(nil), n.Contents[mid+1:]...),
	}
	if !isLeaf(n) {
		left.ChildrenIDs = append([]int64(nil), n.ChildrenIDs[:mid+1]...)
		right.ChildrenIDs = append([]int64(nil), n.ChildrenIDs[mid+1:]...)
	}

	if t.isRoot(n) {
		left.ID, left.ParentID = -1, n.ID
		if err := t.nodes.Put(left); err != nil {
			return err
		}
		if err := t.reparentChildren(left); err != nil {
			return err
		}

		right.ID, right.ParentID = -1, n.ID
		if err := t.nodes.Put(right); err != nil {
			return err
		}
		if err := t.reparentChildren(right); err != nil {
			return err
		}

		n.Keys = []K{splitKey}
		n.Contents = []int64{splitContent}
		n.ChildrenIDs = []int64{left.ID, right.ID}
		return t.nodes.Put(n)
	}

	parent, err := t.nodes.Get(n.ParentID)
	if err != nil {
		return err
	}

	// Reuse n's slot for L so outside references to n's id keep resolving
	// to the left half of the split.
	left.ID, left.ParentID = n.ID, n.ParentID
	if err := t.nodes.Put(left); err != nil {
		return err
	}
	if err := t.reparentChildren(left); err != nil {
		return err
	}

	right.ID, right.ParentID = -1, n.ParentID
	if err := t.nodes.Put(right); err != nil {
		return err
	}
	if err := t.reparentChildren(right); err != nil {
		return err
	}

	childPos := indexOfChild(parent, n.ID)
	if childPos < 0 {
		return ErrIndexCorrupt
	}
	parent.ChildrenIDs = removeAt(parent.ChildrenIDs, childPos)

	pos := insertPosition(parent.Keys, splitKey)
	parent.Keys = insertAt(parent.Keys, pos, splitKey)
	parent.Contents = insertAt(parent.Contents, pos, splitContent)
	parent.ChildrenIDs = insertSliceAt(parent.ChildrenIDs, pos, []int64{left.ID, right.ID})

	if len(parent.Keys) > t.keysSize {
		return t.split(parent)
	}
	return t.nodes.Put(parent)
}
