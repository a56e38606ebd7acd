package btree

// Delete removes the exact (key, content) pair from the tree. It returns
// false and leaves the tree unchanged if no such pair exists; calling
// Delete twice with the same (key, content) therefore returns true then
// false.
func (t *Tree[K]) Delete(key K, content int64) (bool, error) {
	root, err := t.nodes.Get(t.rootID)
	if err != nil {
		return false, err
	}
	if len(root.Keys) == 0 {
		return false, nil
	}

	node, pos, found, err := t.deepSearchByKeyAndContent(root, key, content)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := t.deleteAtPosition(node, pos); err != nil {
		return false, err
	}
	return true, nil
}

// needsRebalance reports whether n must be borrowed-into or merged before
// a top-level delete can be considered complete: a non-root node below the
// minimum key count, or the root once it has lost its last key and
// collapsed down to a single child.
func (t *Tree[K]) needsRebalance(n *Node[K]) bool {
	if t.isRoot(n) {
		return len(n.Keys) == 0 && len(n.ChildrenIDs) == 1
	}
	return !t.meetsMinimumSize(n)
}

// deleteAtPosition removes the (key, content) pair already located at
// node.Keys[position], dispatching on whether node is a leaf or an
// internal node.
func (t *Tree[K]) deleteAtPosition(node *Node[K], position int) error {
	if isLeaf(node) {
		return t.deleteFromLeaf(node, position)
	}
	return t.deleteFromInternal(node, position)
}

// deleteFromLeaf handles the case where the target is in a leaf.
func (t *Tree[K]) deleteFromLeaf(node *Node[K], position int) error {
	if t.isRoot(node) || t.aboveMinimumSize(node) {
		return t.removeKeyAndSave(node, position)
	}

	parent, err := t.getParent(node)
	if err != nil {
		return err
	}

	borrowed, err := t.borrowFromSiblingAndDelete(node, position, parent)
	if err != nil {
		return err
	}
	if borrowed {
		return nil
	}

	if err := t.mergeNodesAndDelete(node, position, parent, true); err != nil {
		return err
	}
	return t.rippleMergeUpward(parent)
}

// rippleMergeUpward re-checks each ancestor after a merge and keeps
// merging upward while the ancestor is below minimum size.
func (t *Tree[K]) rippleMergeUpward(node *Node[K]) error {
	for node != nil && t.needsRebalance(node) {
		grandparent, err := t.getParent(node)
		if err != nil {
			return err
		}
		if err := t.mergeNodesAndDelete(node, 0, grandparent, false); err != nil {
			return err
		}
		node = grandparent
	}
	return nil
}

// deleteFromInternal handles the case where the target is in an internal
// node. It is replaced in place by a neighbour drawn from the predecessor
// or successor subtree; if neither subtree exists, the key is dropped
// together with its trailing child pointer.
func (t *Tree[K]) deleteFromInternal(node *Node[K], position int) error {
	predecessor, err := t.predecessorLeaf(node, position)
	if err != nil {
		return err
	}
	if predecessor != nil {
		if err := t.borrowFromPredecessorAndDelete(node, position, predecessor); err != nil {
			return err
		}
		return t.rippleMergeUpward(predecessor)
	}

	successor, err := t.successorLeaf(node, position)
	if err != nil {
		return err
	}
	if successor != nil {
		if err := t.borrowFromSuccessorAndDelete(node, position, successor); err != nil {
			return err
		}
		return t.rippleMergeUpward(successor)
	}

	// Both the predecessor and successor subtrees are absent — under the
	// child-count invariant this cannot happen for a well-formed internal
	// node, since children[position] and children[position+1] always
	// exist. Kept as a defensive fallback.
	return t.mergeNodesBorrowAndDelete(node, position)
}

func (t *Tree[K]) predecessorLeaf(node *Node[K], position int) (*Node[K], error) {
	if position < 0 || position >= len(node.ChildrenIDs) {
		return nil, nil
	}
	child, err := t.nodes.Get(node.ChildrenIDs[position])
	if err != nil {
		return nil, err
	}
	for !isLeaf(child) {
		next, err := t.nodes.Get(child.ChildrenIDs[len(child.ChildrenIDs)-1])
		if err != nil {
			return nil, err
		}
		child = next
	}
	return child, nil
}

func (t *Tree[K]) successorLeaf(node *Node[K], position int) (*Node[K], error) {
	if position+1 >= len(node.ChildrenIDs) {
		return nil, nil
	}
	child, err := t.nodes.Get(node.ChildrenIDs[position+1])
	if err != nil {
		return nil, err
	}
	for !isLeaf(child) {
		next, err := t.nodes.Get(child.ChildrenIDs[0])
		if err != nil {
			return nil, err
		}
		child = next
	}
	return child, nil
}

// borrowFromPredecessorAndDelete pops predecessor's last (key, content)
// into node's target slot.
func (t *Tree[K]) borrowFromPredecessorAndDelete(node *Node[K], position int, predecessor *Node[K]) error {
	last := len(predecessor.Keys) - 1
	node.Keys[position] = predecessor.Keys[last]
	node.Contents[position] = predecessor.Contents[last]
	predecessor.Keys = predecessor.Keys[:last]
	predecessor.Contents = predecessor.Contents[:last]

	if err := t.nodes.Put(predecessor); err != nil {
		return err
	}
	return t.nodes.Put(node)
}

// borrowFromSuccessorAndDelete pops successor's first (key, content) into
// node's target slot.
func (t *Tree[K]) borrowFromSuccessorAndDelete(node *Node[K], position int, successor *Node[K]) error {
	node.Keys[position] = successor.Keys[0]
	node.Contents[position] = successor.Contents[0]
	successor.Keys = removeAt(successor.Keys, 0)
	successor.Contents = removeAt(successor.Contents, 0)

	if err := t.nodes.Put(successor); err != nil {
		return err
	}
	return t.nodes.Put(node)
}

// mergeNodesBorrowAndDelete handles the degenerate case in deleteFromInternal
// where neither a predecessor nor a successor leaf exists: the target key
// is simply dropped along with its trailing child pointer.
func (t *Tree[K]) mergeNodesBorrowAndDelete(node *Node[K], position int) error {
	node.Keys = removeAt(node.Keys, position)
	node.Contents = removeAt(node.Contents, position)
	if position+1 < len(node.ChildrenIDs) {
		node.ChildrenIDs = removeAt(node.ChildrenIDs, position+1)
	}
	return t.nodes.Put(node)
}

func (t *Tree[K]) removeKeyAndSave(node *Node[K], position int) error {
	node.Keys = removeAt(node.Keys, position)
	node.Contents = removeAt(node.Contents, position)
	return t.nodes.Put(node)
}

func (t *Tree[K]) leftSibling(node, parent *Node[K]) (*Node[K], error) {
	pos := indexOfChild(parent, node.ID)
	if pos-1 < 0 {
		return nil, nil
	}
	return t.nodes.Get(parent.ChildrenIDs[pos-1])
}

func (t *Tree[K]) rightSibling(node, parent *Node[K]) (*Node[K], error) {
	pos := indexOfChild(parent, node.ID)
	if pos+1 >= len(parent.ChildrenIDs) {
		return nil, nil
	}
	return t.nodes.Get(parent.ChildrenIDs[pos+1])
}

// borrowFromSiblingAndDelete tries the left sibling first, then the
// right. It reports whether a borrow happened; false means both siblings
// are already at the minimum and the caller must merge instead.
func (t *Tree[K]) borrowFromSiblingAndDelete(node *Node[K], position int, parent *Node[K]) (bool, error) {
	left, err := t.leftSibling(node, parent)
	if err != nil {
		return false, err
	}
	if left != nil && t.aboveMinimumSize(left) {
		return true, t.borrowFromLeftSiblingAndDelete(node, position, parent, left)
	}

	right, err := t.rightSibling(node, parent)
	if err != nil {
		return false, err
	}
	if right != nil && t.aboveMinimumSize(right) {
		return true, t.borrowFromRightSiblingAndDelete(node, position, parent, right)
	}

	return false, nil
}

// borrowFromLeftSiblingAndDelete removes the target key, prepends the
// parent's separator into node, and rotates the left sibling's rightmost
// key up into the separator's old slot.
func (t *Tree[K]) borrowFromLeftSiblingAndDelete(node *Node[K], position int, parent, sibling *Node[K]) error {
	parentPos := indexOfChild(parent, node.ID)

	node.Keys = removeAt(node.Keys, position)
	node.Contents = removeAt(node.Contents, position)
	node.Keys = insertAt(node.Keys, 0, parent.Keys[parentPos-1])
	node.Contents = insertAt(node.Contents, 0, parent.Contents[parentPos-1])

	last := len(sibling.Keys) - 1
	parent.Keys[parentPos-1] = sibling.Keys[last]
	parent.Contents[parentPos-1] = sibling.Contents[last]
	sibling.Keys = sibling.Keys[:last]
	sibling.Contents = sibling.Contents[:last]

	if err := t.nodes.Put(sibling); err != nil {
		return err
	}
	if err := t.nodes.Put(parent); err != nil {
		return err
	}
	return t.nodes.Put(node)
}

// borrowFromRightSiblingAndDelete is the mirror image, rotating the right
// sibling's leftmost key up into the separator's old slot.
func (t *Tree[K]) borrowFromRightSiblingAndDelete(node *Node[K], position int, parent, sibling *Node[K]) error {
	parentPos := indexOfChild(parent, node.ID)

	node.Keys = removeAt(node.Keys, position)
	node.Contents = removeAt(node.Contents, position)
	node.Keys = append(node.Keys, parent.Keys[parentPos])
	node.Contents = append(node.Contents, parent.Contents[parentPos])

	parent.Keys[parentPos] = sibling.Keys[0]
	parent.Contents[parentPos] = sibling.Contents[0]
	sibling.Keys = removeAt(sibling.Keys, 0)
	sibling.Contents = removeAt(sibling.Contents, 0)

	if err := t.nodes.Put(sibling); err != nil {
		return err
	}
	if err := t.nodes.Put(parent); err != nil {
		return err
	}
	return t.nodes.Put(node)
}

// mergeNodesAndDelete merges node with a sibling, pulling the separator
// down from parent. If node is the root, it is instead collapsed into its
// sole remaining child.
func (t *Tree[K]) mergeNodesAndDelete(node *Node[K], position int, parent *Node[K], del bool) error {
	if t.isRoot(node) {
		child, err := t.nodes.Get(node.ChildrenIDs[0])
		if err != nil {
			return err
		}
		node.Keys = child.Keys
		node.Contents = child.Contents
		node.ChildrenIDs = child.ChildrenIDs
		if err := t.reparentChildren(node); err != nil {
			return err
		}
		if err := t.nodes.Put(node); err != nil {
			return err
		}
		return t.nodes.Delete(child.ID)
	}

	merged, err := t.mergeWithLeftSiblingAndDelete(node, position, parent, del)
	if err != nil {
		return err
	}
	if merged {
		return nil
	}
	_, err = t.mergeWithRightSiblingAndDelete(node, position, parent, del)
	return err
}

// mergeWithLeftSiblingAndDelete concatenates node into its left sibling,
// pulling the separator key/content down from parent. del controls
// whether the target key at position is removed from node first (false
// when node arrives here already key-less, as in the upward ripple).
func (t *Tree[K]) mergeWithLeftSiblingAndDelete(node *Node[K], position int, parent *Node[K], del bool) (bool, error) {
	sibling, err := t.leftSibling(node, parent)
	if err != nil {
		return false, err
	}
	if sibling == nil {
		return false, nil
	}

	siblingPos := indexOfChild(parent, sibling.ID)

	if del {
		node.Keys = removeAt(node.Keys, position)
		node.Contents = removeAt(node.Contents, position)
	}

	sepKey := parent.Keys[siblingPos]
	sepContent := parent.Contents[siblingPos]
	parent.Keys = removeAt(parent.Keys, siblingPos)
	parent.Contents = removeAt(parent.Contents, siblingPos)
	parent.ChildrenIDs = removeAt(parent.ChildrenIDs, siblingPos+1)

	spliceMerge(sibling, node, sepKey, sepContent)
	if err := t.reparentChildren(sibling); err != nil {
		return false, err
	}

	if err := t.nodes.Delete(node.ID); err != nil {
		return false, err
	}
	if err := t.nodes.Put(sibling); err != nil {
		return false, err
	}
	if err := t.nodes.Put(parent); err != nil {
		return false, err
	}
	return true, nil
}

// mergeWithRightSiblingAndDelete concatenates the right sibling into node,
// pulling the separator key/content down from parent.
func (t *Tree[K]) mergeWithRightSiblingAndDelete(node *Node[K], position int, parent *Node[K], del bool) (bool, error) {
	sibling, err := t.rightSibling(node, parent)
	if err != nil {
		return false, err
	}
	if sibling == nil {
		return false, nil
	}

	nodePos := indexOfChild(parent, node.ID)

	if del {
		node.Keys = removeAt(node.Keys, position)
		node.Contents = removeAt(node.Contents, position)
	}

	sepKey := parent.Keys[nodePos]
	sepContent := parent.Contents[nodePos]
	parent.Keys = removeAt(parent.Keys, nodePos)
	parent.Contents = removeAt(parent.Contents, nodePos)
	parent.ChildrenIDs = removeAt(parent.ChildrenIDs, nodePos+1)

	spliceMerge(node, sibling, sepKey, sepContent)
	if err := t.reparentChildren(node); err != nil {
		return false, err
	}

	if err := t.nodes.Delete(sibling.ID); err != nil {
		return false, err
	}
	if err := t.nodes.Put(node); err != nil {
		return false, err
	}
	if err := t.nodes.Put(parent); err != nil {
		return false, err
	}
	return true, nil
}
