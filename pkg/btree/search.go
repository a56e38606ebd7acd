package btree

// FindContents returns every content-id paired with key across the entire
// tree, in tree-encounter order, with duplicates preserved. It collects
// every equal-key occurrence at the current node, then — because
// duplicates may recur across sibling subtrees under the B-tree's
// non-strict ordering — recurses into every child position spanned by
// that equal-key run, including one position past the last match.
func (t *Tree[K]) FindContents(key K) ([]int64, error) {
	root, err := t.nodes.Get(t.rootID)
	if err != nil {
		return nil, err
	}
	results, _, err := t.deepSearchByKey(root, key)
	return results, err
}

func (t *Tree[K]) deepSearchByKey(node *Node[K], key K) ([]int64, bool, error) {
	var positions []int
	var results []int64
	pos := 0

	for {
		for pos < len(node.Keys) && key >= node.Keys[pos] {
			if key == node.Keys[pos] {
				positions = append(positions, pos)
				results = append(results, node.Contents[pos])
			}
			pos++
		}

		if isLeaf(node) {
			if len(positions) == 0 {
				return results, false, nil
			}
			break
		} else if len(results) == 0 {
			child, err := t.nodes.Get(node.ChildrenIDs[pos])
			if err != nil {
				return nil, false, err
			}
			node = child
			pos = 0
		} else {
			break
		}
	}

	if len(positions) == 0 {
		return results, false, nil
	}

	if !isLeaf(node) {
		positions = append(positions, positions[len(positions)-1]+1)
		for _, p := range positions {
			child, err := t.nodes.Get(node.ChildrenIDs[p])
			if err != nil {
				return nil, false, err
			}
			childResults, found, err := t.deepSearchByKey(child, key)
			if err != nil {
				return nil, false, err
			}
			if found {
				results = append(results, childResults...)
			}
		}
	}

	return results, true, nil
}

// FindWithKeyAndContent acts as an existence probe for the exact (key,
// content) pair, restricting FindContents' traversal to matches whose
// contents[i] == content.
func (t *Tree[K]) FindWithKeyAndContent(key K, content int64) (int64, bool, error) {
	root, err := t.nodes.Get(t.rootID)
	if err != nil {
		return 0, false, err
	}
	node, pos, found, err := t.deepSearchByKeyAndContent(root, key, content)
	if err != nil {
		return 0, false, err
	}
	if !found {
		return 0, false, nil
	}
	return node.Contents[pos], true, nil
}

// deepSearchByKeyAndContent performs the same equal-key-run collection as
// deepSearchByKey, but returns as soon as the exact (key, content) pair is
// found rather than collecting every match.
func (t *Tree[K]) deepSearchByKeyAndContent(node *Node[K], key K, content int64) (*Node[K], int, bool, error) {
	var positions []int
	pos := 0

	for {
		for pos < len(node.Keys) && key >= node.Keys[pos] {
			if key == node.Keys[pos] {
				if node.Contents[pos] == content {
					return node, pos, true, nil
				}
				if !isLeaf(node) {
					positions = append(positions, pos)
				}
			}
			pos++
		}

		if isLeaf(node) {
			return node, 0, false, nil
		} else if len(positions) == 0 {
			child, err := t.nodes.Get(node.ChildrenIDs[pos])
			if err != nil {
				return nil, 0, false, err
			}
			node = child
			pos = 0
		} else {
			break
		}
	}

	if len(positions) == 0 {
		return node, 0, false, nil
	}

	positions = append(positions, positions[len(positions)-1]+1)
	for _, p := range positions {
		child, err := t.nodes.Get(node.ChildrenIDs[p])
		if err != nil {
			return nil, 0, false, err
		}
		foundNode, foundPos, found, err := t.deepSearchByKeyAndContent(child, key, content)
		if err != nil {
			return nil, 0, false, err
		}
		if found {
			return foundNode, foundPos, true, nil
		}
	}

	return node, 0, false, nil
}

// FindFirstOrDefaultContent returns the content-id of the first match for
// key in tree-encounter order, or found=false if key is absent.
func (t *Tree[K]) FindFirstOrDefaultContent(key K) (int64, bool, error) {
	contents, err := t.FindContents(key)
	if err != nil {
		return 0, false, err
	}
	if len(contents) == 0 {
		return 0, false, nil
	}
	return contents[0], true, nil
}

// FindSmallest returns the content-id paired with the minimum key in the
// tree, or found=false for an empty tree. It descends the leftmost child
// at every level down to the leftmost leaf, whose first entry holds the
// minimum key.
func (t *Tree[K]) FindSmallest() (int64, bool, error) {
	leaf, err := t.leftmostLeaf()
	if err != nil {
		return 0, false, err
	}
	if len(leaf.Contents) == 0 {
		return 0, false, nil
	}
	return leaf.Contents[0], true, nil
}

func (t *Tree[K]) leftmostLeaf() (*Node[K], error) {
	node, err := t.nodes.Get(t.rootID)
	if err != nil {
		return nil, err
	}
	for !isLeaf(node) {
		child, err := t.nodes.Get(node.ChildrenIDs[0])
		if err != nil {
			return nil, err
		}
		node = child
	}
	return node, nil
}

func (t *Tree[K]) rightmostLeaf() (*Node[K], error) {
	node, err := t.nodes.Get(t.rootID)
	if err != nil {
		return nil, err
	}
	for !isLeaf(node) {
		child, err := t.nodes.Get(node.ChildrenIDs[len(node.ChildrenIDs)-1])
		if err != nil {
			return nil, err
		}
		node = child
	}
	return node, nil
}
