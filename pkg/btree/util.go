package btree

// insertPosition returns the sorted insertion position for key among
// keys: the first index whose value is not strictly less than key,
// i.e. it advances while key > keys[pos]. Equal keys are not skipped, so
// repeated inserts of the same key land before existing equal entries.
func insertPosition[K Key](keys []K, key K) int {
	pos := 0
	for pos < len(keys) && key > keys[pos] {
		pos++
	}
	return pos
}

func insertAt[T any](s []T, pos int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[pos+1:], s[pos:])
	s[pos] = v
	return s
}

func insertSliceAt[T any](s []T, pos int, vs []T) []T {
	out := make([]T, 0, len(s)+len(vs))
	out = append(out, s[:pos]...)
	out = append(out, vs...)
	out = append(out, s[pos:]...)
	return out
}

func removeAt[T any](s []T, pos int) []T {
	copy(s[pos:], s[pos+1:])
	return s[:len(s)-1]
}

func indexOfChild[K Key](n *Node[K], childID int64) int {
	for i, id := range n.ChildrenIDs {
		if id == childID {
			return i
		}
	}
	return -1
}

// spliceMerge appends the separator (sepKey, sepContent) followed by
// src's entire contents into dst — src's keys are concatenated, never
// appended as a single nested element.
func spliceMerge[K Key](dst, src *Node[K], sepKey K, sepContent int64) {
	dst.Keys = append(dst.Keys, sepKey)
	dst.Contents = append(dst.Contents, sepContent)
	dst.Keys = append(dst.Keys, src.Keys...)
	dst.Contents = append(dst.Contents, src.Contents...)
	dst.ChildrenIDs = append(dst.ChildrenIDs, src.ChildrenIDs...)
}
