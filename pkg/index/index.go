// Package index provides Index[K,T], a façade that adds ContentStore-backed
// row resolution on top of the B-tree Engine's content-id-level contract
// (pkg/btree.Tree[K]). Everything the core owns — node storage, the B-tree
// algorithms, metadata — lives in pkg/btree and pkg/recordstore; the only
// external collaborator is the row store consulted here through
// ContentStore.
package index

import (
	"errors"
	"sync"

	"btreeindex/pkg/btree"
)

// ContentStore resolves an opaque content-id into the caller's row type T.
// found is false if no row exists for contentID.
type ContentStore[T any] interface {
	Get(contentID int64) (row T, found bool, err error)
}

// ErrNoContentStore is returned by the row-resolving methods (Find,
// FindFirstOrDefault, FindNSmallestRows, FindNBiggestRows) when the Index
// was opened without a ContentStore; callers in that case should use the
// content-id level methods instead. This keeps the two call shapes
// (content-id level vs. row level) distinct and explicit rather than
// returning interface{}.
var ErrNoContentStore = errors.New("index: no ContentStore configured")

// Index is the consumer-facing entry point, generic over a key kind K and
// a row type T. It owns a pkg/btree.Tree[K] and, optionally, a
// ContentStore[T] used to resolve content-ids into rows.
type Index[K btree.Key, T any] struct {
	mu      sync.RWMutex
	tree    *btree.Tree[K]
	content ContentStore[T]
}

// Open opens (or creates) the index directory at dir with the given key
// codec and branching factor. content may be nil; row-resolving methods
// then return ErrNoContentStore and callers should use the content-id
// level methods instead.
func Open[K btree.Key, T any](dir string, keyCodec btree.KeyCodec[K], branching int, content ContentStore[T]) (*Index[K, T], error) {
	tree, err := btree.Open(dir, keyCodec, branching)
	if err != nil {
		return nil, err
	}
	return &Index[K, T]{tree: tree, content: content}, nil
}

// Close releases the underlying file handles.
func (ix *Index[K, T]) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.tree.Close()
}

// Drop removes all index files for this index.
func (ix *Index[K, T]) Drop() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.tree.Drop()
}

// Insert adds (key, content) to the tree. After it returns, a subsequent
// FindWithKeyAndContent(key, content) reports it as present.
func (ix *Index[K, T]) Insert(key K, content int64) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.tree.Insert(key, content)
}

// Delete removes the exact (key, content) pair, reporting whether it was
// present.
func (ix *Index[K, T]) Delete(key K, content int64) (bool, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.tree.Delete(key, content)
}

// FindContents returns every content-id paired with key, in tree order,
// with duplicates preserved.
func (ix *Index[K, T]) FindContents(key K) ([]int64, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.FindContents(key)
}

// FindWithKeyAndContent is an existence probe for the exact (key, content)
// pair.
func (ix *Index[K, T]) FindWithKeyAndContent(key K, content int64) (int64, bool, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.FindWithKeyAndContent(key, content)
}

// Find resolves every content-id paired with key into its row via
// ContentStore, equivalent to FindContents followed by content-store
// resolution. Rows the content store reports as missing are silently
// skipped: the B-tree's own bookkeeping guarantees the content-id was
// inserted, but the row store is an external collaborator whose own
// deletion policy is out of this core's scope.
func (ix *Index[K, T]) Find(key K) ([]T, error) {
	if ix.content == nil {
		return nil, ErrNoContentStore
	}
	contents, err := ix.FindContents(key)
	if err != nil {
		return nil, err
	}
	rows := make([]T, 0, len(contents))
	for _, id := range contents {
		row, found, err := ix.content.Get(id)
		if err != nil {
			return nil, err
		}
		if found {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// FindFirstOrDefault returns the first row paired with key in
// tree-encounter order, and found=false if key is absent or its content
// cannot be resolved.
func (ix *Index[K, T]) FindFirstOrDefault(key K) (row T, found bool, err error) {
	if ix.content == nil {
		err = ErrNoContentStore
		return
	}
	contentID, ok, err := ix.firstContent(key)
	if err != nil || !ok {
		return
	}
	return ix.content.Get(contentID)
}

func (ix *Index[K, T]) firstContent(key K) (int64, bool, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.FindFirstOrDefaultContent(key)
}

// FindSmallest returns the content-id of the minimum key in the tree.
func (ix *Index[K, T]) FindSmallest() (int64, bool, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.FindSmallest()
}

// FindNSmallest returns up to n content-ids in ascending key order.
func (ix *Index[K, T]) FindNSmallest(n int) ([]int64, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.FindNSmallest(n)
}

// FindNBiggest returns up to n content-ids in descending key order.
func (ix *Index[K, T]) FindNBiggest(n int) ([]int64, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.FindNBiggest(n)
}

// FindNSmallestRows resolves FindNSmallest's content-ids into rows via
// ContentStore.
func (ix *Index[K, T]) FindNSmallestRows(n int) ([]T, error) {
	return ix.resolveN(ix.FindNSmallest, n)
}

// FindNBiggestRows resolves FindNBiggest's content-ids into rows via
// ContentStore.
func (ix *Index[K, T]) FindNBiggestRows(n int) ([]T, error) {
	return ix.resolveN(ix.FindNBiggest, n)
}

func (ix *Index[K, T]) resolveN(find func(int) ([]int64, error), n int) ([]T, error) {
	if ix.content == nil {
		return nil, ErrNoContentStore
	}
	ids, err := find(n)
	if err != nil {
		return nil, err
	}
	rows := make([]T, 0, len(ids))
	for _, id := range ids {
		row, found, err := ix.content.Get(id)
		if err != nil {
			return nil, err
		}
		if found {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
