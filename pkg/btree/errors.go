package btree

import "errors"

// ErrIndexCorrupt is surfaced when a lookup by id that the tree's own
// invariants guarantee must exist (a child id read from a live parent, a
// sibling id read from a live parent) comes back missing. Unlike a
// not-found result from a public operation (find/delete return empty /
// false, never an error), this always indicates structural corruption.
var ErrIndexCorrupt = errors.New("btree: index corrupt: referenced node does not exist")

// ErrInvalidBranching is returned by Open when the branching factor
// cannot support even a minimally-sized node (fewer than 2 children).
var ErrInvalidBranching = errors.New("btree: branching factor must be at least 2")
