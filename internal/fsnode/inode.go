package fsnode

import "sync/atomic"

// Reserved inode identities.
//
// A node that is never discovered through a parent-directory lookup cannot
// take its identity from the ordinary allocation path, so it is assigned a
// named constant from this range instead. The Allocator never hands out
// values at or above ReservedBase, and contributors deriving inode numbers
// from their own keys must stay below it too.
const (
	ReservedBase uint64 = 0xFFFF0000

	// RootInode identifies the composite root directory. The root is
	// created exactly once at startup and bound directly as the
	// filesystem root, so no lookup ever assigns it a number.
	RootInode = ReservedBase + 1
)

// Allocator hands out inode numbers for ordinary nodes.
//
// Thread-safety: Next is safe for concurrent use (atomic operations),
// although in practice all allocation happens during the single-threaded
// startup assembly.
type Allocator struct {
	next atomic.Uint64
}

// NewAllocator creates an allocator. The first call to Next returns 2;
// inode 1 is left alone because several transports treat it as an implicit
// root.
func NewAllocator() *Allocator {
	a := &Allocator{}
	a.next.Store(1)
	return a
}

// Next returns a fresh inode number. Values are unique and increasing.
func (a *Allocator) Next() uint64 {
	return a.next.Add(1)
}
