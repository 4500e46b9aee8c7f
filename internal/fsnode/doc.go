// Package fsnode defines the node protocol shared by every directory
// contributor in the translator.
//
// This package contains interface and identity definitions only. All
// other internal packages import fsnode; fsnode imports nothing internal.
//
// Contributors are opaque behind the Dir interface; the composer and the
// transport adapter never see their internals. Inode identity is
// explicit: ordinary nodes draw from an Allocator or derive stable
// numbers from their own keys, and nodes that are never reached through a
// parent-directory lookup take a named constant from the reserved range.
// Nothing in this package blocks; contributors produce content on demand
// and report errors through explicit returns.
package fsnode
