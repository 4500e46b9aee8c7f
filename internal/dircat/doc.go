// Package dircat composes an ordered list of directory contributors into
// the translator's single root directory.
//
// Conflict policy: lookup walks the contributors in order and the first
// namespace containing the requested name wins; a later contributor can
// never shadow a name an earlier one resolves. Enumeration is the
// concatenation of every contributor's entries in the same order, with no
// deduplication. Contributors are expected not to share names; when they
// do, enumeration shows both entries even though lookup only ever reaches
// the first.
//
// The composite takes the fixed identity fsnode.RootInode because it is
// the one node in the namespace that is never discovered through a
// parent-directory lookup.
package dircat
