// Package proclist implements the dynamically enumerated per-process
// directory contributor: one numeric directory per live process, each
// holding cmdline, comm, stat and status files rendered from the
// process-table context and the option store.
package proclist
