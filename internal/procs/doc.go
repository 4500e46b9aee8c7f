// Package procs supplies per-process facts to the directory
// contributors.
//
// A Table is a read-only view over a process-table root laid out like
// /proc: one numeric directory per live process plus a handful of global
// files. Pointing the root at a fixture directory exercises every
// consumer without a live system, which is how the tests work.
package procs
