// Package rootdir implements the statically enumerated informational
// directory contributor: the global files that live beside the numeric
// process directories (version, uptime, the kernel command line), plus
// the optional "self" link when the translator is configured to fake
// one.
package rootdir
