// Package fusefs adapts the fsnode protocol to the kernel FUSE
// transport.
//
// The adapter owns the two process-lifetime boundaries of the transport:
// acquiring the kernel connection for a mountpoint (the translator's
// bootstrap handle) and running the request-dispatch loop. It also
// contributes the transport's own canonical options to the introspection
// list, appended after the custom option tokens.
package fusefs
