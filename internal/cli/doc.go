// Package cli wires the translator together: the cobra command that
// owns the option schema, and the startup sequence that takes the
// process from raw arguments to the serving loop.
//
// The sequence is strictly linear with no retries:
//
//	Unconfigured -> Parsed -> ContextReady -> BootstrapAcquired ->
//	RootReady -> Serving
//
// Any failure along the way is fatal; the process reports the failing
// stage on stderr and exits 1 without serving a single request.
package cli
