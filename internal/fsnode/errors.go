package fsnode

import "errors"

// Sentinel errors shared by every contributor. The transport adapter maps
// these onto protocol error codes; anything else becomes a generic I/O
// failure.
var (
	// ErrNotFound reports that a directory's namespace does not contain
	// the requested name.
	ErrNotFound = errors.New("no such entry")

	// ErrPermission reports an operation the node does not allow.
	ErrPermission = errors.New("permission denied")

	// ErrNotDir reports a lookup or enumeration against a non-directory.
	ErrNotDir = errors.New("not a directory")
)
