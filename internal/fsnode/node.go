package fsnode

import "os"

// Attr describes a node's metadata as served to the transport layer.
type Attr struct {
	// Inode is the node's identity. Stable for the life of the process.
	Inode uint64

	// Mode carries the file type bits and the permission bits.
	Mode os.FileMode

	// Size is the content length in bytes. Directories report 0.
	Size uint64

	// UID and GID identify the owner.
	UID uint32
	GID uint32
}

// Node is the minimal surface every synthetic node implements.
type Node interface {
	Attr() Attr
}

// Dir is a directory node. Contributors hand the composer values of this
// type; the composite root is itself a Dir.
type Dir interface {
	Node

	// Lookup resolves name to a child node. Returns ErrNotFound when the
	// directory's namespace does not contain name.
	Lookup(name string) (Node, error)

	// Entries enumerates the directory in a stable order.
	Entries() ([]Entry, error)
}

// File is a node whose full content is produced on demand.
type File interface {
	Node
	ReadAll() ([]byte, error)
}

// Symlink is a node that resolves to a target path.
type Symlink interface {
	Node
	Target() (string, error)
}

// Entry is one row of a directory enumeration.
type Entry struct {
	Name  string
	Inode uint64
	Mode  os.FileMode
}
