package fusefs

import (
	"context"
	"errors"
	"os"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/procfsd/procfsd/internal/fsnode"
)

// FS serves a composed fsnode tree over a FUSE connection.
type FS struct {
	root fsnode.Dir
}

// NewFS wraps root for serving. The root keeps its own fixed identity;
// the adapter never reassigns inode numbers.
func NewFS(root fsnode.Dir) *FS { return &FS{root: root} }

func (f *FS) Root() (fs.Node, error) { return wrap(f.root), nil }

// wrap selects the transport shim for a protocol node.
func wrap(n fsnode.Node) fs.Node {
	switch t := n.(type) {
	case fsnode.Dir:
		return dirNode{t}
	case fsnode.Symlink:
		return symlinkNode{t}
	case fsnode.File:
		return fileNode{t}
	default:
		return attrNode{n}
	}
}

// mapError translates protocol errors onto transport error codes.
func mapError(err error) error {
	switch {
	case errors.Is(err, fsnode.ErrNotFound):
		return fuse.ENOENT
	case errors.Is(err, fsnode.ErrPermission):
		return fuse.EPERM
	default:
		return fuse.EIO
	}
}

func fillAttr(in fsnode.Attr, out *fuse.Attr) {
	out.Inode = in.Inode
	out.Mode = in.Mode
	out.Size = in.Size
	out.Uid = in.UID
	out.Gid = in.GID
}

type attrNode struct{ n fsnode.Node }

func (a attrNode) Attr(_ context.Context, out *fuse.Attr) error {
	fillAttr(a.n.Attr(), out)
	return nil
}

type dirNode struct{ d fsnode.Dir }

func (n dirNode) Attr(_ context.Context, out *fuse.Attr) error {
	fillAttr(n.d.Attr(), out)
	return nil
}

func (n dirNode) Lookup(_ context.Context, name string) (fs.Node, error) {
	child, err := n.d.Lookup(name)
	if err != nil {
		return nil, mapError(err)
	}
	return wrap(child), nil
}

func (n dirNode) ReadDirAll(context.Context) ([]fuse.Dirent, error) {
	entries, err := n.d.Entries()
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]fuse.Dirent, 0, len(entries))
	for _, e := range entries {
		out = append(out, fuse.Dirent{
			Inode: e.Inode,
			Name:  e.Name,
			Type:  direntType(e.Mode),
		})
	}
	return out, nil
}

func direntType(m os.FileMode) fuse.DirentType {
	switch {
	case m.IsDir():
		return fuse.DT_Dir
	case m&os.ModeSymlink != 0:
		return fuse.DT_Link
	default:
		return fuse.DT_File
	}
}

type fileNode struct{ f fsnode.File }

func (n fileNode) Attr(_ context.Context, out *fuse.Attr) error {
	fillAttr(n.f.Attr(), out)
	return nil
}

func (n fileNode) ReadAll(context.Context) ([]byte, error) {
	content, err := n.f.ReadAll()
	if err != nil {
		return nil, mapError(err)
	}
	return content, nil
}

type symlinkNode struct{ s fsnode.Symlink }

func (n symlinkNode) Attr(_ context.Context, out *fuse.Attr) error {
	fillAttr(n.s.Attr(), out)
	return nil
}

func (n symlinkNode) Readlink(context.Context, *fuse.ReadlinkRequest) (string, error) {
	target, err := n.s.Target()
	if err != nil {
		return "", mapError(err)
	}
	return target, nil
}

var (
	_ fs.FS                 = (*FS)(nil)
	_ fs.NodeStringLookuper = dirNode{}
	_ fs.HandleReadDirAller = dirNode{}
	_ fs.HandleReadAller    = fileNode{}
	_ fs.NodeReadlinker     = symlinkNode{}
)
