package rootdir

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/procfsd/procfsd/internal/fsnode"
	"github.com/procfsd/procfsd/internal/options"
	"github.com/procfsd/procfsd/internal/procs"
)

// compatVersion is the kernel release the version file claims, kept at a
// value old procps builds accept.
const compatVersion = "2.6.1"

// entry is one static member of the directory.
type entry struct {
	name  string
	inode uint64
	node  func() fsnode.Node
	mode  os.FileMode
}

// Dir is the static informational contributor. Its namespace is fixed at
// construction; only file contents are rendered per read.
type Dir struct {
	table   *procs.Table
	opts    options.Options
	inode   uint64
	entries []entry
}

// New creates the contributor. The "self" link is only part of the
// namespace when the option store enables it.
func New(table *procs.Table, opts options.Options, alloc *fsnode.Allocator) *Dir {
	d := &Dir{table: table, opts: opts, inode: alloc.Next()}

	addFile := func(name string, render func() ([]byte, error)) {
		ino := alloc.Next()
		d.entries = append(d.entries, entry{
			name:  name,
			inode: ino,
			mode:  0o444,
			node:  func() fsnode.Node { return &staticFile{inode: ino, render: render} },
		})
	}

	addFile("version", d.version)
	addFile("uptime", d.uptime)
	addFile("cmdline", d.cmdline)
	addFile("filesystems", d.filesystems)

	if opts.FakeSelf.Set {
		ino := alloc.Next()
		target := strconv.Itoa(opts.FakeSelf.PID)
		d.entries = append(d.entries, entry{
			name:  "self",
			inode: ino,
			mode:  os.ModeSymlink | 0o777,
			node:  func() fsnode.Node { return &selfLink{inode: ino, target: target} },
		})
	}

	return d
}

func (d *Dir) Attr() fsnode.Attr {
	return fsnode.Attr{Inode: d.inode, Mode: os.ModeDir | 0o555}
}

func (d *Dir) Lookup(name string) (fsnode.Node, error) {
	for _, e := range d.entries {
		if e.name == name {
			return e.node(), nil
		}
	}
	return nil, fsnode.ErrNotFound
}

func (d *Dir) Entries() ([]fsnode.Entry, error) {
	out := make([]fsnode.Entry, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, fsnode.Entry{Name: e.name, Inode: e.inode, Mode: e.mode})
	}
	return out, nil
}

type staticFile struct {
	inode  uint64
	render func() ([]byte, error)
}

func (f *staticFile) Attr() fsnode.Attr {
	attr := fsnode.Attr{Inode: f.inode, Mode: 0o444}
	if content, err := f.render(); err == nil {
		attr.Size = uint64(len(content))
	}
	return attr
}

func (f *staticFile) ReadAll() ([]byte, error) { return f.render() }

type selfLink struct {
	inode  uint64
	target string
}

func (l *selfLink) Attr() fsnode.Attr {
	return fsnode.Attr{Inode: l.inode, Mode: os.ModeSymlink | 0o777}
}

func (l *selfLink) Target() (string, error) { return l.target, nil }

func (d *Dir) version() ([]byte, error) {
	return []byte(fmt.Sprintf("Linux version %s (procfsd)\n", compatVersion)), nil
}

func (d *Dir) uptime() ([]byte, error) {
	up, idle, err := d.table.Uptime()
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("%.2f %.2f\n", up, idle)), nil
}

// cmdline publishes the command line of the process standing in for the
// kernel.
func (d *Dir) cmdline() ([]byte, error) {
	args, err := d.table.Cmdline(d.opts.KernelPID)
	if err != nil {
		return nil, err
	}
	return []byte(strings.Join(args, " ") + "\n"), nil
}

func (d *Dir) filesystems() ([]byte, error) {
	return []byte("nodev\tproc\n"), nil
}
