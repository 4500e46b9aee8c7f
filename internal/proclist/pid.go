package proclist

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/procfsd/procfsd/internal/fsnode"
	"github.com/procfsd/procfsd/internal/options"
	"github.com/procfsd/procfsd/internal/procs"
)

// pidDir is the directory of one live process.
type pidDir struct {
	table *procs.Table
	opts  options.Options
	pid   int
}

func newPIDDir(table *procs.Table, opts options.Options, pid int) *pidDir {
	return &pidDir{table: table, opts: opts, pid: pid}
}

// owner returns the uid the process's files belong to. Processes the
// table records no owner for are attributed to the configured anonymous
// owner.
func (d *pidDir) owner() uint32 {
	if uid, ok := d.table.OwnerUID(d.pid); ok {
		return uid
	}
	return d.opts.AnonOwner
}

func (d *pidDir) Attr() fsnode.Attr {
	return fsnode.Attr{
		Inode: pidInode(d.pid, slotDir),
		Mode:  os.ModeDir | 0o555,
		UID:   d.owner(),
	}
}

func (d *pidDir) Lookup(name string) (fsnode.Node, error) {
	switch name {
	case "cmdline":
		return &pidFile{d, slotCmdline, 0o444, d.cmdline}, nil
	case "comm":
		return &pidFile{d, slotComm, 0o444, d.comm}, nil
	case "stat":
		return &pidFile{d, slotStat, os.FileMode(d.opts.StatMode), d.stat}, nil
	case "status":
		return &pidFile{d, slotStatus, 0o444, d.status}, nil
	default:
		return nil, fsnode.ErrNotFound
	}
}

func (d *pidDir) Entries() ([]fsnode.Entry, error) {
	return []fsnode.Entry{
		{Name: "cmdline", Inode: pidInode(d.pid, slotCmdline), Mode: 0o444},
		{Name: "comm", Inode: pidInode(d.pid, slotComm), Mode: 0o444},
		{Name: "stat", Inode: pidInode(d.pid, slotStat), Mode: os.FileMode(d.opts.StatMode)},
		{Name: "status", Inode: pidInode(d.pid, slotStatus), Mode: 0o444},
	}, nil
}

// pidFile is one synthetic file in a process directory. Content is
// rendered on every read so it always reflects the live process.
type pidFile struct {
	dir    *pidDir
	slot   int
	mode   os.FileMode
	render func() ([]byte, error)
}

func (f *pidFile) Attr() fsnode.Attr {
	attr := fsnode.Attr{
		Inode: pidInode(f.dir.pid, f.slot),
		Mode:  f.mode,
		UID:   f.dir.owner(),
	}
	if content, err := f.render(); err == nil {
		attr.Size = uint64(len(content))
	}
	return attr
}

func (f *pidFile) ReadAll() ([]byte, error) { return f.render() }

func (d *pidDir) cmdline() ([]byte, error) {
	args, err := d.table.Cmdline(d.pid)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, nil
	}
	return []byte(strings.Join(args, "\x00") + "\x00"), nil
}

func (d *pidDir) comm() ([]byte, error) {
	comm, err := d.table.Comm(d.pid)
	if err != nil {
		return nil, err
	}
	return []byte(comm + "\n"), nil
}

// stat renders the scheduler facts in the Linux [pid]/stat shape: pid,
// parenthesized command name, state, then the accounting fields. Times
// are expressed in the configured clock-tick unit. Fields the table does
// not track render as zero.
func (d *pidDir) stat() ([]byte, error) {
	comm, err := d.table.Comm(d.pid)
	if err != nil {
		return nil, err
	}
	st, err := d.table.Stat(d.pid)
	if err != nil {
		return nil, err
	}
	line := fmt.Sprintf("%d (%s) %c 0 0 0 0 -1 0 0 0 0 0 %d %d 0 0 0 0 0 0 0\n",
		d.pid, comm, st.State,
		ticks(st.UserTime, d.opts.ClockTick),
		ticks(st.SystemTime, d.opts.ClockTick))
	return []byte(line), nil
}

func (d *pidDir) status() ([]byte, error) {
	comm, err := d.table.Comm(d.pid)
	if err != nil {
		return nil, err
	}
	st, err := d.table.Stat(d.pid)
	if err != nil {
		return nil, err
	}
	uid := d.owner()
	var b strings.Builder
	fmt.Fprintf(&b, "Name:\t%s\n", comm)
	fmt.Fprintf(&b, "State:\t%c\n", st.State)
	fmt.Fprintf(&b, "Pid:\t%d\n", d.pid)
	fmt.Fprintf(&b, "Uid:\t%d\t%d\t%d\t%d\n", uid, uid, uid, uid)
	return []byte(b.String()), nil
}

// ticks converts a duration to the configured tick unit.
func ticks(d time.Duration, clockTick int) uint64 {
	return uint64(d / (time.Second / time.Duration(clockTick)))
}
