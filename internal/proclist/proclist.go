package proclist

import (
	"os"
	"strconv"

	"github.com/procfsd/procfsd/internal/fsnode"
	"github.com/procfsd/procfsd/internal/options"
	"github.com/procfsd/procfsd/internal/procs"
)

// Inode layout for per-process nodes: a pid-derived base plus a slot per
// file, so a process keeps the same inodes for as long as it lives.
// pidInodeBase + maxpid*pidInodeStride stays well below
// fsnode.ReservedBase.
const (
	pidInodeBase   uint64 = 0x10000
	pidInodeStride uint64 = 8
)

const (
	slotDir = iota
	slotCmdline
	slotComm
	slotStat
	slotStatus
)

func pidInode(pid, slot int) uint64 {
	return pidInodeBase + uint64(pid)*pidInodeStride + uint64(slot)
}

// Dir is the per-process directory contributor. Enumeration reflects the
// live process table on every call.
type Dir struct {
	table *procs.Table
	opts  options.Options
	inode uint64
}

// New creates the contributor. opts is the finalized option store; it is
// copied here and never mutated again.
func New(table *procs.Table, opts options.Options, alloc *fsnode.Allocator) *Dir {
	return &Dir{table: table, opts: opts, inode: alloc.Next()}
}

func (d *Dir) Attr() fsnode.Attr {
	return fsnode.Attr{Inode: d.inode, Mode: os.ModeDir | 0o555}
}

// Lookup resolves a decimal pid to its directory. Only canonical decimal
// names resolve: "007" is not a process.
func (d *Dir) Lookup(name string) (fsnode.Node, error) {
	pid, err := strconv.Atoi(name)
	if err != nil || pid <= 0 || strconv.Itoa(pid) != name {
		return nil, fsnode.ErrNotFound
	}
	if !d.table.Alive(pid) {
		return nil, fsnode.ErrNotFound
	}
	return newPIDDir(d.table, d.opts, pid), nil
}

func (d *Dir) Entries() ([]fsnode.Entry, error) {
	pids, err := d.table.PIDs()
	if err != nil {
		return nil, err
	}
	entries := make([]fsnode.Entry, 0, len(pids))
	for _, pid := range pids {
		entries = append(entries, fsnode.Entry{
			Name:  strconv.Itoa(pid),
			Inode: pidInode(pid, slotDir),
			Mode:  os.ModeDir | 0o555,
		})
	}
	return entries, nil
}
