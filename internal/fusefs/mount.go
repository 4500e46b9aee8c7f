package fusefs

import (
	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/procfsd/procfsd/internal/fsnode"
	"github.com/procfsd/procfsd/internal/options"
)

// MountConfig carries the transport layer's own options, kept apart from
// the custom option store the same way the flag surface keeps them apart.
type MountConfig struct {
	// AllowOther permits users other than the mounting one to use the
	// filesystem.
	AllowOther bool
}

// Args renders the non-default mount options in canonical form.
func (m MountConfig) Args() []string {
	var args []string
	if m.AllowOther {
		args = append(args, "--allow-other")
	}
	return args
}

// AppendArgs produces the full canonical option list a querying client
// sees: the custom option tokens first, then the transport's own.
func AppendArgs(opts options.Options, m MountConfig) []string {
	return append(opts.Args(), m.Args()...)
}

// Mount acquires the kernel connection for mountpoint. The connection is
// the translator's bootstrap handle: without it the process has no role
// to serve and startup must abort.
func Mount(mountpoint string, m MountConfig) (*fuse.Conn, error) {
	mountOpts := []fuse.MountOption{
		fuse.FSName("procfsd"),
		fuse.Subtype("procfsd"),
		fuse.ReadOnly(),
	}
	if m.AllowOther {
		mountOpts = append(mountOpts, fuse.AllowOther())
	}
	return fuse.Mount(mountpoint, mountOpts...)
}

// Serve runs the request-dispatch loop. Under correct operation it does
// not return until the process is killed; its contract with the caller is
// that a return, nil error or not, means the mount is gone.
func Serve(conn *fuse.Conn, root fsnode.Dir) error {
	return fs.Serve(conn, NewFS(root))
}
