package dircat

import (
	"errors"
	"fmt"
	"os"

	"github.com/procfsd/procfsd/internal/fsnode"
)

// Contributor pairs a directory with a stable name used in diagnostics.
// The composer never looks inside the directory; its only knowledge is
// the contributor's position in the list handed to New.
type Contributor struct {
	Name string
	Dir  fsnode.Dir
}

// Root is the composite root directory node. It is built exactly once at
// startup and lives for the process lifetime.
type Root struct {
	contributors []Contributor
}

// ErrNoContributors reports a composition attempt with nothing to
// compose.
var ErrNoContributors = errors.New("dircat: no contributors")

// New composes contributors into the root. The order given here is the
// lookup precedence and the enumeration order for the life of the mount.
func New(contributors ...Contributor) (*Root, error) {
	if len(contributors) == 0 {
		return nil, ErrNoContributors
	}
	for _, c := range contributors {
		if c.Dir == nil {
			return nil, fmt.Errorf("dircat: contributor %q has no directory", c.Name)
		}
	}
	cs := make([]Contributor, len(contributors))
	copy(cs, contributors)
	return &Root{contributors: cs}, nil
}

func (r *Root) Attr() fsnode.Attr {
	return fsnode.Attr{
		Inode: fsnode.RootInode,
		Mode:  os.ModeDir | 0o555,
	}
}

// Lookup delegates to the contributors in order; first match wins.
func (r *Root) Lookup(name string) (fsnode.Node, error) {
	for _, c := range r.contributors {
		n, err := c.Dir.Lookup(name)
		if err == nil {
			return n, nil
		}
		if !errors.Is(err, fsnode.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
	}
	return nil, fsnode.ErrNotFound
}

// Entries is the union of all contributors' enumerations, in contributor
// order.
func (r *Root) Entries() ([]fsnode.Entry, error) {
	var all []fsnode.Entry
	for _, c := range r.contributors {
		entries, err := c.Dir.Entries()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		all = append(all, entries...)
	}
	return all, nil
}
