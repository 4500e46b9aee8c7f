package dircat

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procfsd/procfsd/internal/fsnode"
)

// fakeNode is a distinguishable leaf so tests can tell which contributor
// resolved a lookup.
type fakeNode struct {
	inode uint64
}

func (n *fakeNode) Attr() fsnode.Attr { return fsnode.Attr{Inode: n.inode, Mode: 0o444} }

// fakeDir is a contributor with a fixed namespace.
type fakeDir struct {
	inode   uint64
	names   []string
	nodes   map[string]fsnode.Node
	lookErr error
	enumErr error
}

func newFakeDir(inode uint64, names ...string) *fakeDir {
	d := &fakeDir{inode: inode, names: names, nodes: make(map[string]fsnode.Node)}
	for i, name := range names {
		d.nodes[name] = &fakeNode{inode: inode*100 + uint64(i)}
	}
	return d
}

func (d *fakeDir) Attr() fsnode.Attr { return fsnode.Attr{Inode: d.inode, Mode: os.ModeDir | 0o555} }

func (d *fakeDir) Lookup(name string) (fsnode.Node, error) {
	if d.lookErr != nil {
		return nil, d.lookErr
	}
	if n, ok := d.nodes[name]; ok {
		return n, nil
	}
	return nil, fsnode.ErrNotFound
}

func (d *fakeDir) Entries() ([]fsnode.Entry, error) {
	if d.enumErr != nil {
		return nil, d.enumErr
	}
	entries := make([]fsnode.Entry, 0, len(d.names))
	for i, name := range d.names {
		entries = append(entries, fsnode.Entry{Name: name, Inode: d.inode*100 + uint64(i), Mode: 0o444})
	}
	return entries, nil
}

func TestNewRequiresContributors(t *testing.T) {
	_, err := New()
	assert.ErrorIs(t, err, ErrNoContributors)

	_, err = New(Contributor{Name: "empty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLookupFirstMatchWins(t *testing.T) {
	first := newFakeDir(10, "X", "only-first")
	second := newFakeDir(20, "X", "only-second")
	root, err := New(
		Contributor{Name: "first", Dir: first},
		Contributor{Name: "second", Dir: second},
	)
	require.NoError(t, err)

	// Both contributors expose "X"; the first one's entry is returned.
	got, err := root.Lookup("X")
	require.NoError(t, err)
	assert.Equal(t, first.nodes["X"], got)

	// Names only a later contributor has still resolve.
	got, err = root.Lookup("only-second")
	require.NoError(t, err)
	assert.Equal(t, second.nodes["only-second"], got)

	_, err = root.Lookup("nowhere")
	assert.ErrorIs(t, err, fsnode.ErrNotFound)
}

func TestEntriesUnionInOrderWithoutDedup(t *testing.T) {
	root, err := New(
		Contributor{Name: "first", Dir: newFakeDir(10, "X", "a")},
		Contributor{Name: "second", Dir: newFakeDir(20, "X", "b")},
	)
	require.NoError(t, err)

	entries, err := root.Entries()
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	// Enumeration shows the shared name twice even though lookup only
	// ever reaches the first.
	assert.Equal(t, []string{"X", "a", "X", "b"}, names)
}

func TestRootIdentityIsFixed(t *testing.T) {
	small, err := New(Contributor{Name: "one", Dir: newFakeDir(10, "a")})
	require.NoError(t, err)
	large, err := New(
		Contributor{Name: "one", Dir: newFakeDir(10, "a", "b", "c")},
		Contributor{Name: "two", Dir: newFakeDir(20, "d", "e")},
	)
	require.NoError(t, err)

	// Identity is independent of configuration and contributor content.
	assert.Equal(t, fsnode.RootInode, small.Attr().Inode)
	assert.Equal(t, fsnode.RootInode, large.Attr().Inode)
	assert.True(t, large.Attr().Mode.IsDir())
}

func TestContributorErrorsSurfaceWithName(t *testing.T) {
	broken := newFakeDir(10, "a")
	broken.lookErr = errors.New("backing store gone")
	root, err := New(Contributor{Name: "broken", Dir: broken})
	require.NoError(t, err)

	_, err = root.Lookup("a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	broken.enumErr = errors.New("backing store gone")
	_, err = root.Entries()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
