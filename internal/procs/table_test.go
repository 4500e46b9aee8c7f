package procs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procfsd/procfsd/internal/testutil"
)

func fixtureTable(t *testing.T) *Table {
	t.Helper()
	root := testutil.WriteProcTable(t,
		testutil.ProcSpec{PID: 1, Comm: "init", Cmdline: []string{"/sbin/init", "-3"}},
		testutil.ProcSpec{PID: 2, Comm: "kthreadd"},
		testutil.ProcSpec{PID: 42, Comm: "answerd", Cmdline: []string{"answerd", "--listen"},
			State: 'R', UserTicks: 100, SysTicks: 50},
	)
	table, err := NewTable(root)
	require.NoError(t, err)
	return table
}

func TestNewTableErrors(t *testing.T) {
	_, err := NewTable(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = NewTable(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestPIDs(t *testing.T) {
	table := fixtureTable(t)
	pids, err := table.PIDs()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 42}, pids)
}

func TestAlive(t *testing.T) {
	table := fixtureTable(t)
	assert.True(t, table.Alive(42))
	assert.False(t, table.Alive(43))
}

func TestComm(t *testing.T) {
	table := fixtureTable(t)
	comm, err := table.Comm(1)
	require.NoError(t, err)
	assert.Equal(t, "init", comm)

	_, err = table.Comm(43)
	assert.Error(t, err)
}

func TestCmdline(t *testing.T) {
	table := fixtureTable(t)

	args, err := table.Cmdline(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"/sbin/init", "-3"}, args)

	// Kernel threads publish an empty command line.
	args, err = table.Cmdline(2)
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestStat(t *testing.T) {
	table := fixtureTable(t)

	st, err := table.Stat(42)
	require.NoError(t, err)
	assert.Equal(t, byte('R'), st.State)
	assert.Equal(t, time.Second, st.UserTime)
	assert.Equal(t, 500*time.Millisecond, st.SystemTime)

	st, err = table.Stat(2)
	require.NoError(t, err)
	assert.Equal(t, byte('S'), st.State)
	assert.Zero(t, st.UserTime)
}

func TestStatCommWithDelimiters(t *testing.T) {
	// The command name may contain spaces and parentheses; parsing
	// anchors on the last closing paren.
	root := testutil.WriteProcTable(t,
		testutil.ProcSpec{PID: 5, Comm: "tricky) (name", UserTicks: 200},
	)
	table, err := NewTable(root)
	require.NoError(t, err)

	st, err := table.Stat(5)
	require.NoError(t, err)
	assert.Equal(t, byte('S'), st.State)
	assert.Equal(t, 2*time.Second, st.UserTime)
}

func TestOwnerUID(t *testing.T) {
	table := fixtureTable(t)
	uid, ok := table.OwnerUID(1)
	require.True(t, ok)
	assert.Equal(t, uint32(os.Getuid()), uid)

	_, ok = table.OwnerUID(43)
	assert.False(t, ok)
}

func TestUptime(t *testing.T) {
	table := fixtureTable(t)
	up, idle, err := table.Uptime()
	require.NoError(t, err)
	assert.InDelta(t, 620.52, up, 0.001)
	assert.InDelta(t, 1201.04, idle, 0.001)
}
