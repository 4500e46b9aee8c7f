package procs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"
)

// DefaultRoot is where the host publishes its process table.
const DefaultRoot = "/proc"

// Table is a read-only view over a process-table root.
type Table struct {
	root string
}

// NewTable opens a process-table view rooted at root. The root must be a
// readable directory; anything else is fatal to the caller's startup.
func NewTable(root string) (*Table, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("process table %s: %w", root, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("process table %s: not a directory", root)
	}
	return &Table{root: root}, nil
}

// Root returns the table's root path.
func (t *Table) Root() string { return t.root }

func (t *Table) path(parts ...string) string {
	return filepath.Join(append([]string{t.root}, parts...)...)
}

// PIDs lists the live process identifiers in ascending order.
func (t *Table) PIDs() ([]int, error) {
	entries, err := os.ReadDir(t.root)
	if err != nil {
		return nil, fmt.Errorf("process table %s: %w", t.root, err)
	}
	var pids []int
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil || pid <= 0 {
			continue
		}
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return pids, nil
}

// Alive reports whether pid currently exists in the table.
func (t *Table) Alive(pid int) bool {
	fi, err := os.Stat(t.path(strconv.Itoa(pid)))
	return err == nil && fi.IsDir()
}

// Comm returns the short command name of pid.
func (t *Table) Comm(pid int) (string, error) {
	b, err := os.ReadFile(t.path(strconv.Itoa(pid), "comm"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Cmdline returns the argument vector of pid. Kernel threads have an
// empty command line.
func (t *Table) Cmdline(pid int) ([]string, error) {
	b, err := os.ReadFile(t.path(strconv.Itoa(pid), "cmdline"))
	if err != nil {
		return nil, err
	}
	var args []string
	for _, a := range strings.Split(string(b), "\x00") {
		if a != "" {
			args = append(args, a)
		}
	}
	return args, nil
}

// OwnerUID returns the uid owning pid. ok is false when the table does
// not record an owner, in which case the caller attributes the process to
// the configured anonymous owner.
func (t *Table) OwnerUID(pid int) (uid uint32, ok bool) {
	fi, err := os.Stat(t.path(strconv.Itoa(pid)))
	if err != nil {
		return 0, false
	}
	st, isStat := fi.Sys().(*syscall.Stat_t)
	if !isStat {
		return 0, false
	}
	return st.Uid, true
}

// Uptime returns the seconds the system has been up and the seconds it
// has spent idle.
func (t *Table) Uptime() (up, idle float64, err error) {
	b, err := os.ReadFile(t.path("uptime"))
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(string(b))
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("process table %s: malformed uptime", t.root)
	}
	up, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("process table %s: malformed uptime: %w", t.root, err)
	}
	idle, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("process table %s: malformed uptime: %w", t.root, err)
	}
	return up, idle, nil
}
