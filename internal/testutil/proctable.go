// Package testutil provides fixture helpers shared by package tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/procfsd/procfsd/internal/options"
)

// ProcSpec describes one process in a fixture table.
type ProcSpec struct {
	PID     int
	Comm    string
	Cmdline []string

	// State defaults to 'S'. UserTicks and SysTicks are in host tick
	// units, as the real table publishes them.
	State     byte
	UserTicks uint64
	SysTicks  uint64
}

// WriteProcTable lays out a process-table fixture in a temp directory and
// returns its path. The layout matches what procs.Table reads: one
// numeric directory per process with comm, cmdline and stat files, plus a
// global uptime file.
func WriteProcTable(t *testing.T, specs ...ProcSpec) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "uptime"), "620.52 1201.04\n")

	for _, spec := range specs {
		state := spec.State
		if state == 0 {
			state = 'S'
		}
		pidDir := filepath.Join(dir, strconv.Itoa(spec.PID))
		if err := os.Mkdir(pidDir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", pidDir, err)
		}
		writeFile(t, filepath.Join(pidDir, "comm"), spec.Comm+"\n")

		cmdline := ""
		if len(spec.Cmdline) > 0 {
			cmdline = strings.Join(spec.Cmdline, "\x00") + "\x00"
		}
		writeFile(t, filepath.Join(pidDir, "cmdline"), cmdline)

		stat := fmt.Sprintf("%d (%s) %c 0 0 0 0 -1 0 0 0 0 0 %d %d 0 0 0 0 0 0 0\n",
			spec.PID, spec.Comm, state, spec.UserTicks, spec.SysTicks)
		writeFile(t, filepath.Join(pidDir, "stat"), stat)
	}

	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// MapResolver builds a UserResolver from a fixed name table, so tests do
// not depend on the host account database.
func MapResolver(users map[string]uint32) options.UserResolver {
	return func(name string) (uint32, bool) {
		uid, ok := users[name]
		return uid, ok
	}
}
