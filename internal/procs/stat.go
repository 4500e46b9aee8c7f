package procs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Stat carries the scheduling facts of one process.
type Stat struct {
	// State is the single-letter scheduler state.
	State byte

	// UserTime and SystemTime are the CPU time consumed in each mode.
	UserTime   time.Duration
	SystemTime time.Duration
}

// hostTick is the tick unit the host table expresses CPU times in.
const hostTick = 100

// Stat reads the scheduling facts of pid.
func (t *Table) Stat(pid int) (Stat, error) {
	b, err := os.ReadFile(t.path(strconv.Itoa(pid), "stat"))
	if err != nil {
		return Stat{}, err
	}

	// The command name is parenthesized and may itself contain spaces
	// or parentheses, so split after the last closing paren.
	line := string(b)
	end := strings.LastIndexByte(line, ')')
	if end < 0 || end+2 >= len(line) {
		return Stat{}, fmt.Errorf("process table %s: malformed stat for pid %d", t.root, pid)
	}
	fields := strings.Fields(line[end+1:])
	// After the name: state, then 10 accounting fields, then utime and
	// stime in host ticks.
	if len(fields) < 13 || len(fields[0]) != 1 {
		return Stat{}, fmt.Errorf("process table %s: malformed stat for pid %d", t.root, pid)
	}
	utime, err := strconv.ParseUint(fields[11], 10, 64)
	if err != nil {
		return Stat{}, fmt.Errorf("process table %s: malformed stat for pid %d: %w", t.root, pid, err)
	}
	stime, err := strconv.ParseUint(fields[12], 10, 64)
	if err != nil {
		return Stat{}, fmt.Errorf("process table %s: malformed stat for pid %d: %w", t.root, pid, err)
	}

	return Stat{
		State:      fields[0][0],
		UserTime:   time.Duration(utime) * time.Second / hostTick,
		SystemTime: time.Duration(stime) * time.Second / hostTick,
	}, nil
}
