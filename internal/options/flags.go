package options

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"

	"github.com/spf13/pflag"
)

// UserResolver resolves a symbolic user name to a uid. The resolver is
// injectable so tests do not depend on the host account database; passing
// nil selects OSUserResolver.
type UserResolver func(name string) (uint32, bool)

// OSUserResolver looks names up in the system identity directory.
func OSUserResolver(name string) (uint32, bool) {
	u, err := user.Lookup(name)
	if err != nil {
		return 0, false
	}
	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(uid), true
}

// NewFlagSet builds the translator's option schema bound to opts.
//
// Every flag is a Value closed over the same Options, and pflag applies
// Set calls strictly in command-line order. That is what makes resolution
// last-wins across individual flags, the --compatible preset and the
// --config file alike.
func NewFlagSet(opts *Options, resolve UserResolver) *pflag.FlagSet {
	if resolve == nil {
		resolve = OSUserResolver
	}

	fs := pflag.NewFlagSet("procfsd", pflag.ContinueOnError)

	fs.VarP(clkTckValue{opts}, "clk-tck", "h",
		"unit for values expressed in system clock ticks")
	fs.VarP(statModeValue{opts}, "stat-mode", "s",
		"permission mode of the [pid]/stat files, in octal")
	fakeSelf := fs.VarPF(fakeSelfValue{opts}, "fake-self", "S",
		"publish a \"self\" link to PID, or to init when PID is omitted")
	fakeSelf.NoOptDefVal = "1"
	fs.VarP(kernelPIDValue{opts}, "kernel-process", "k",
		"process identifier standing in for the kernel")
	compatible := fs.VarPF(compatibleValue{opts}, "compatible", "c",
		"be compatible with the Linux procps utilities (-h 100 -s 0444 -S 1)")
	compatible.NoOptDefVal = "true"
	fs.VarP(anonOwnerValue{opts, resolve}, "anonymous-owner", "a",
		"owner of files related to processes without one")
	fs.Var(configValue{opts, resolve}, "config",
		"read option values from a YAML file at this point in the argument order")

	// Accepted and ignored, for compatibility with the Linux procfs
	// mount option surface.
	fs.Bool("nodev", false, "ignored")
	fs.Bool("noexec", false, "ignored")
	fs.Bool("nosuid", false, "ignored")

	return fs
}

// Parse validates args against the option schema and returns the
// finalized store. On failure nothing of the partially parsed state
// escapes: the candidate is discarded and only the UsageError is
// returned.
func Parse(args []string, resolve UserResolver) (Options, error) {
	opts := Defaults()
	fs := NewFlagSet(&opts, resolve)
	if err := fs.Parse(args); err != nil {
		return Options{}, &UsageError{Err: err}
	}
	return opts, nil
}

type clkTckValue struct{ opts *Options }

func (v clkTckValue) String() string { return strconv.Itoa(v.opts.ClockTick) }
func (v clkTckValue) Type() string   { return "hz" }

func (v clkTckValue) Set(s string) error {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil || n <= 0 {
		return errors.New("HZ must be a positive integer")
	}
	v.opts.ClockTick = int(n)
	return nil
}

type statModeValue struct{ opts *Options }

func (v statModeValue) String() string { return fmt.Sprintf("%#o", v.opts.StatMode) }
func (v statModeValue) Type() string   { return "mode" }

func (v statModeValue) Set(s string) error {
	m, err := strconv.ParseUint(s, 8, 32)
	if err != nil || uint32(m)&^uint32(0o7777) != 0 {
		return errors.New("MODE must be an octal mode within 07777")
	}
	v.opts.StatMode = uint32(m)
	return nil
}

type fakeSelfValue struct{ opts *Options }

func (v fakeSelfValue) String() string {
	if !v.opts.FakeSelf.Set {
		return ""
	}
	return strconv.Itoa(v.opts.FakeSelf.PID)
}

func (v fakeSelfValue) Type() string { return "pid" }

func (v fakeSelfValue) Set(s string) error {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil || n <= 0 {
		return errors.New("PID must be a positive integer")
	}
	v.opts.FakeSelf = FakeSelf{Set: true, PID: int(n)}
	return nil
}

type kernelPIDValue struct{ opts *Options }

func (v kernelPIDValue) String() string { return strconv.Itoa(v.opts.KernelPID) }
func (v kernelPIDValue) Type() string   { return "pid" }

func (v kernelPIDValue) Set(s string) error {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil || n <= 0 {
		return errors.New("PID must be a positive integer")
	}
	v.opts.KernelPID = int(n)
	return nil
}

// compatibleValue applies the procps compatibility preset. The preset
// overwrites the three fields it covers at its position in the argument
// order; flags given after it still win.
type compatibleValue struct{ opts *Options }

func (v compatibleValue) String() string { return "false" }
func (v compatibleValue) Type() string   { return "bool" }

func (v compatibleValue) Set(string) error {
	v.opts.ClockTick = 100
	v.opts.StatMode = 0o444
	v.opts.FakeSelf = FakeSelf{Set: true, PID: 1}
	return nil
}

// anonOwnerValue resolves a symbolic user name first and falls back to a
// non-negative numeric uid.
type anonOwnerValue struct {
	opts    *Options
	resolve UserResolver
}

func (v anonOwnerValue) String() string { return strconv.FormatUint(uint64(v.opts.AnonOwner), 10) }
func (v anonOwnerValue) Type() string   { return "user" }

func (v anonOwnerValue) Set(s string) error {
	if uid, ok := v.resolve(s); ok {
		v.opts.AnonOwner = uid
		return nil
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return errors.New("USER must be a user name or a numeric UID")
	}
	v.opts.AnonOwner = uint32(n)
	return nil
}
