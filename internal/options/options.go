package options

// hostClockTick is the host's USER_HZ. Linux fixes the userspace tick
// unit at 100 regardless of the kernel's internal timer frequency, so the
// compiled default does not need a runtime probe.
const hostClockTick = 100

// Compiled defaults for the custom options.
const (
	DefaultStatMode  uint32 = 0o400
	DefaultKernelPID        = 2
	DefaultAnonOwner uint32 = 0
)

// FakeSelf is the explicit optional value behind --fake-self: either
// unset (no self link is published) or a concrete PID. The bare flag
// points the link at init, which is PID 1.
type FakeSelf struct {
	Set bool
	PID int
}

// Options is the process-wide configuration record.
//
// It is mutable only while Parse runs; once the startup sequence moves
// past the parse phase the value is read-only for the remainder of the
// process lifetime. The remount path never mutates it either (see
// Remount).
type Options struct {
	// ClockTick is the unit, in ticks per second, for values expressed
	// in system clock ticks. Always positive.
	ClockTick int

	// StatMode is the permission mode of the per-process stat files.
	// Only bits within 07777 are ever set.
	StatMode uint32

	// FakeSelf, when set, publishes a "self" symlink to the given PID.
	FakeSelf FakeSelf

	// KernelPID is the process identifier standing in for the kernel,
	// used to retrieve its command line and the global uptime. Positive.
	KernelPID int

	// AnonOwner is the uid owning files of processes without an owner.
	AnonOwner uint32
}

// Defaults returns the compiled defaults. Parse installs these before any
// flag is applied, and the serializer omits every field still equal to
// them.
func Defaults() Options {
	return Options{
		ClockTick: hostClockTick,
		StatMode:  DefaultStatMode,
		KernelPID: DefaultKernelPID,
		AnonOwner: DefaultAnonOwner,
	}
}
