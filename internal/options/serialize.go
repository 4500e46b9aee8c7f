package options

import "fmt"

// Args renders the store as canonical option tokens, one per field whose
// current value differs from the compiled default. Integers are decimal
// and the mode is octal, matching what the parser accepts, so every token
// re-parses to the value it encodes: serialize, parse, serialize again is
// idempotent.
//
// The transport layer appends its own canonical options to this list
// before handing it to a querying client.
func (o Options) Args() []string {
	def := Defaults()
	var args []string
	if o.ClockTick != def.ClockTick {
		args = append(args, fmt.Sprintf("--clk-tck=%d", o.ClockTick))
	}
	if o.StatMode != def.StatMode {
		args = append(args, fmt.Sprintf("--stat-mode=%o", o.StatMode))
	}
	if o.FakeSelf != def.FakeSelf {
		args = append(args, fmt.Sprintf("--fake-self=%d", o.FakeSelf.PID))
	}
	if o.AnonOwner != def.AnonOwner {
		args = append(args, fmt.Sprintf("--anonymous-owner=%d", o.AnonOwner))
	}
	if o.KernelPID != def.KernelPID {
		args = append(args, fmt.Sprintf("--kernel-process=%d", o.KernelPID))
	}
	return args
}
