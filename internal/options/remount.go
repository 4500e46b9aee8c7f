package options

import "github.com/spf13/pflag"

// RuntimeFlagSet returns the schema accepted over the live
// reconfiguration path: the common options plus --update.
func RuntimeFlagSet(opts *Options, resolve UserResolver) *pflag.FlagSet {
	fs := NewFlagSet(opts, resolve)
	fs.BoolP("update", "u", false, "remount; for this filesystem it does nothing")
	return fs
}

// Remount handles a live "remount" request. This filesystem has no
// backing store to resynchronize, so the request validates its arguments
// and succeeds without touching the active configuration: the values are
// parsed into a scratch store that is thrown away.
func Remount(args []string) error {
	scratch := Defaults()
	fs := RuntimeFlagSet(&scratch, nil)
	if err := fs.Parse(args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}
