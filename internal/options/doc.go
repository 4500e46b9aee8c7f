// Package options implements the translator's dual-protocol option
// subsystem: the parse-time schema for command-line arguments, the
// runtime schema accepted over the live reconfiguration path, and the
// canonical serialization clients query to learn the effective
// non-default configuration.
//
// The Options value produced by Parse is written exactly once, during
// startup. Every later consumer (directory contributors, the serializer,
// the remount path) reads it without synchronization because no writer
// remains past the parse phase.
//
// Flag resolution is strictly last-wins in command-line order. That
// includes the --compatible preset and the --config file: each applies
// its values at its own position in the argument list, so a flag given
// later always overrides it, and a flag given earlier is overwritten.
// This order dependence is a documented part of the option surface, not
// an accident of implementation.
package options
