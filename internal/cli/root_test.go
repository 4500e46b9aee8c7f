package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Contains(t, cmd.Use, "procfsd")
	assert.Contains(t, cmd.Short, "procfs")
}

func TestOptionFlags(t *testing.T) {
	cmd := NewRootCommand()

	tests := []struct {
		name      string
		shorthand string
	}{
		{name: "clk-tck", shorthand: "h"},
		{name: "stat-mode", shorthand: "s"},
		{name: "fake-self", shorthand: "S"},
		{name: "kernel-process", shorthand: "k"},
		{name: "compatible", shorthand: "c"},
		{name: "anonymous-owner", shorthand: "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestCompatibilityFlagsPresent(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"nodev", "noexec", "nosuid"} {
		require.NotNil(t, cmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestFakeSelfArgumentIsOptional(t *testing.T) {
	cmd := NewRootCommand()
	flag := cmd.Flags().Lookup("fake-self")
	require.NotNil(t, flag)
	assert.Equal(t, "1", flag.NoOptDefVal)
}

func TestHelpFlagHasNoShorthand(t *testing.T) {
	// -h belongs to --clk-tck; help is long-form only.
	cmd := NewRootCommand()
	flag := cmd.Flags().Lookup("help")
	require.NotNil(t, flag)
	assert.Empty(t, flag.Shorthand)
}

func TestFlagErrorsAreUsageStage(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--clk-tck=bogus"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, StageParse, FailedStage(err))
	assert.Contains(t, err.Error(), "clk-tck")
}

func TestUnknownFlagIsUsageStage(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--frobnicate"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, StageParse, FailedStage(err))
	assert.Contains(t, err.Error(), "frobnicate")
}
