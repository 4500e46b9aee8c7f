package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "procfsd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
clk-tck: 250
stat-mode: "0444"
fake-self: 42
kernel-process: 7
anonymous-owner: nobody
`)
	opts, err := Parse([]string{"--config=" + path}, testResolver)
	require.NoError(t, err)
	assert.Equal(t, 250, opts.ClockTick)
	assert.Equal(t, uint32(0o444), opts.StatMode)
	assert.Equal(t, FakeSelf{Set: true, PID: 42}, opts.FakeSelf)
	assert.Equal(t, 7, opts.KernelPID)
	assert.Equal(t, uint32(65534), opts.AnonOwner)
}

func TestConfigFilePartial(t *testing.T) {
	path := writeConfig(t, "clk-tck: 250\n")
	opts, err := Parse([]string{"--config=" + path}, testResolver)
	require.NoError(t, err)
	assert.Equal(t, 250, opts.ClockTick)
	assert.Equal(t, DefaultStatMode, opts.StatMode)
	assert.Equal(t, FakeSelf{}, opts.FakeSelf)
}

func TestConfigFileOrder(t *testing.T) {
	// The file is a preset applied at its argv position, exactly like
	// --compatible: last-wins either way around.
	path := writeConfig(t, "clk-tck: 250\n")

	opts, err := Parse([]string{"--config=" + path, "--clk-tck=50"}, testResolver)
	require.NoError(t, err)
	assert.Equal(t, 50, opts.ClockTick)

	opts, err = Parse([]string{"--clk-tck=50", "--config=" + path}, testResolver)
	require.NoError(t, err)
	assert.Equal(t, 250, opts.ClockTick)
}

func TestConfigFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown key", content: "clock: 100\n"},
		{name: "invalid yaml", content: "clk-tck: [\n"},
		{name: "out-of-range mode", content: "stat-mode: \"17777\"\n"},
		{name: "non-positive clk-tck", content: "clk-tck: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Parse([]string{"--config=" + path}, testResolver)
			require.Error(t, err)
			assert.True(t, IsUsageError(err))
		})
	}
}

func TestConfigFileMissing(t *testing.T) {
	_, err := Parse([]string{"--config=/nonexistent/procfsd.yaml"}, testResolver)
	require.Error(t, err)
	assert.True(t, IsUsageError(err))
	assert.Contains(t, err.Error(), "config")
}
