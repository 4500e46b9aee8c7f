package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the long option names. Every field is optional;
// absent keys leave the current value alone. stat-mode is a string so the
// file uses the same octal notation the flag does.
type fileConfig struct {
	ClkTck         *int    `yaml:"clk-tck"`
	StatMode       *string `yaml:"stat-mode"`
	FakeSelf       *int    `yaml:"fake-self"`
	KernelProcess  *int    `yaml:"kernel-process"`
	AnonymousOwner *string `yaml:"anonymous-owner"`
}

// configValue loads a YAML option file. Like --compatible, it is a preset
// applied at its position in the argument order: later flags override it,
// earlier flags are overwritten. Values go through the same validation as
// their flag counterparts.
type configValue struct {
	opts    *Options
	resolve UserResolver
}

func (v configValue) String() string { return "" }
func (v configValue) Type() string   { return "file" }

func (v configValue) Set(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("FILE must be a readable option file: %w", err)
	}

	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("FILE must be a valid option file: %w", err)
	}

	if cfg.ClkTck != nil {
		if err := (clkTckValue{v.opts}).Set(strconv.Itoa(*cfg.ClkTck)); err != nil {
			return fmt.Errorf("clk-tck: %w", err)
		}
	}
	if cfg.StatMode != nil {
		if err := (statModeValue{v.opts}).Set(*cfg.StatMode); err != nil {
			return fmt.Errorf("stat-mode: %w", err)
		}
	}
	if cfg.FakeSelf != nil {
		if err := (fakeSelfValue{v.opts}).Set(strconv.Itoa(*cfg.FakeSelf)); err != nil {
			return fmt.Errorf("fake-self: %w", err)
		}
	}
	if cfg.KernelProcess != nil {
		if err := (kernelPIDValue{v.opts}).Set(strconv.Itoa(*cfg.KernelProcess)); err != nil {
			return fmt.Errorf("kernel-process: %w", err)
		}
	}
	if cfg.AnonymousOwner != nil {
		if err := (anonOwnerValue{v.opts, v.resolve}).Set(*cfg.AnonymousOwner); err != nil {
			return fmt.Errorf("anonymous-owner: %w", err)
		}
	}
	return nil
}
