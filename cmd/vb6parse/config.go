package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configName = "vb6parse.toml"

// fileConfig mirrors vb6parse.toml. Every key maps onto a flag of the same
// meaning; flags given on the command line win.
type fileConfig struct {
	Parse  parseConfig  `toml:"parse"`
	Output outputConfig `toml:"output"`
	Cache  cacheConfig  `toml:"cache"`
	Trace  traceConfig  `toml:"trace"`
}

type parseConfig struct {
	MaxErrors      *uint   `toml:"max_errors"`
	MaxDiagnostics *int    `toml:"max_diagnostics"`
	Encoding       *string `toml:"encoding"`
	Jobs           *int    `toml:"jobs"`
	Resources      *bool   `toml:"resources"`
}

type outputConfig struct {
	Color    *string `toml:"color"`
	PathMode *string `toml:"path_mode"`
	Timings  *bool   `toml:"timings"`
}

type cacheConfig struct {
	Enabled *bool   `toml:"enabled"`
	Dir     *string `toml:"dir"`
}

type traceConfig struct {
	Output   *string `toml:"output"`
	Level    *string `toml:"level"`
	Mode     *string `toml:"mode"`
	Format   *string `toml:"format"`
	RingSize *int    `toml:"ring_size"`
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fileConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// flagValues flattens the config into flag name -> textual value.
func (c *fileConfig) flagValues() map[string]string {
	out := make(map[string]string)
	putS := func(name string, v *string) {
		if v != nil {
			out[name] = *v
		}
	}
	putI := func(name string, v *int) {
		if v != nil {
			out[name] = strconv.Itoa(*v)
		}
	}
	putB := func(name string, v *bool) {
		if v != nil {
			out[name] = strconv.FormatBool(*v)
		}
	}
	if c.Parse.MaxErrors != nil {
		out["max-errors"] = strconv.FormatUint(uint64(*c.Parse.MaxErrors), 10)
	}
	putI("max-diagnostics", c.Parse.MaxDiagnostics)
	putS("encoding", c.Parse.Encoding)
	putI("jobs", c.Parse.Jobs)
	putB("resources", c.Parse.Resources)
	putS("color", c.Output.Color)
	putS("path-mode", c.Output.PathMode)
	putB("timings", c.Output.Timings)
	putB("cache", c.Cache.Enabled)
	putS("cache-dir", c.Cache.Dir)
	putS("trace", c.Trace.Output)
	putS("trace-level", c.Trace.Level)
	putS("trace-mode", c.Trace.Mode)
	putS("trace-format", c.Trace.Format)
	putI("trace-ring-size", c.Trace.RingSize)
	return out
}

// applyConfig fills flags the user did not set from vb6parse.toml.
// Keys whose flag the running command lacks are ignored.
func applyConfig(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		var ok bool
		path, ok, err = findConfig(".")
		if err != nil || !ok {
			return err
		}
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	return setUnchanged(cmd, cfg.flagValues(), path)
}

func setUnchanged(cmd *cobra.Command, values map[string]string, origin string) error {
	flags := cmd.Flags()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(values[name]); err != nil {
			return fmt.Errorf("%s: invalid value for %s: %w", origin, name, err)
		}
	}
	return nil
}
