// Copyright 2026 The xv6sched Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the boot-time configuration for the kernel demo:
// pool sizes, the active scheduling policy, and MLFQ tuning, the way
// runsc/config loads a Config from a TOML-ish flag set and an optional
// file before handing it to the sandbox. Here there is no OCI runtime
// underneath it, just a single in-process Kernel, so the surface is a
// small flat struct instead of runsc's hundred-odd fields.
package config

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/juchan1220/xv6sched/internal/kernel"
)

// Config is the boot configuration, loadable from a TOML file and
// overridable by command-line flags (flags win, matching runsc's
// "allow-flag-override" precedence).
type Config struct {
	NProc   int `toml:"nproc"`
	NThread int `toml:"nthread"`
	NUser   int `toml:"nuser"`

	Policy string `toml:"policy"` // "round-robin" | "multilevel" | "mlfq"

	MLFQLevels     int `toml:"mlfq_levels"`
	MLFQBoostTicks int `toml:"mlfq_boost_ticks"`

	CPUs int `toml:"cpus"`

	PasswdPath string `toml:"passwd_path"`
}

// Default returns the configuration matching internal/kernel's compiled-
// in constants, used when no file is given.
func Default() Config {
	return Config{
		NProc:          kernel.NPROC,
		NThread:        kernel.NTHREAD,
		NUser:          32,
		Policy:         "round-robin",
		MLFQLevels:     kernel.MLFQLevels,
		MLFQBoostTicks: kernel.MLFQBoostTicks,
		CPUs:           1,
		PasswdPath:     "passwd.img",
	}
}

// Load reads a TOML file on top of Default, so a file only needs to set
// the fields it wants to override.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}

// RegisterFlags registers flags that overlay cfg's current values — call
// after Load so flags win over the file, matching runsc's flag/config
// precedence.
func RegisterFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Policy, "policy", cfg.Policy, "scheduling policy: round-robin, multilevel, or mlfq")
	fs.IntVar(&cfg.CPUs, "cpus", cfg.CPUs, "number of simulated CPUs")
	fs.IntVar(&cfg.MLFQLevels, "mlfq-levels", cfg.MLFQLevels, "number of MLFQ priority levels")
	fs.IntVar(&cfg.MLFQBoostTicks, "mlfq-boost-ticks", cfg.MLFQBoostTicks, "ticks between MLFQ priority boosts")
	fs.StringVar(&cfg.PasswdPath, "passwd", cfg.PasswdPath, "path to the persisted user table")
}

// BuildPolicy constructs the kernel.Policy cfg.Policy names.
//
// MLFQLevels/MLFQBoostTicks are compile-time constants in internal/kernel
// (the level-heap bank is a fixed-size array), so they aren't actually
// tunable per Kernel instance yet; BuildPolicy rejects a config that
// disagrees with the compiled values rather than silently ignoring them.
func (c Config) BuildPolicy() (kernel.Policy, error) {
	switch c.Policy {
	case "round-robin", "":
		return kernel.NewRoundRobin(), nil
	case "multilevel":
		return kernel.NewMultilevel(), nil
	case "mlfq":
		if c.MLFQLevels != kernel.MLFQLevels {
			return nil, fmt.Errorf("config: mlfq_levels=%d does not match compiled-in MLFQLevels=%d", c.MLFQLevels, kernel.MLFQLevels)
		}
		if c.MLFQBoostTicks != kernel.MLFQBoostTicks {
			return nil, fmt.Errorf("config: mlfq_boost_ticks=%d does not match compiled-in MLFQBoostTicks=%d", c.MLFQBoostTicks, kernel.MLFQBoostTicks)
		}
		return kernel.NewMLFQ(), nil
	default:
		return nil, fmt.Errorf("config: unknown policy %q", c.Policy)
	}
}
