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

package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/juchan1220/xv6sched/internal/kernel"
)

// PS implements subcommands.Command: it boots a kernel, forks a handful
// of threads that immediately block (one sleeping, one yielding forever),
// then prints Kernel.Dump()'s snapshot — the ps-style diagnostic
// supplemented from original_source's procdump (SPEC_FULL.md §4).
type PS struct {
	configPath string
}

func (*PS) Name() string     { return "ps" }
func (*PS) Synopsis() string { return "boot a kernel with a small fixed workload and dump the entity table" }
func (*PS) Usage() string    { return "ps [-config path]\n" }

func (c *PS) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "path to a TOML boot config (defaults compiled in)")
}

func (c *PS) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	k, _, err := loadKernel(c.configPath)
	if err != nil {
		fmt.Println("ps: ", err)
		return subcommands.ExitFailure
	}

	var sleeperTID int
	_, err = k.Boot("init", func(ec *kernel.EntityCtx) {
		if _, ferr := ec.Fork("sleeper", func(cec *kernel.EntityCtx) {
			sleeperTID = cec.TID()
			cec.Sleep(&sleeperTID) // never woken: stays SLEEPING for the snapshot
		}); ferr != nil {
			panic(ferr)
		}
		if _, ferr := ec.Fork("spinner", func(cec *kernel.EntityCtx) {
			for {
				cec.Yield()
			}
		}); ferr != nil {
			panic(ferr)
		}
		for {
			ec.Yield()
		}
	})
	if err != nil {
		fmt.Println("ps: ", err)
		return subcommands.ExitFailure
	}

	cpu := &kernel.CPU{}
	// A handful of steps is enough to let every forked thread run once
	// and the sleeper park; init and the spinner stay RUNNABLE forever
	// so we drive a fixed step count rather than stepUntil.
	step(k, cpu, 16)

	printDump(k.Dump())
	return subcommands.ExitSuccess
}
