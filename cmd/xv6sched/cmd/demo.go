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

	"github.com/juchan1220/xv6sched/internal/config"
	"github.com/juchan1220/xv6sched/internal/kernel"
	"github.com/juchan1220/xv6sched/internal/usertable"
)

// Demo implements subcommands.Command: it runs a fixed script against
// whichever policy is selected, printing a narrative transcript of the
// end-to-end scenarios spec.md §8 describes (thread join retval, exit
// reaping a still-running sibling thread, user-table persistence across
// reopen). It takes the place of an interactive xv6
// shell session for demonstration purposes.
type Demo struct {
	configPath string
}

func (*Demo) Name() string     { return "demo" }
func (*Demo) Synopsis() string { return "run a scripted workload narrating the scheduler's behavior" }
func (*Demo) Usage() string    { return "demo [-config path]\n" }

func (c *Demo) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "path to a TOML boot config (defaults compiled in)")
}

func (c *Demo) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	k, cfg, err := loadKernel(c.configPath)
	if err != nil {
		fmt.Println("demo:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("=== scheduling under policy=%s ===\n", cfg.Policy)
	if status := c.runSchedulingScenario(k); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Println("=== user table ===")
	if status := c.runUserTableScenario(cfg); status != subcommands.ExitSuccess {
		return status
	}

	return subcommands.ExitSuccess
}

// runSchedulingScenario forks a worker that spawns a second thread,
// joins it for its retval, then exits while that thread's sibling is
// still mid-flight — exercising Fork, ThreadCreate/ThreadJoin, and the
// exit-reaps-siblings path (spec §4.8/§4.9) in one script.
func (c *Demo) runSchedulingScenario(k *kernel.Kernel) subcommands.ExitStatus {
	var joined bool
	var joinedVal any
	var workerReaped bool

	_, err := k.Boot("init", func(ec *kernel.EntityCtx) {
		if _, ferr := ec.Fork("worker", func(wec *kernel.EntityCtx) {
			tid, terr := wec.ThreadCreate(func(tec *kernel.EntityCtx) {
				for i := 0; i < 3; i++ {
					tec.Yield()
				}
				tec.ThreadExit(42)
			})
			if terr != nil {
				panic(terr)
			}
			v, jerr := wec.ThreadJoin(tid)
			if jerr != nil {
				panic(jerr)
			}
			joined, joinedVal = true, v

			// A second, never-joined thread: worker's Exit must reap
			// it on the way out instead of leaking it (spec §4.8). It
			// spins until Exit marks the process killed.
			if _, cerr := wec.ThreadCreate(func(tec *kernel.EntityCtx) {
				for !tec.Killed() {
					tec.Yield()
				}
			}); cerr != nil {
				panic(cerr)
			}

			wec.Exit()
		}); ferr != nil {
			panic(ferr)
		}
		for {
			if _, werr := ec.Wait(); werr == nil {
				break
			}
		}
		workerReaped = true
		for {
			ec.Yield()
		}
	})
	if err != nil {
		fmt.Println("demo:", err)
		return subcommands.ExitFailure
	}

	cpu := &kernel.CPU{}
	steps := stepUntil(k, cpu, 1_000_000, func() bool { return workerReaped })
	fmt.Printf("thread_join returned %v (ok=%v) after %d scheduler steps\n", joinedVal, joined, steps)
	printDump(k.Dump())
	return subcommands.ExitSuccess
}

// runUserTableScenario adds a user, confirms login succeeds, reopens the
// table from the same backing file, and confirms the new user survived
// the round trip (spec §8 scenario: "reopen is a fixed point of
// parse-then-write"). usertable's mutators take an *kernel.EntityCtx (it
// serializes through a kernel.SleepLock), so this scenario boots its own
// disposable kernel purely to get one.
func (c *Demo) runUserTableScenario(cfg config.Config) subcommands.ExitStatus {
	disk := usertable.FileDisk{Path: cfg.PasswdPath}
	table, err := usertable.Open(disk)
	if err != nil {
		fmt.Println("demo:", err)
		return subcommands.ExitFailure
	}

	var addErr error
	var uid uint32
	var loginOK bool
	done := false

	k := kernel.New(kernel.NewRoundRobin(), kernel.NewNoopVM())
	_, err = k.Boot("init", func(ec *kernel.EntityCtx) {
		if _, ferr := ec.Fork("useradd", func(wec *kernel.EntityCtx) {
			uid, addErr = table.AddUser(wec, usertable.RootUID, "alice", "swordfish")
			if addErr == nil {
				_, loginOK = table.Login(wec, "alice", "swordfish")
			}
			done = true
			wec.Exit()
		}); ferr != nil {
			panic(ferr)
		}
		for {
			ec.Yield()
		}
	})
	if err != nil {
		fmt.Println("demo:", err)
		return subcommands.ExitFailure
	}

	cpu := &kernel.CPU{}
	stepUntil(k, cpu, 10_000, func() bool { return done })
	fmt.Printf("added alice uid=%d (err=%v), login ok=%v\n", uid, addErr, loginOK)

	reopened, err := usertable.Open(disk)
	if err != nil {
		fmt.Println("demo:", err)
		return subcommands.ExitFailure
	}

	var reopenUID uint32
	var reopenOK bool
	done2 := false
	k2 := kernel.New(kernel.NewRoundRobin(), kernel.NewNoopVM())
	_, err = k2.Boot("init", func(ec *kernel.EntityCtx) {
		if _, ferr := ec.Fork("checklogin", func(wec *kernel.EntityCtx) {
			reopenUID, reopenOK = reopened.Login(wec, "alice", "swordfish")
			done2 = true
			wec.Exit()
		}); ferr != nil {
			panic(ferr)
		}
		for {
			ec.Yield()
		}
	})
	if err != nil {
		fmt.Println("demo:", err)
		return subcommands.ExitFailure
	}
	cpu2 := &kernel.CPU{}
	stepUntil(k2, cpu2, 10_000, func() bool { return done2 })
	fmt.Printf("after reopening %s: alice login ok=%v uid=%d\n", cfg.PasswdPath, reopenOK, reopenUID)

	return subcommands.ExitSuccess
}
