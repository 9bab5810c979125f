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

// Package cmd holds the xv6sched subcommands, grounded on runsc/cmd's
// one-file-per-command layout (wait.go, do.go): each command is a small
// struct implementing subcommands.Command, flags and all.
package cmd

import (
	"fmt"

	"github.com/juchan1220/xv6sched/internal/config"
	"github.com/juchan1220/xv6sched/internal/kernel"
	"github.com/juchan1220/xv6sched/internal/usertable"
)

// loadKernel builds a fresh, un-booted Kernel from the named config file
// ("" for compiled-in defaults), the way runsc's cmd package turns a
// -config flag into a boot.Config before constructing the sandbox.
func loadKernel(configPath string) (*kernel.Kernel, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	policy, err := cfg.BuildPolicy()
	if err != nil {
		return nil, config.Config{}, err
	}
	return kernel.New(policy, kernel.NewNoopVM()), cfg, nil
}

// loadUsers opens the user table backing cfg.PasswdPath, bootstrapping
// root/0000 if the file doesn't exist yet (spec §8 scenario 6).
func loadUsers(cfg config.Config) (*usertable.Table, error) {
	return usertable.Open(usertable.FileDisk{Path: cfg.PasswdPath})
}

// step drives a single-threaded step loop until no thread is runnable or
// maxSteps iterations have run, returning the number of scheduler
// iterations it took. Commands use
// this instead of RunCPUs so output stays deterministic and
// single-goroutine, matching how the pack's demo/test binaries avoid
// racy interleaved stdout writes.
func step(k *kernel.Kernel, cpu *kernel.CPU, maxSteps int) int {
	return stepUntil(k, cpu, maxSteps, func() bool { return false })
}

// stepUntil is step, but stops early once done reports true — used where
// init must spin forever (exit() on pid 1 panics, per spec §4.8) and the
// caller instead signals completion through a captured flag.
func stepUntil(k *kernel.Kernel, cpu *kernel.CPU, maxSteps int, done func() bool) int {
	n := 0
	for ; n < maxSteps; n++ {
		if done() {
			break
		}
		if !k.RunOne(cpu) {
			break
		}
	}
	return n
}

func printDump(entries []kernel.DumpEntry) {
	fmt.Printf("%-5s %-5s %-10s %-10s %-5s %-5s\n", "PID", "TID", "NAME", "STATE", "LV", "PRIO")
	for _, e := range entries {
		fmt.Printf("%-5d %-5d %-10s %-10s %-5d %-5d\n", e.PID, e.TID, e.Name, e.State, e.QueueLevel, e.Priority)
	}
}
