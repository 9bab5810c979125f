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

// Binary xv6sched is a runsc-style CLI front end for internal/kernel: a
// set of subcommands that boot a Kernel, drive it through a scripted
// workload, and print the result, standing in for the interactive shell
// a real xv6 image would boot into.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/juchan1220/xv6sched/cmd/xv6sched/cmd"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(new(cmd.Boot), "")
	subcommands.Register(new(cmd.Demo), "")
	subcommands.Register(new(cmd.PS), "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
