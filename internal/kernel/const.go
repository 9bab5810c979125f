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

// Package kernel implements the process/thread scheduling subsystem: the
// entity table, the lifecycle state machine, the context switch primitive,
// the pluggable scheduling policies, and the sleep/wakeup/yield/kill
// primitives every blocking kernel operation is built on.
package kernel

// Pool capacities, fixed at compile time the way xv6 sizes NPROC/NTHREAD.
const (
	// NPROC is the capacity of the process descriptor pool.
	NPROC = 64

	// NTHREAD is the capacity of the thread descriptor pool (threaded build).
	NTHREAD = 256

	// NOFILE is the width of a process's open-file table.
	NOFILE = 16

	// MLFQLevels is K, the number of MLFQ priority levels (K >= 2).
	MLFQLevels = 3

	// MLFQBoostTicks is the number of ticks between global priority boosts.
	MLFQBoostTicks = 100

	// rootPID is the init process's pid; exit() on it is a kernel panic.
	rootPID = 1

	// pageSize and threadStackPages describe the two-page user stack
	// thread_create carves out of the shared address space (spec §4.9).
	pageSize         = 4096
	threadStackPages = 2
)

// mlfqQuanta is the time-quantum granted on entering each level (spec §4.6,
// §8's worked example: "demotes from level 0 after 2 ticks, from level 1
// after 6 more, reaches level 2... after 100 total ticks" only holds for
// the sequence 2, 6, 10 -- not a uniform +2 step).
var mlfqQuanta = [MLFQLevels]int{2, 6, 10}

// mlfqQuantum returns the time-quantum granted on entering level lv.
func mlfqQuantum(lv int) int {
	return mlfqQuanta[lv]
}
