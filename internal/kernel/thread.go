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

package kernel

// Thread is a thread descriptor (spec §3) and — in this implementation —
// the unit the scheduler actually dispatches. spec §2's glossary describes
// two alternative builds ("a process in the non-threaded build, a thread in
// the threaded build"); this repository unifies them by giving every
// process exactly one thread by default (its "main thread", created
// alongside the process in Fork/Boot) and letting thread_create add
// more. A process that never calls thread_create behaves exactly like the
// spec's non-threaded build: one thread, one schedulable entity, one pid.
// This also satisfies spec §5's requirement that "userspace threads of the
// same process may run on different CPUs simultaneously", which a
// process-granularity dispatch loop could not express. See DESIGN.md for
// the full rationale.
//
// Thread refers to its owning process by slot index, not by pointer — the
// process->threads direction is recovered by a filtered scan
// (Kernel.threadsOf), per the design note re-architecting the original's
// two-way raw pointers into one stable index plus a computed reverse
// lookup.
type Thread struct {
	slot int // position in Kernel.threads

	kstack  *Context
	ip      string
	state   State
	procIdx int // index into Kernel.procs of the owning process
	tid     int

	retval       any
	willBeJoined bool

	entry func(t *EntityCtx)

	// chanAddr is the channel this thread is currently blocked on, or nil
	// when not SLEEPING (spec §3's invariant: SLEEPING <=> non-null
	// channel).
	chanAddr any

	// identity is never read; its address is this thread's own channel,
	// the stable rendezvous point thread_join sleeps on (spec §4.9).
	identity struct{ _ byte }

	// MLFQ/multilevel queue-entry fields (spec §3's "Priority-queue
	// entry", §4.5-§4.6). Meaningless under the Round-Robin policy.
	queueLevel    int
	remainTQ      int
	priority      int
	idxOnQueue    int // -1 when not stored in any heap
	needResetLvTQ bool
}

// addr returns this thread's own address, the channel other operations
// (thread_join, exit's sibling teardown) rendezvous on.
func (t *Thread) addr() any { return &t.identity }
