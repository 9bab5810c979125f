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

// resetProcLocked returns p to UNUSED directly, bypassing the normal
// transition graph. It is used only to unwind a partially-allocated
// process on a later allocation failure (spec §4.1: "Failure to find a
// slot or allocate a stack leaves the slot UNUSED and returns null") —
// not a reachable state change for a fully-published process, which must
// go through ZOMBIE first.
func (k *Kernel) resetProcLocked(p *Proc) {
	idx := p.slot
	*p = Proc{slot: idx, state: Unused}
}

func (k *Kernel) resetThreadLocked(t *Thread) {
	idx := t.slot
	*t = Thread{slot: idx, state: Unused, idxOnQueue: -1}
}

// refreshThreadCount recomputes p.thread_count from the table, keeping the
// stored field (spec §3) equal to "the count of non-UNUSED threads whose
// process back-pointer is this process" by construction rather than by
// hand-matched increments/decrements at each call site.
func (k *Kernel) refreshThreadCount(p *Proc) {
	p.threadCount = len(k.threadsOf(p))
}

// findInitLocked returns the init process (pid 1), or nil if it hasn't
// booted yet.
func (k *Kernel) findInitLocked() *Proc {
	for i := range k.procs {
		if k.procs[i].state != Unused && k.procs[i].pid == rootPID {
			return &k.procs[i]
		}
	}
	return nil
}

func (k *Kernel) findProcByPIDLocked(pid int) *Proc {
	for i := range k.procs {
		if k.procs[i].state != Unused && k.procs[i].pid == pid {
			return &k.procs[i]
		}
	}
	return nil
}

// runThreadBody is the goroutine every thread descriptor runs in: it parks
// immediately on the thread's own context (nothing runs until the
// scheduler's first swtch into it — the "return-from-fork"/"thread start"
// trampoline spec §4.1 describes), then executes the caller-supplied body.
// A body that returns without calling ThreadExit is treated as having
// called thread_exit(0) (spec §8's round-trip property).
func runThreadBody(k *Kernel, t *Thread) {
	<-t.kstack.resume
	ec := &EntityCtx{k: k, t: t}
	if t.entry != nil {
		t.entry(ec)
	}
	ec.ThreadExit(0)
}
