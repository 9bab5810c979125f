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

// Policy is the pluggable scheduling strategy capability set the design
// notes call for, re-architecting the original's #ifdef-selected policy
// code into an interface selected once at boot. All methods assume the
// caller holds Kernel.mu.
type Policy interface {
	// Name identifies the policy for logging/config.
	Name() string

	// PickNext returns the next thread to dispatch, or nil if none is
	// runnable. It may itself perform policy bookkeeping (e.g. MLFQ's
	// periodic boost, or the multilevel cursor advance).
	PickNext(k *Kernel) *Thread

	// OnEnqueue is called whenever a thread transitions into RUNNABLE
	// outside the scheduler loop (boot, fork, thread_create, wakeup,
	// kill) so the policy can record it in its own run-queue structure.
	// A thread that yields is handed back through OnDispatchReturn
	// instead.
	OnEnqueue(k *Kernel, t *Thread)

	// OnDequeue removes t from the policy's run-queue structure. Nothing
	// in this package calls it: a RUNNABLE thread leaves RUNNABLE only by
	// being dispatched through PickNext.
	OnDequeue(k *Kernel, t *Thread)

	// OnDispatchReturn is called immediately after a dispatched thread
	// returns control to the scheduler, with t.state already updated to
	// reflect what it did (Runnable: yielded; Sleeping/Zombie: blocked
	// or exited). Policies that track per-dispatch bookkeeping (MLFQ's
	// time quantum) update it here.
	OnDispatchReturn(k *Kernel, t *Thread)

	// SetPriority implements the setpriority(pid, priority) syscall for
	// policies that support it (MLFQ). Others return ErrNotFound.
	SetPriority(k *Kernel, t *Thread, priority int) error
}
