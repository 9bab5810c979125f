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

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// CPU models one of the machine's processors: the per-CPU scheduler loop of
// spec §4.3 plus whichever thread it currently has dispatched.
type CPU struct {
	id      int
	current *Thread
}

// EntityCtx is handed to an entity's body function (the simulated kernel-mode
// code running "as" a process or thread) so it can invoke the cooperative
// primitives spec §4.7 describes: sleep, wakeup, yield. It is the one seam
// through which entity bodies touch the kernel, standing in for the
// syscall-entry boundary a real trap handler would provide.
type EntityCtx struct {
	k *Kernel
	t *Thread
}

// PID returns the pid of the process owning this execution context.
func (ec *EntityCtx) PID() int { return ec.k.procOf(ec.t).pid }

// TID returns this thread's tid.
func (ec *EntityCtx) TID() int { return ec.t.tid }

// Killed reports whether this thread's process has been marked killed.
// A real trap-return path would check this on every return to user mode
// (spec §6); entity bodies that want cooperative kill-responsiveness poll
// it explicitly between units of work.
func (ec *EntityCtx) Killed() bool {
	ec.k.lock()
	defer ec.k.unlock()
	return ec.k.procOf(ec.t).killed
}

// Yield gives up the CPU voluntarily (spec §4.7): the current thread goes
// RUNNABLE and parks until the scheduler dispatches it again.
func (ec *EntityCtx) Yield() {
	ec.yieldImpl(false)
}

// YieldBySelf is yield's MLFQ "by_self" variant (spec §4.7): it additionally
// sets the reset-level/TQ flag to discourage gaming quantum expiry by
// relinquishing the CPU right before it would have demoted anyway.
func (ec *EntityCtx) YieldBySelf() {
	ec.yieldImpl(true)
}

func (ec *EntityCtx) yieldImpl(bySelf bool) {
	k := ec.k
	k.lock()
	t := ec.t
	mustTransition(Running, Runnable)
	t.state = Runnable
	if bySelf {
		t.needResetLvTQ = true
	}
	t.kstack.parkSelf()
}

// Sleep blocks the current thread on chanAddr until a matching Wakeup or
// Kill (spec §4.7).
func (ec *EntityCtx) Sleep(chanAddr any) {
	ec.sleepImpl(chanAddr, nil, false)
}

// SleepBySelf is sleep's MLFQ "by_self" variant; see YieldBySelf.
func (ec *EntityCtx) SleepBySelf(chanAddr any) {
	ec.sleepImpl(chanAddr, nil, true)
}

// sleepImpl is also used internally by SleepLock.Acquire, which passes
// preRelease: a thunk that drops its own raw spin-mutex only after the
// table lock is held, implementing the "acquire table lock before
// releasing lk" ordering spec §4.7/§5 require for miss-free wakeups.
func (ec *EntityCtx) sleepImpl(chanAddr any, preRelease func(), bySelf bool) {
	if chanAddr == nil {
		panic("kernel: sleep on nil channel")
	}
	k := ec.k
	k.lock()
	if preRelease != nil {
		preRelease()
	}
	t := ec.t
	mustTransition(Running, Sleeping)
	t.state = Sleeping
	t.chanAddr = chanAddr
	if bySelf {
		t.needResetLvTQ = true
	}
	t.kstack.parkSelf()
	// Resumed (by wakeup/kill): clear the channel.
	k.lock()
	t.chanAddr = nil
	k.unlock()
}

// wakeupLocked transitions every SLEEPING thread waiting on chanAddr to
// RUNNABLE (spec §4.7). Caller must hold k.mu.
func (k *Kernel) wakeupLocked(chanAddr any) {
	for i := range k.threads {
		t := &k.threads[i]
		if t.state == Sleeping && t.chanAddr == chanAddr {
			mustTransition(Sleeping, Runnable)
			t.state = Runnable
			k.policy.OnEnqueue(k, t)
		}
	}
}

// Wakeup wakes every thread sleeping on chanAddr.
func (k *Kernel) Wakeup(chanAddr any) {
	k.lock()
	defer k.unlock()
	k.wakeupLocked(chanAddr)
}

// Tick advances the global tick counter the MLFQ boost rule watches (spec
// §4.6). A real kernel calls this from the timer-interrupt handler; there
// is no real timer here, and only the tests call it, so the MLFQ boost
// fires only where a caller advances the clock.
func (k *Kernel) Tick() {
	k.lock()
	k.tick++
	k.unlock()
}

// RunOne drives a single iteration of the per-CPU scheduler loop on cpu,
// for tests and the demo CLI's single-threaded step mode. It returns
// false if nothing was runnable.
func (k *Kernel) RunOne(cpu *CPU) bool { return k.runOne(cpu) }

// runOne performs one iteration of the per-CPU scheduler loop (spec §4.3).
// It returns false if nothing was runnable, so callers can back off instead
// of spinning.
func (k *Kernel) runOne(cpu *CPU) bool {
	// Step 1: "enables interrupts (briefly, to absorb pending IPIs)" has
	// no analogue in this simulation beyond documenting the step.
	k.lock() // step 2
	t := k.policy.PickNext(k) // step 3
	if t == nil {
		k.unlock()
		return false
	}
	cpu.current = t
	p := k.procOf(t)
	k.vm.SwitchUVM(p)
	mustTransition(Runnable, Running)
	t.state = Running
	p.runningThread = t
	k.logf("cpu%d dispatch pid=%d tid=%d lv=%d prio=%d", cpu.id, p.pid, t.tid, t.queueLevel, t.priority)
	swtch(k, t.kstack) // step 4: swtch out/in discipline; unlocks while t runs, relocks before returning here
	cpu.current = nil
	k.policy.OnDispatchReturn(k, t)
	k.unlock() // step 5
	return true
}

// swtch is the scheduler-side half of the context switch primitive
// (spec §4.2): it resumes new's goroutine and releases k.mu for the
// duration new runs "unlocked" kernel/user code, reacquiring only once new
// calls back into Yield/Sleep/Exit and parks itself again — at which point
// k.mu is already held again, satisfying the "held at the moment of swtch
// back into it" invariant.
func swtch(k *Kernel, new *Context) {
	new.resume <- struct{}{}
	k.mu.Unlock()
	<-new.paused
}

// RunCPUs starts n per-CPU scheduler loops as goroutines, gated by a
// weighted semaphore sized to n — grounded in the pack's sclevine-xsum
// pqueue.go pattern of a NumCPU-weighted semaphore bounding concurrent
// goroutines, here modeling a fixed-core machine rather than an unbounded
// worker pool. It returns a stop function; calling it cancels every loop.
func (k *Kernel) RunCPUs(n int) (stop func()) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	sem := semaphore.NewWeighted(int64(n))
	ctx, cancel := context.WithCancel(context.Background())
	for i := 0; i < n; i++ {
		cpu := &CPU{id: i}
		go func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}
			defer sem.Release(1)
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}
				k.runOne(cpu)
			}
		}()
	}
	return cancel
}
