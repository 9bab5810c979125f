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

// Exit implements exit() (spec §4.8, §4.9): it is the generic entry point
// whichever thread calls it, whether or not the process ever created
// additional threads. doProcessExit does the actual teardown; a
// single-threaded process simply finds no siblings to join.
func (ec *EntityCtx) Exit() {
	ec.doProcessExit()
}

// doProcessExit is shared by Exit and ThreadExit's last-thread fallthrough
// (spec §4.9: "thread_exit on a process's last remaining thread behaves as
// process exit"). The caller must not be holding k.mu.
func (ec *EntityCtx) doProcessExit() {
	k := ec.k
	t := ec.t
	p := k.procOf(t)
	if p.pid == rootPID {
		panic("kernel: init process exiting")
	}

	k.lock()
	if p.exitingThread == nil {
		p.exitingThread = t
		p.killed = true
		// Wake anything blocked joining one of this process's threads so
		// mutual waits between siblings can't deadlock against teardown.
		for _, sib := range k.threadsOf(p) {
			k.wakeupLocked(sib.addr())
		}
	}
	k.unlock()

	// Join every other thread until only the exit driver remains (spec
	// §4.9's forced teardown loop). Re-scanning each iteration tolerates a
	// thread_create racing in concurrently, converging once it stops.
	for {
		k.lock()
		var target *Thread
		for _, sib := range k.threadsOf(p) {
			if sib != t {
				target = sib
				break
			}
		}
		k.unlock()
		if target == nil {
			break
		}
		ec.forceJoin(target)
	}

	k.lock()
	for i := range p.ofile {
		if p.ofile[i] != nil {
			p.ofile[i].Close()
			p.ofile[i] = nil
		}
	}
	p.cwd = nil

	if init := k.findInitLocked(); init != nil {
		for i := range k.procs {
			c := &k.procs[i]
			if c.state != Unused && c.parent == p {
				c.parent = init
			}
		}
	}
	if p.parent != nil {
		k.wakeupLocked(p.parent.addr())
	}

	mustTransition(Running, Zombie)
	t.state = Zombie
	p.state = Zombie
	t.kstack.parkFinal()
}

// forceJoin reaps target unconditionally, bypassing the voluntary
// ThreadJoin preconditions (self-join/exit-driver checks): exit's
// teardown loop owns every sibling regardless of whether anyone else
// already claimed it as a joiner. If a voluntary ThreadJoin already
// claimed this target, forceJoin just waits for that joiner to finish
// reaping it instead of double-reaping.
func (ec *EntityCtx) forceJoin(target *Thread) {
	k := ec.k
	k.lock()
	if target.willBeJoined {
		k.unlock()
		for {
			k.lock()
			gone := target.state == Unused
			k.unlock()
			if gone {
				return
			}
			ec.Sleep(target.addr())
		}
	}
	target.willBeJoined = true
	k.unlock()

	for {
		k.lock()
		if target.state == Zombie {
			k.reapThreadLocked(target)
			k.unlock()
			return
		}
		k.unlock()
		ec.Sleep(target.addr())
	}
}

// reapThreadLocked retires a ZOMBIE thread descriptor to UNUSED and
// refreshes its process's thread_count. Caller must hold k.mu.
func (k *Kernel) reapThreadLocked(t *Thread) {
	p := k.procOf(t)
	mustTransition(Zombie, Unused)
	k.resetThreadLocked(t)
	k.refreshThreadCount(p)
}

// Wait implements wait() (spec §4.8): sleep until some child becomes a
// ZOMBIE, then reap it and return its pid. Returns ErrNoChild if the
// caller has no children at all, ErrKilled if the caller was killed while
// waiting.
func (ec *EntityCtx) Wait() (int, error) {
	k := ec.k
	p := k.procOf(ec.t)
	for {
		k.lock()
		found := false
		for i := range k.procs {
			c := &k.procs[i]
			if c.state == Unused || c.parent != p {
				continue
			}
			found = true
			if c.state == Zombie {
				pid := c.pid
				k.reapProcLocked(c)
				k.unlock()
				return pid, nil
			}
		}
		if !found {
			k.unlock()
			return -1, ErrNoChild
		}
		if p.killed {
			k.unlock()
			return -1, ErrKilled
		}
		k.unlock()
		ec.Sleep(p.addr())
	}
}

// reapProcLocked retires a ZOMBIE process to UNUSED: its address space is
// freed and its one remaining thread descriptor (the exit driver, already
// ZOMBIE — every other sibling was joined during exit's teardown) is
// retired alongside it. Caller must hold k.mu.
func (k *Kernel) reapProcLocked(p *Proc) {
	for _, t := range k.threadsOf(p) {
		mustTransition(Zombie, Unused)
		k.resetThreadLocked(t)
	}
	k.vm.FreeVM(p.pgdir)
	k.resetProcLocked(p)
}
