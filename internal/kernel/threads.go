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

// ThreadCreate implements thread_create() (spec §4.9): allocate a thread
// inside the caller's own process, grow the shared address space by two
// pages for its stack, and mark it RUNNABLE.
func (ec *EntityCtx) ThreadCreate(start func(*EntityCtx)) (int, error) {
	k := ec.k
	p := k.procOf(ec.t)

	k.lock()
	newsz, err := k.vm.AllocUVM(p.pgdir, p.sz, p.sz+threadStackPages*pageSize)
	if err != nil {
		k.unlock()
		return 0, err
	}

	th, err := k.allocThreadLocked(p, start)
	if err != nil {
		k.vm.DeallocUVM(p.pgdir, newsz, p.sz)
		k.unlock()
		return 0, err
	}
	p.sz = newsz
	k.refreshThreadCount(p)
	th.kstack = newContext("threadstart")
	go runThreadBody(k, th)

	mustTransition(Embryo, Runnable)
	th.state = Runnable
	k.policy.OnEnqueue(k, th)
	tid := th.tid
	k.unlock()

	return tid, nil
}

// ThreadExit implements thread_exit() (spec §4.9). If this is the
// process's last thread it behaves exactly like process exit
// (doProcessExit); otherwise it becomes a ZOMBIE available for
// ThreadJoin and wakes whoever is waiting on it.
func (ec *EntityCtx) ThreadExit(retval any) {
	k := ec.k
	t := ec.t

	k.lock()
	t.retval = retval
	p := k.procOf(t)
	if p.threadCount <= 1 {
		k.unlock()
		ec.doProcessExit()
		return
	}
	mustTransition(Running, Zombie)
	t.state = Zombie
	k.wakeupLocked(t.addr())
	t.kstack.parkFinal()
}

// ThreadJoin implements thread_join(tid) (spec §4.9): block until the
// named sibling thread exits, reap its descriptor, and return its retval.
func (ec *EntityCtx) ThreadJoin(tid int) (any, error) {
	k := ec.k
	p := k.procOf(ec.t)

	k.lock()
	var target *Thread
	for _, sib := range k.threadsOf(p) {
		if sib.tid == tid {
			target = sib
			break
		}
	}
	switch {
	case target == nil:
		k.unlock()
		return nil, ErrThreadNotFound
	case target == ec.t:
		k.unlock()
		return nil, ErrSelfJoin
	case target == p.exitingThread:
		k.unlock()
		return nil, ErrJoinExitDriver
	case target.willBeJoined:
		k.unlock()
		return nil, ErrDoubleJoin
	}
	target.willBeJoined = true
	k.unlock()

	for {
		k.lock()
		if target.state == Zombie {
			retval := target.retval
			k.reapThreadLocked(target)
			k.unlock()
			return retval, nil
		}
		k.unlock()
		ec.Sleep(target.addr())
	}
}
