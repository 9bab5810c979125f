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

// Boot allocates the init process (spec §4.1's bootstrap, supplemented
// from original_source's userinit/main.c): it must be the very first
// process this Kernel ever allocates, so allocProcLocked's nextPID
// counter hands it pid 1, matching rootPID. Init has no parent; orphaned
// children are reparented to it on exit (spec §4.8).
func (k *Kernel) Boot(name string, entry func(*EntityCtx)) (*Proc, error) {
	k.lock()
	p, err := k.allocProcLocked()
	if err != nil {
		k.unlock()
		return nil, err
	}
	if p.pid != rootPID {
		k.resetProcLocked(p)
		k.unlock()
		return nil, ErrBootOrder
	}

	pg, err := k.vm.SetupKVM()
	if err != nil {
		k.resetProcLocked(p)
		k.unlock()
		return nil, err
	}
	p.pgdir = pg
	p.name = name

	th, err := k.allocThreadLocked(p, entry)
	if err != nil {
		k.vm.FreeVM(pg)
		k.resetProcLocked(p)
		k.unlock()
		return nil, err
	}
	p.mainThread = th
	k.refreshThreadCount(p)
	th.kstack = newContext("forkret")
	go runThreadBody(k, th)

	mustTransition(Embryo, Runnable)
	th.state = Runnable
	k.policy.OnEnqueue(k, th)
	k.unlock()

	return p, nil
}
