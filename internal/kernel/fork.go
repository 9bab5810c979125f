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

// Fork implements fork() (spec §4.8): allocate a child process and its main
// thread, duplicate the caller's address space and open files, and mark the
// child RUNNABLE. Go has no way to duplicate a closure's current execution
// point the way copyuvm duplicates a page table, so the caller supplies
// childBody directly — the child "resumes" by running childBody from its
// start rather than from the return address of the fork call, a documented
// simplification (see DESIGN.md).
func (ec *EntityCtx) Fork(name string, childBody func(*EntityCtx)) (*Proc, error) {
	k := ec.k
	parent := k.procOf(ec.t)

	k.lock()
	child, err := k.allocProcLocked()
	if err != nil {
		k.unlock()
		return nil, err
	}

	pg, err := k.vm.CopyUVM(parent.pgdir, parent.sz)
	if err != nil {
		k.resetProcLocked(child)
		k.unlock()
		return nil, err
	}
	child.pgdir = pg
	child.sz = parent.sz
	child.parent = parent
	child.name = name
	for i := range parent.ofile {
		if parent.ofile[i] != nil {
			child.ofile[i] = parent.ofile[i].Dup()
		}
	}
	child.cwd = parent.cwd

	th, err := k.allocThreadLocked(child, childBody)
	if err != nil {
		k.vm.FreeVM(pg)
		k.resetProcLocked(child)
		k.unlock()
		return nil, err
	}
	child.mainThread = th
	k.refreshThreadCount(child)
	th.kstack = newContext("forkret")
	go runThreadBody(k, th)

	mustTransition(Embryo, Runnable)
	th.state = Runnable
	k.policy.OnEnqueue(k, th)
	k.unlock()

	return child, nil
}
