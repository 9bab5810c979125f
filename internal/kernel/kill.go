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

// Kill implements kill(pid) (spec §4.10): mark the target process killed
// and wake any of its threads that are SLEEPING, so they observe the
// killed flag and unwind instead of blocking forever. RUNNING/RUNNABLE
// threads pick up the flag the next time they check Killed().
func (k *Kernel) Kill(pid int) error {
	k.lock()
	defer k.unlock()

	p := k.findProcByPIDLocked(pid)
	if p == nil {
		return ErrNotFound
	}
	p.killed = true
	for _, t := range k.threadsOf(p) {
		if t.state != Sleeping {
			continue
		}
		mustTransition(Sleeping, Runnable)
		t.state = Runnable
		k.policy.OnEnqueue(k, t)
	}
	return nil
}

// SetPriority implements setpriority(pid, priority) (spec §4.6): the
// caller may only reprioritize its own children, applied to every one of
// the target's threads (ordinarily just its main thread).
func (ec *EntityCtx) SetPriority(pid int, priority int) error {
	k := ec.k
	caller := k.procOf(ec.t)

	k.lock()
	defer k.unlock()

	target := k.findProcByPIDLocked(pid)
	if target == nil {
		return ErrNotFound
	}
	if target.parent != caller {
		return ErrNotChild
	}
	for _, t := range k.threadsOf(target) {
		if err := k.policy.SetPriority(k, t, priority); err != nil {
			return err
		}
	}
	return nil
}
