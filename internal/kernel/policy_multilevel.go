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

// Multilevel splits the thread table into two logical queues keyed by the
// owning process's pid parity (spec §4.5): even pids round-robin with a
// cursor that persists across invocations; odd pids are FCFS, dispatched
// by lowest pid, reconsidered fresh on every decision, and only when no
// even-pid thread is runnable.
type Multilevel struct {
	cursor int // RR scan position, persists across PickNext calls
}

func NewMultilevel() *Multilevel { return &Multilevel{} }

func (*Multilevel) Name() string { return "multilevel-fcfs-rr" }

func (m *Multilevel) PickNext(k *Kernel) *Thread {
	n := len(k.threads)
	if n == 0 {
		return nil
	}
	var fcfsTarget *Thread
	for step := 0; step < n; step++ {
		idx := (m.cursor + step) % n
		t := &k.threads[idx]
		if t.state != Runnable {
			continue
		}
		pid := k.procOf(t).pid
		if pid%2 == 0 {
			m.cursor = (idx + 1) % n
			return t
		}
		if fcfsTarget == nil || pid < k.procOf(fcfsTarget).pid {
			fcfsTarget = t
		}
	}
	return fcfsTarget
}

func (*Multilevel) OnEnqueue(k *Kernel, t *Thread)        {}
func (*Multilevel) OnDequeue(k *Kernel, t *Thread)        {}
func (*Multilevel) OnDispatchReturn(k *Kernel, t *Thread) {}

func (*Multilevel) SetPriority(k *Kernel, t *Thread, priority int) error {
	return ErrNotFound
}
