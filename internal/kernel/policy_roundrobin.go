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

// RoundRobin is the baseline policy (spec §4.4): a linear scan of the
// thread table, first RUNNABLE wins. Like one pass of xv6's scheduler
// loop, each scan resumes at the slot after the last dispatched thread and
// wraps to slot 0 past the end of the table, so a thread that yields lets
// every other RUNNABLE thread run before it is picked again — "fairness is
// approximate; starvation is prevented only by the existence of the
// timer-driven yield."
type RoundRobin struct {
	cursor int // slot the next scan starts at
}

func NewRoundRobin() *RoundRobin { return &RoundRobin{} }

func (*RoundRobin) Name() string { return "round-robin" }

func (r *RoundRobin) PickNext(k *Kernel) *Thread {
	n := len(k.threads)
	for step := 0; step < n; step++ {
		idx := (r.cursor + step) % n
		t := &k.threads[idx]
		if t.state == Runnable {
			r.cursor = (idx + 1) % n
			return t
		}
	}
	return nil
}

func (*RoundRobin) OnEnqueue(k *Kernel, t *Thread)        {}
func (*RoundRobin) OnDequeue(k *Kernel, t *Thread)        {}
func (*RoundRobin) OnDispatchReturn(k *Kernel, t *Thread) {}

func (*RoundRobin) SetPriority(k *Kernel, t *Thread, priority int) error {
	return ErrNotFound
}
