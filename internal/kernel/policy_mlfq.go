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

import "container/heap"

// MLFQ is the Multi-Level Feedback Queue policy (spec §4.6): K priority
// levels, each a max-heap keyed by Thread.priority, growing time quanta,
// and a periodic global boost. Heap mechanics live in heap.go; this file
// is the level bank plus the dispatch/requeue/boost state machine.
type MLFQ struct {
	levels [MLFQLevels]levelHeap
}

func NewMLFQ() *MLFQ { return &MLFQ{} }

func (*MLFQ) Name() string { return "mlfq" }

// PickNext implements spec §4.6's Selection rule: boost first if due, then
// dispatch the top of the first non-empty level, decrementing its quantum
// (spec: "Every dispatch decrements it by one").
func (m *MLFQ) PickNext(k *Kernel) *Thread {
	if k.tick-k.lastBoost >= MLFQBoostTicks {
		m.boost(k)
		k.lastBoost = k.tick
	}
	for lv := 0; lv < MLFQLevels; lv++ {
		if t := m.levels[lv].extractTop(); t != nil {
			t.remainTQ--
			return t
		}
	}
	return nil
}

// OnEnqueue reinserts a thread that just became RUNNABLE (fork, wakeup,
// kill) into its recorded level, unless that level is the "aged out at
// the bottom" sentinel (spec §4.7), in which case it waits for the next
// boost, matching the original's queue_level == K guard.
func (m *MLFQ) OnEnqueue(k *Kernel, t *Thread) {
	if t.idxOnQueue != -1 {
		return // already queued; avoid a double push
	}
	if t.queueLevel >= MLFQLevels {
		return
	}
	if t.remainTQ <= 0 {
		t.remainTQ = mlfqQuantum(t.queueLevel)
	}
	m.levels[t.queueLevel].push(t)
}

func (m *MLFQ) OnDequeue(k *Kernel, t *Thread) {
	if t.idxOnQueue == -1 || t.queueLevel >= MLFQLevels {
		return
	}
	m.levels[t.queueLevel].pop(t)
}

// OnDispatchReturn applies spec §4.6's post-dispatch rule: a thread that
// went to SLEEPING/ZOMBIE is already out of every heap (it was extracted
// at dispatch time and sleep/exit don't put it back); otherwise it demotes
// on quantum exhaustion, resets to level 0 if it voluntarily yielded or
// slept "by self" (spec §4.7's reset flag), or is pushed back unchanged.
func (m *MLFQ) OnDispatchReturn(k *Kernel, t *Thread) {
	if t.state != Runnable {
		return
	}
	if t.remainTQ <= 0 {
		next := t.queueLevel + 1
		if next < MLFQLevels {
			t.queueLevel = next
			t.remainTQ = mlfqQuantum(next)
			m.levels[next].push(t)
		} else {
			t.queueLevel = MLFQLevels // aged out; unqueued until next boost
			t.idxOnQueue = -1
		}
		return
	}
	if t.needResetLvTQ {
		t.queueLevel = 0
		t.remainTQ = mlfqQuantum(0)
		t.needResetLvTQ = false
	}
	m.levels[t.queueLevel].push(t)
}

// SetPriority implements setpriority(pid, k) (spec §4.6). The caller
// (Kernel.SetPriority) has already verified parentage; this just applies
// the key change, sifting only if the target is currently stored in a
// heap — preserving the open question's idx_on_queue != -1 guard as-is
// for RUNNING/SLEEPING targets, which are not on any heap.
func (m *MLFQ) SetPriority(k *Kernel, t *Thread, priority int) error {
	if t.idxOnQueue != -1 && t.queueLevel < MLFQLevels {
		m.levels[t.queueLevel].changePriority(t, priority)
	} else {
		t.priority = priority
	}
	return nil
}

// boost clears every level and resets every currently-RUNNABLE thread to
// level 0 with a fresh quantum (spec §4.6), defeating starvation.
func (m *MLFQ) boost(k *Kernel) {
	for lv := range m.levels {
		m.levels[lv].clear()
	}
	for i := range k.threads {
		t := &k.threads[i]
		if t.state != Runnable {
			continue
		}
		t.queueLevel = 0
		t.remainTQ = mlfqQuantum(0)
		t.needResetLvTQ = false
		t.idxOnQueue = len(m.levels[0].items)
		m.levels[0].items = append(m.levels[0].items, t)
	}
	heap.Init(&m.levels[0])
}
