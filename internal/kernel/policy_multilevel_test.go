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

import "testing"

func setupMultilevelProc(k *Kernel, threadIdx, procIdx, pid int) {
	k.procs[procIdx].slot = procIdx
	k.procs[procIdx].pid = pid
	k.procs[procIdx].state = Runnable // not a real process state, only pid/slot matter here
	k.threads[threadIdx].slot = threadIdx
	k.threads[threadIdx].procIdx = procIdx
	k.threads[threadIdx].state = Runnable
}

func TestMultilevelPrefersEvenPidOverOdd(t *testing.T) {
	k := New(NewMultilevel(), NewNoopVM())
	setupMultilevelProc(k, 0, 0, 3) // odd
	setupMultilevelProc(k, 1, 1, 4) // even

	got := k.policy.PickNext(k)
	if got == nil || got.slot != 1 {
		t.Fatalf("PickNext = %v, want the even-pid thread (slot 1)", got)
	}
}

func TestMultilevelEvenPidsRoundRobinWithPersistentCursor(t *testing.T) {
	k := New(NewMultilevel(), NewNoopVM())
	setupMultilevelProc(k, 0, 0, 2)
	setupMultilevelProc(k, 1, 1, 4)

	first := k.policy.PickNext(k)
	second := k.policy.PickNext(k)
	if first == second {
		t.Fatalf("two even-pid threads round-robin, want alternation; got %v then %v", first.slot, second.slot)
	}
	third := k.policy.PickNext(k)
	if third != first {
		t.Fatalf("cursor should have wrapped back to the first thread; got slot %d", third.slot)
	}
}

func TestMultilevelOddPidsAreFCFSByLowestPid(t *testing.T) {
	k := New(NewMultilevel(), NewNoopVM())
	setupMultilevelProc(k, 0, 0, 7)
	setupMultilevelProc(k, 1, 1, 3)
	setupMultilevelProc(k, 2, 2, 9)

	got := k.policy.PickNext(k)
	if got == nil || got.slot != 1 {
		t.Fatalf("PickNext = %v, want thread owned by pid 3 (lowest odd pid)", got)
	}
	// FCFS is re-evaluated fresh each call, not advanced like the RR cursor.
	again := k.policy.PickNext(k)
	if again == nil || again.slot != 1 {
		t.Fatalf("second PickNext = %v, want the same lowest-pid thread again", again)
	}
}

func TestMultilevelSetPriorityUnsupported(t *testing.T) {
	m := NewMultilevel()
	if err := m.SetPriority(nil, nil, 5); err != ErrNotFound {
		t.Errorf("SetPriority = %v, want ErrNotFound", err)
	}
}
