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

func TestRoundRobinPicksFirstRunnableBySlot(t *testing.T) {
	k := New(NewRoundRobin(), NewNoopVM())
	k.threads[5].state = Runnable
	k.threads[5].slot = 5
	k.threads[10].state = Runnable
	k.threads[10].slot = 10

	got := k.policy.PickNext(k)
	if got == nil || got.slot != 5 {
		t.Fatalf("PickNext = %v, want thread at slot 5", got)
	}
}

func TestRoundRobinReturnsNilWhenNothingRunnable(t *testing.T) {
	k := New(NewRoundRobin(), NewNoopVM())
	if got := k.policy.PickNext(k); got != nil {
		t.Fatalf("PickNext on idle kernel = %v, want nil", got)
	}
}

func TestRoundRobinIgnoresNonRunnableStates(t *testing.T) {
	k := New(NewRoundRobin(), NewNoopVM())
	k.threads[0].state = Sleeping
	k.threads[1].state = Running
	k.threads[2].state = Zombie
	k.threads[3].state = Runnable
	k.threads[3].slot = 3

	got := k.policy.PickNext(k)
	if got == nil || got.slot != 3 {
		t.Fatalf("PickNext = %v, want thread at slot 3", got)
	}
}
