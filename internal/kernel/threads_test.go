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

// newTestProc allocates a bare process with one thread directly through
// the pool allocators, bypassing Boot/Fork's address-space setup — the
// precondition checks this file exercises (ThreadJoin's early-return
// branches) never touch the VM collaborator or run any entity goroutine,
// so there is nothing to simulate beyond the descriptor bookkeeping.
func newTestProc(t *testing.T, k *Kernel) (*Proc, *Thread) {
	t.Helper()
	k.lock()
	defer k.unlock()
	p, err := k.allocProcLocked()
	if err != nil {
		t.Fatalf("allocProcLocked: %v", err)
	}
	main, err := k.allocThreadLocked(p, nil)
	if err != nil {
		t.Fatalf("allocThreadLocked: %v", err)
	}
	p.mainThread = main
	k.refreshThreadCount(p)
	mustTransition(Embryo, Runnable)
	main.state = Runnable
	return p, main
}

// addTestThread allocates one more thread in p, in the Runnable state, as
// ThreadCreate would, without the address-space growth step.
func addTestThread(t *testing.T, k *Kernel, p *Proc) *Thread {
	t.Helper()
	k.lock()
	defer k.unlock()
	th, err := k.allocThreadLocked(p, nil)
	if err != nil {
		t.Fatalf("allocThreadLocked: %v", err)
	}
	k.refreshThreadCount(p)
	mustTransition(Embryo, Runnable)
	th.state = Runnable
	return th
}

func TestThreadJoinRejectsDoubleJoin(t *testing.T) {
	k := New(NewRoundRobin(), NewNoopVM())
	p, main := newTestProc(t, k)
	target := addTestThread(t, k, p)
	target.willBeJoined = true

	ec := &EntityCtx{k: k, t: main}
	if _, err := ec.ThreadJoin(target.tid); err != ErrDoubleJoin {
		t.Errorf("ThreadJoin on an already-claimed target returned %v, want ErrDoubleJoin", err)
	}
}

func TestThreadJoinRejectsJoiningTheExitDriver(t *testing.T) {
	k := New(NewRoundRobin(), NewNoopVM())
	p, main := newTestProc(t, k)
	target := addTestThread(t, k, p)
	p.exitingThread = target

	ec := &EntityCtx{k: k, t: main}
	if _, err := ec.ThreadJoin(target.tid); err != ErrJoinExitDriver {
		t.Errorf("ThreadJoin on the exit driver returned %v, want ErrJoinExitDriver", err)
	}
}

func TestThreadJoinRejectsTargetInAnotherProcess(t *testing.T) {
	k := New(NewRoundRobin(), NewNoopVM())
	_, mainA := newTestProc(t, k)
	_, mainB := newTestProc(t, k)

	ec := &EntityCtx{k: k, t: mainA}
	if _, err := ec.ThreadJoin(mainB.tid); err != ErrThreadNotFound {
		t.Errorf("ThreadJoin across processes returned %v, want ErrThreadNotFound", err)
	}
}
