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

import (
	"sync"

	"github.com/juchan1220/xv6sched/internal/klog"
)

// Kernel is the single root object owning every piece of global mutable
// state the original xv6 scatters across package-level variables (ptable,
// nextpid, nexttid): the entity pools, the pid/tid counters, and the
// active scheduling policy all live here, behind one exclusive lock. This
// mirrors the design note's re-architecture of "ptable, nexttid, nextpid"
// into "a single root object ... with all access behind one exclusive-lock
// guard. Counters live inside that guard; policy modules receive the guard
// as an argument."
type Kernel struct {
	mu sync.Mutex // ptable.lock: guards every field below and every descriptor

	procs   [NPROC]Proc
	threads [NTHREAD]Thread

	nextPID int
	nextTID int

	policy Policy

	vm VM

	tick      int
	lastBoost int

	log *klog.Logger
}

// New constructs a Kernel with the given policy and VM collaborator. It
// allocates no process; Boot allocates process 1 (init), the only process
// exit() refuses to reap.
func New(policy Policy, vm VM) *Kernel {
	k := &Kernel{
		policy: policy,
		vm:     vm,
		log:    klog.New("kernel"),
	}
	for i := range k.procs {
		k.procs[i].slot = i
	}
	for i := range k.threads {
		k.threads[i].slot = i
		k.threads[i].idxOnQueue = -1
	}
	return k
}

// lock/unlock name the single spin-lock spec §5 calls ptable.lock. Real
// xv6 also disables interrupts on the current CPU for the duration; this
// simulation's only "interrupt" is a concurrent goroutine trying to take
// the same mutex, which sync.Mutex already serializes, so there is nothing
// further to disable.
func (k *Kernel) lock()   { k.mu.Lock() }
func (k *Kernel) unlock() { k.mu.Unlock() }

func (k *Kernel) proc(i int) *Proc     { return &k.procs[i] }
func (k *Kernel) thread(i int) *Thread { return &k.threads[i] }

// procOf returns the process descriptor owning t.
func (k *Kernel) procOf(t *Thread) *Proc { return &k.procs[t.procIdx] }

// threadsOf computes the process->threads direction the design note
// requires be a filtered scan rather than a stored pointer list.
func (k *Kernel) threadsOf(p *Proc) []*Thread {
	var out []*Thread
	for i := range k.threads {
		th := &k.threads[i]
		if th.state != Unused && th.procIdx == p.slot {
			out = append(out, th)
		}
	}
	return out
}

// allocProcLocked scans for the first UNUSED process slot, as spec §4.1
// describes for alloc_entity. Caller must hold k.mu.
func (k *Kernel) allocProcLocked() (*Proc, error) {
	for i := range k.procs {
		p := &k.procs[i]
		if p.state == Unused {
			mustTransition(Unused, Embryo)
			*p = Proc{slot: i, state: Embryo}
			k.nextPID++
			if k.nextPID == 0 {
				k.nextPID = 1 // skip 0, spec §4.1
			}
			p.pid = k.nextPID
			return p, nil
		}
	}
	return nil, ErrNoFreeSlot
}

// allocThreadLocked scans for the first UNUSED thread slot and assigns a
// fresh monotonically-increasing tid (never 0, reserved as "absent").
func (k *Kernel) allocThreadLocked(p *Proc, entry func(*EntityCtx)) (*Thread, error) {
	for i := range k.threads {
		t := &k.threads[i]
		if t.state == Unused {
			k.nextTID++
			if k.nextTID == 0 {
				k.nextTID = 1
			}
			*t = Thread{
				slot:       i,
				procIdx:    p.slot,
				tid:        k.nextTID,
				state:      Embryo,
				idxOnQueue: -1,
				entry:      entry,
			}
			return t, nil
		}
	}
	return nil, ErrNoFreeSlot
}

// Dump returns a point-in-time snapshot of every non-UNUSED entity, the
// ps-style diagnostic supplemented from original_source's procdump
// (SPEC_FULL.md §4).
type DumpEntry struct {
	PID, TID   int
	Name       string
	State      string
	QueueLevel int
	Priority   int
}

func (k *Kernel) Dump() []DumpEntry {
	k.lock()
	defer k.unlock()
	var out []DumpEntry
	for i := range k.threads {
		t := &k.threads[i]
		if t.state == Unused {
			continue
		}
		p := k.procOf(t)
		out = append(out, DumpEntry{
			PID:        p.pid,
			TID:        t.tid,
			Name:       p.name,
			State:      t.state.String(),
			QueueLevel: t.queueLevel,
			Priority:   t.priority,
		})
	}
	return out
}

func (k *Kernel) logf(format string, args ...any) {
	k.log.Debugf(format, args...)
}
