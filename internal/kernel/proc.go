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

// Proc is a process descriptor (spec §3). Its slot in Kernel.procs is fixed
// once allocated. A process is never itself dispatched by a scheduling
// policy — every process has at least one thread (its "main thread"), and
// policies select among Thread descriptors; see thread.go for why the
// MLFQ/multilevel queue-entry fields spec §3 lists on the process
// descriptor live on Thread in this implementation.
type Proc struct {
	slot int // position in Kernel.procs; stable for this descriptor's lifetime

	sz     uint64
	pgdir  PageTable
	state  State
	pid    int
	parent *Proc
	ofile  [NOFILE]File
	cwd    Inode
	name   string
	killed bool

	// Threaded-build fields (spec §3, §4.9).
	mainThread    *Thread
	runningThread *Thread
	exitingThread *Thread
	threadCount   int

	// waitChan is a process's own address, used by Wait to sleep for a
	// child (spec §4.8) and by exit to wake the parent.
	waitChan struct{ _ byte }
}

// addr returns the process's own sleep channel (its address, spec §3's
// "opaque channel" — here literally the descriptor's identity).
func (p *Proc) addr() any { return &p.waitChan }

func (p *Proc) isEvenPID() bool { return p.pid%2 == 0 }
