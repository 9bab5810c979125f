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

// Syscall is the trap-return-adjacent surface spec §6 lists: it wraps the
// entity-level operations in the -1/0-sentinel calling convention real
// syscalls use, translating Go errors into the integer results a trap
// frame would carry back to user mode. Entity bodies (tests, the demo
// CLI's scripted "programs") call through here rather than the raw
// EntityCtx methods when they want syscall semantics instead of Go error
// values.
type Syscall struct {
	ec *EntityCtx
}

func (ec *EntityCtx) Syscalls() *Syscall { return &Syscall{ec: ec} }

// Fork returns the child's pid, or -1 on failure.
func (s *Syscall) Fork(name string, childBody func(*EntityCtx)) int {
	child, err := s.ec.Fork(name, childBody)
	if err != nil {
		return -1
	}
	return child.pid
}

// Exit never returns.
func (s *Syscall) Exit() {
	s.ec.Exit()
}

// Wait returns the reaped child's pid, or -1 if the caller has no
// children or was killed.
func (s *Syscall) Wait() int {
	pid, err := s.ec.Wait()
	if err != nil {
		return -1
	}
	return pid
}

// Yield has no return value; it is always successful.
func (s *Syscall) Yield() { s.ec.Yield() }

// Kill returns 0 on success, -1 if pid does not exist.
func (s *Syscall) Kill(pid int) int {
	if err := s.ec.k.Kill(pid); err != nil {
		return -1
	}
	return 0
}

// SetPriority returns 0 on success, -1 if pid is not a child of the
// caller or the active policy does not support priorities.
func (s *Syscall) SetPriority(pid, priority int) int {
	if err := s.ec.SetPriority(pid, priority); err != nil {
		return -1
	}
	return 0
}

// ThreadCreate returns the new thread's tid, or -1 on failure.
func (s *Syscall) ThreadCreate(start func(*EntityCtx)) int {
	tid, err := s.ec.ThreadCreate(start)
	if err != nil {
		return -1
	}
	return tid
}

// ThreadExit never returns.
func (s *Syscall) ThreadExit(retval any) { s.ec.ThreadExit(retval) }

// ThreadJoin returns the joined thread's retval, or nil with ok=false on
// any precondition failure (self-join, double-join, exit-driver, unknown
// tid) — spec §4.9 has these all return -1 uniformly, but retval is
// caller-defined `any` here rather than a register width, so we surface
// the distinction instead of flattening it into a sentinel int.
func (s *Syscall) ThreadJoin(tid int) (retval any, ok bool) {
	v, err := s.ec.ThreadJoin(tid)
	if err != nil {
		return nil, false
	}
	return v, true
}
