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

import "runtime"

// Context is the saved-register slot the real xv6 swtch() manipulates: on a
// bare machine it is six callee-saved words and a stack pointer. Go gives us
// no portable way to swap raw stacks, so — per the design note that the raw
// context switch is "unavoidable at the ABI boundary; isolate in a single
// small module with a tested contract" — this package models the same
// contract (exactly one of {scheduler, entity} runs at a time; the entity
// resumes exactly where it called into sched()) with a pair of rendezvous
// channels per entity, the way the pack's toy-scheduler example models a
// goroutine's pause/resume with a single blockChan.
//
// ip is purely diagnostic: the real swtch resumes at a saved instruction
// pointer, and the closest useful analogue here is a label identifying which
// kernel entry point (forkret, threadstart, ...) the entity is parked in.
type Context struct {
	resume chan struct{}
	paused chan struct{}
	ip     string
}

func newContext(ip string) *Context {
	return &Context{
		resume: make(chan struct{}),
		paused: make(chan struct{}),
		ip:     ip,
	}
}

// parkSelf is the entity side of swtch (sched.go's package-level swtch is
// the scheduler side): called from inside the entity's own goroutine when
// it has changed its own state to something other than RUNNING and is
// ready to give up the CPU. It blocks until the scheduler swtches back
// into this context.
func (c *Context) parkSelf() {
	c.paused <- struct{}{}
	<-c.resume
}

// parkFinal is parkSelf's one-way variant, used by Exit/ThreadExit: the
// entity's goroutine is ending, so it signals the scheduler it has paused
// and then ends the goroutine with runtime.Goexit, so it never returns to
// its caller. A real swtch into a ZOMBIE never happens either — the
// descriptor is only reused after Wait or ThreadJoin resets it to UNUSED
// and a fresh allocThreadLocked gives it a brand new Context.
func (c *Context) parkFinal() {
	c.paused <- struct{}{}
	runtime.Goexit()
}
