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

import "sync"

// SleepLock is a condition-variable-style lock built on top of Sleep/Wakeup
// (spec §5): acquiring it may suspend the caller, unlike the spin-only
// ptable.lock. It guards blocking resources outside the scheduling core
// proper — in this repository, the user table (internal/usertable).
//
// The implementation mirrors xv6's acquiresleep/releasesleep: a small raw
// spin-mutex (`raw`) protects the `locked` flag itself; Sleep is called
// while holding `raw`, which is released only after the table lock has
// made the sleeper observably SLEEPING, so a concurrent Release's Wakeup
// can never be missed.
type SleepLock struct {
	raw    sync.Mutex
	locked bool
}

// sleeper is the narrow capability Acquire needs: a blocking sleep on an
// opaque channel. *EntityCtx satisfies it; tests may satisfy it with a
// fake to exercise SleepLock (and anything built on it, like
// internal/usertable) without spinning up a full Kernel.
type sleeper interface {
	Sleep(chanAddr any)
}

// waker is the narrow capability Release needs.
type waker interface {
	Wakeup(chanAddr any)
}

// Wakeup wakes anything sleeping on chanAddr, from this entity's kernel.
func (ec *EntityCtx) Wakeup(chanAddr any) { ec.k.Wakeup(chanAddr) }

// Acquire blocks the calling entity until the lock is free, then takes it.
func (l *SleepLock) Acquire(s sleeper) {
	l.raw.Lock()
	for l.locked {
		if ec, ok := s.(*EntityCtx); ok {
			ec.sleepImpl(l, func() { l.raw.Unlock() }, false)
		} else {
			l.raw.Unlock()
			s.Sleep(l)
		}
		l.raw.Lock()
	}
	l.locked = true
	l.raw.Unlock()
}

// Release frees the lock and wakes any waiters.
func (l *SleepLock) Release(w waker) {
	l.raw.Lock()
	l.locked = false
	l.raw.Unlock()
	w.Wakeup(l)
}
