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

func TestMustTransitionAllowsLifecycle(t *testing.T) {
	cases := []struct {
		from, to State
	}{
		{Unused, Embryo},
		{Embryo, Runnable},
		{Sleeping, Runnable},
		{Running, Runnable},
		{Runnable, Running},
		{Running, Sleeping},
		{Running, Zombie},
		{Zombie, Unused},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("mustTransition(%v, %v) panicked: %v", c.from, c.to, r)
				}
			}()
			mustTransition(c.from, c.to)
		}()
	}
}

func TestMustTransitionRejectsSkippedStates(t *testing.T) {
	cases := []struct {
		from, to State
	}{
		{Unused, Running},
		{Embryo, Sleeping},
		{Sleeping, Zombie},
		{Zombie, Runnable},
		{Running, Embryo},
		{Runnable, Zombie},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("mustTransition(%v, %v) should have panicked", c.from, c.to)
				}
			}()
			mustTransition(c.from, c.to)
		}()
	}
}

func TestStateString(t *testing.T) {
	if got := Running.String(); got != "RUNNING" {
		t.Errorf("Running.String() = %q, want RUNNING", got)
	}
	if got := State(99).String(); got != "State(99)" {
		t.Errorf("unknown state String() = %q, want State(99)", got)
	}
}
