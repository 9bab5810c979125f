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

import "fmt"

// State is a schedulable entity's position in the six-state lifecycle of
// spec §3: UNUSED -> EMBRYO -> {SLEEPING, RUNNABLE, RUNNING} -> ZOMBIE -> UNUSED.
type State int

const (
	Unused State = iota
	Embryo
	Sleeping
	Runnable
	Running
	Zombie
)

func (s State) String() string {
	switch s {
	case Unused:
		return "UNUSED"
	case Embryo:
		return "EMBRYO"
	case Sleeping:
		return "SLEEPING"
	case Runnable:
		return "RUNNABLE"
	case Running:
		return "RUNNING"
	case Zombie:
		return "ZOMBIE"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// mustTransition panics if from -> to is not one of the transitions spec §3
// allows. It is the single choke point every state change in this package
// passes through, mirroring the teacher's Container.changeStatus: invalid
// transitions are programming errors and abort the process (spec §7), not
// something callers recover from.
func mustTransition(from, to State) {
	switch to {
	case Embryo:
		if from != Unused {
			panic(fmt.Sprintf("kernel: invalid state transition %v -> %v", from, to))
		}
	case Runnable:
		if from != Embryo && from != Sleeping && from != Running {
			panic(fmt.Sprintf("kernel: invalid state transition %v -> %v", from, to))
		}
	case Running:
		if from != Runnable {
			panic(fmt.Sprintf("kernel: invalid state transition %v -> %v", from, to))
		}
	case Sleeping:
		if from != Running {
			panic(fmt.Sprintf("kernel: invalid state transition %v -> %v", from, to))
		}
	case Zombie:
		if from != Running {
			panic(fmt.Sprintf("kernel: invalid state transition %v -> %v", from, to))
		}
	case Unused:
		if from != Zombie {
			panic(fmt.Sprintf("kernel: invalid state transition %v -> %v", from, to))
		}
	default:
		panic(fmt.Sprintf("kernel: invalid target state %v", to))
	}
}
