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

import "errors"

// Sentinel errors returned by kernel operations on recoverable failure.
// Programming errors that violate a kernel invariant panic instead (see
// state.go's mustTransition and sched.go's checkLockDiscipline) — these
// values are reserved for resource exhaustion and userspace precondition
// failures, per spec §7.
var (
	// ErrNoFreeSlot is returned when the process or thread pool is full.
	ErrNoFreeSlot = errors.New("kernel: no free descriptor slot")

	// ErrStackAlloc names a failed kernel stack allocation. No operation
	// in this package returns it: newContext, which stands in for the
	// kernel stack, cannot fail.
	ErrStackAlloc = errors.New("kernel: kernel stack allocation failed")

	// ErrNoChild is returned by Wait when the caller has no children.
	ErrNoChild = errors.New("kernel: no children")

	// ErrKilled is returned by Wait when the caller has been killed.
	ErrKilled = errors.New("kernel: caller killed")

	// ErrNotFound is returned by Kill/SetPriority for an unknown pid.
	ErrNotFound = errors.New("kernel: no such process")

	// ErrNotChild is returned by SetPriority when the target is not a
	// child of the caller.
	ErrNotChild = errors.New("kernel: target is not caller's child")

	// ErrSelfJoin is returned by ThreadJoin on a self-join attempt.
	ErrSelfJoin = errors.New("kernel: thread cannot join itself")

	// ErrDoubleJoin is returned by ThreadJoin when the target already has
	// a joiner.
	ErrDoubleJoin = errors.New("kernel: thread already has a joiner")

	// ErrJoinExitDriver is returned by ThreadJoin on the process's
	// exit-driver thread.
	ErrJoinExitDriver = errors.New("kernel: cannot join the exit-driver thread")

	// ErrThreadNotFound is returned by ThreadJoin for an unknown tid.
	ErrThreadNotFound = errors.New("kernel: no such thread in this process")

	// ErrBootOrder is returned by Boot if called on a kernel that has
	// already allocated a process, even one since reaped (init must be
	// pid 1).
	ErrBootOrder = errors.New("kernel: Boot must be called on a fresh kernel")
)
