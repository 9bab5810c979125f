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

// Package usertable implements the persistent name->(password, uid) store
// spec §1 calls out as a collaborator subsystem: a fixed-capacity table
// guarded by a kernel.SleepLock, serialized to a single file in the
// on-disk format spec §6 specifies, with uid 0 as the empty-slot sentinel
// and uid 1 reserved for root (original_source's ROOT_UID).
package usertable

// Capacity and field-width constants. original_source's validity checks
// (2 <= len < 16) fix NAMELEN/PWLEN at 16; NUSER is not constrained by
// the original and is chosen here as a round teaching-kernel capacity.
const (
	NUSER   = 32
	NAMELEN = 16
	PWLEN   = 16

	// RootUID is the reserved uid for the bootstrap "root" account.
	RootUID = 1
)
