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

// The types below are the external collaborators spec §1 and §6 name:
// paging/VM, the on-disk filesystem, and the trap/interrupt plumbing. This
// repository implements only the scheduling core; it consumes these as
// interfaces so the core stays testable without a real page-table
// implementation or inode cache, the same separation gVisor draws between
// pkg/sentry/kernel and pkg/sentry/mm/pkg/sentry/fsimpl.

// PageTable is an opaque per-process address space handle.
type PageTable interface {
	// Size returns the address-space size in bytes.
	Size() uint64
}

// VM is the paging/virtual-memory collaborator (spec §6).
type VM interface {
	SetupKVM() (PageTable, error)
	InitUVM(pg PageTable, src []byte)
	AllocUVM(pg PageTable, oldsz, newsz uint64) (uint64, error)
	DeallocUVM(pg PageTable, oldsz, newsz uint64) (uint64, error)
	CopyUVM(pg PageTable, sz uint64) (PageTable, error)
	FreeVM(pg PageTable)
	SwitchUVM(p *Proc)
}

// Inode is an opaque filesystem collaborator handle (cwd, open files).
type Inode interface {
	Path() string
}

// File is an opaque open-file-table entry.
type File interface {
	Dup() File
	Close()
}

// FS is the filesystem collaborator (spec §6); named namei/ilock/iput etc.
// in the original, collapsed here to the operations the scheduling core
// actually calls (path lookup is not part of this core).
type FS interface {
	Dup(i Inode) Inode
	Put(i Inode)
	DupFile(f File) File
	CloseFile(f File)
}

// Trap is the trap/interrupt plumbing collaborator (spec §6): delivers
// timer ticks and checks the killed flag on the way back to user mode.
// This core does not drive Trap directly (it has no real trap path); it
// exists so callers (e.g. a future trap handler) have a documented seam
// to invoke Yield/Kill-check through.
type Trap interface {
	// OnReturnToUser is called by the (external) trap-return path; it
	// reports whether the current thread was killed and should exit.
	OnReturnToUser(killed bool)
}

// noopVM is a minimal collaborator used where a test or the demo CLI
// doesn't care about real address-space semantics, only about the
// scheduling core's bookkeeping.
type noopVM struct{}

type simplePageTable struct{ size uint64 }

func (p *simplePageTable) Size() uint64 { return p.size }

func (noopVM) SetupKVM() (PageTable, error)             { return &simplePageTable{}, nil }
func (noopVM) InitUVM(pg PageTable, src []byte)         {}
func (noopVM) AllocUVM(pg PageTable, old, new uint64) (uint64, error) {
	pt := pg.(*simplePageTable)
	pt.size = new
	return new, nil
}
func (noopVM) DeallocUVM(pg PageTable, old, new uint64) (uint64, error) {
	pt := pg.(*simplePageTable)
	pt.size = new
	return new, nil
}
func (noopVM) CopyUVM(pg PageTable, sz uint64) (PageTable, error) {
	return &simplePageTable{size: sz}, nil
}
func (noopVM) FreeVM(pg PageTable)     {}
func (noopVM) SwitchUVM(p *Proc)       {}

// NewNoopVM returns a VM collaborator sufficient for tests and the demo
// CLI: it tracks address-space size only, with no real page tables.
func NewNoopVM() VM { return noopVM{} }
