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

package usertable

import (
	"github.com/google/btree"

	"github.com/juchan1220/xv6sched/internal/kernel"
)

// nameItem is the btree.Item the name->slot index stores: a btree gives
// this table an indexed lookup in the style of the pack's domain-stack
// wiring, in place of original_source's linear find_user_with_username
// scan (still used as the canonical AddUser duplicate-check scan, since
// that scan's full-table traversal is itself part of the spec'd
// algorithm, not just a lookup).
type nameItem struct {
	name string
	slot int
}

func (a nameItem) Less(than btree.Item) bool {
	return a.name < than.(nameItem).name
}

// Table is the in-memory mirror of the on-disk user table (spec §1, §6):
// capacity NUSER, a single kernel.SleepLock serializing mutators, and a
// btree index for Login's by-name lookup.
type Table struct {
	lock kernel.SleepLock

	nextUID uint32
	records [NUSER]record
	index   *btree.BTree

	disk Disk
}

// Open loads the table from disk, or bootstraps a fresh one containing
// only root/0000 if nothing has been persisted yet (spec §8 scenario 6).
func Open(disk Disk) (*Table, error) {
	t := &Table{disk: disk}

	data, ok, err := disk.Read()
	if err != nil {
		return nil, err
	}
	if !ok {
		t.bootstrap()
		if err := t.persistLocked(); err != nil {
			return nil, err
		}
		return t, nil
	}

	nextUID, records, err := decode(data)
	if err != nil {
		return nil, err
	}
	t.nextUID = nextUID
	t.records = records
	t.rebuildIndex()
	return t, nil
}

func (t *Table) bootstrap() {
	t.nextUID = RootUID + 1
	t.records = [NUSER]record{}
	t.records[0] = newRecord("root", "0000", RootUID)
	t.rebuildIndex()
}

func (t *Table) rebuildIndex() {
	t.index = btree.New(4)
	for i, r := range t.records {
		if r.UID != 0 {
			t.index.ReplaceOrInsert(nameItem{name: r.name(), slot: i})
		}
	}
}

func (t *Table) persistLocked() error {
	return t.disk.Write(encode(t.nextUID, t.records))
}

func isValidField(s string, maxLen int) bool {
	return len(s) >= 2 && len(s) < maxLen
}

// Login implements the login(name, pw) syscall (spec §6): returns the
// matching uid, or ok=false on a bad name/password or a mismatch.
//
// original_source's getuid has the bug the redesign flags call out: on
// the invalid-argument path it calls releasesleep without ever having
// acquired the lock. Here the bounds check happens before the lock is
// touched at all, so the early return acquires nothing and releases
// nothing — acquire/release stay symmetric on every path.
func (t *Table) Login(ec *kernel.EntityCtx, name, password string) (uint32, bool) {
	if !isValidField(name, NAMELEN) || !isValidField(password, PWLEN) {
		return 0, false
	}

	t.lock.Acquire(ec)
	defer t.lock.Release(ec)

	item := t.index.Get(nameItem{name: name})
	if item == nil {
		return 0, false
	}
	r := t.records[item.(nameItem).slot]
	if r.password() != password {
		return 0, false
	}
	return r.UID, true
}

// AddUser implements addUser(name, pw) (spec §6): root-only, rejects
// invalid fields and duplicate names, allocates the first empty slot,
// bumps next_uid, and persists — "the final revision" of add_user spec
// §8's REDESIGN FLAGS designates as authoritative, since an intermediate
// revision in original_source is a no-op stub.
func (t *Table) AddUser(ec *kernel.EntityCtx, callerUID uint32, name, password string) (uint32, error) {
	if callerUID != RootUID {
		return 0, ErrNotRoot
	}
	if !isValidField(name, NAMELEN) || !isValidField(password, PWLEN) {
		return 0, ErrInvalidArgument
	}

	t.lock.Acquire(ec)
	defer t.lock.Release(ec)

	emptySlot := -1
	for i, r := range t.records {
		if r.UID == 0 {
			if emptySlot == -1 {
				emptySlot = i
			}
			continue
		}
		if r.name() == name {
			return 0, ErrDuplicateName
		}
	}
	if emptySlot == -1 {
		return 0, ErrTableFull
	}

	uid := t.nextUID
	t.nextUID++
	t.records[emptySlot] = newRecord(name, password, uid)
	t.index.ReplaceOrInsert(nameItem{name: name, slot: emptySlot})

	if err := t.persistLocked(); err != nil {
		return 0, err
	}
	return uid, nil
}

// DeleteUser implements deleteUser(name) (spec §6): root-only, refuses
// to delete root itself, clears the matching slot and persists.
func (t *Table) DeleteUser(ec *kernel.EntityCtx, callerUID uint32, name string) error {
	if callerUID != RootUID {
		return ErrNotRoot
	}
	if !isValidField(name, NAMELEN) {
		return ErrInvalidArgument
	}
	if name == "root" {
		return ErrCannotDeleteRoot
	}

	t.lock.Acquire(ec)
	defer t.lock.Release(ec)

	item := t.index.Get(nameItem{name: name})
	if item == nil {
		return ErrNotFound
	}
	slot := item.(nameItem).slot
	t.records[slot] = record{}
	t.index.Delete(nameItem{name: name})

	return t.persistLocked()
}
