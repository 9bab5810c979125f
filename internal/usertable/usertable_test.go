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

package usertable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juchan1220/xv6sched/internal/kernel"
	"github.com/juchan1220/xv6sched/internal/usertable"
)

// runOnKernel boots a minimal kernel whose init process forks a worker to
// run body, giving body a real *kernel.EntityCtx able to use SleepLock
// (and therefore exercise usertable's mutators end to end through the
// scheduling core) without hand-rolling a fake context. Init never exits
// (exit on pid 1 panics by spec §4.8), so it just yields forever; the
// test loop stops as soon as the worker signals completion.
//
// body runs in a goroutine the testing package doesn't know about, so it
// must not call t.Fatal/require — those may only run on the test's own
// goroutine. Callers instead have body record results into variables
// captured by reference and assert on them after runOnKernel returns.
func runOnKernel(t *testing.T, body func(ec *kernel.EntityCtx)) {
	t.Helper()
	k := kernel.New(kernel.NewRoundRobin(), kernel.NewNoopVM())
	done := make(chan struct{})

	_, err := k.Boot("init", func(ec *kernel.EntityCtx) {
		if _, ferr := ec.Fork("worker", func(wec *kernel.EntityCtx) {
			body(wec)
			close(done)
		}); ferr != nil {
			panic(ferr)
		}
		for {
			ec.Yield()
		}
	})
	require.NoError(t, err)

	cpu := &kernel.CPU{}
	for i := 0; i < 10_000; i++ {
		if !k.RunOne(cpu) {
			break
		}
		select {
		case <-done:
			return
		default:
		}
	}
	t.Fatal("worker did not finish in time")
}

func TestBootstrapCreatesRoot(t *testing.T) {
	disk := &usertable.MemDisk{}
	table, err := usertable.Open(disk)
	require.NoError(t, err)

	var uid uint32
	var ok bool
	runOnKernel(t, func(ec *kernel.EntityCtx) {
		uid, ok = table.Login(ec, "root", "0000")
	})
	require.True(t, ok)
	require.EqualValues(t, usertable.RootUID, uid)
}

func TestAddUserThenLoginPersists(t *testing.T) {
	disk := &usertable.MemDisk{}
	table, err := usertable.Open(disk)
	require.NoError(t, err)

	var newUID uint32
	var addErr error
	runOnKernel(t, func(ec *kernel.EntityCtx) {
		newUID, addErr = table.AddUser(ec, usertable.RootUID, "alice", "swordfish")
	})
	require.NoError(t, addErr)
	require.NotZero(t, newUID)

	// Reopen from the same disk: the write-back must be a fixed point of
	// parse-then-write (spec §8).
	reopened, err := usertable.Open(disk)
	require.NoError(t, err)

	var uid uint32
	var ok bool
	runOnKernel(t, func(ec *kernel.EntityCtx) {
		uid, ok = reopened.Login(ec, "alice", "swordfish")
	})
	require.True(t, ok)
	require.Equal(t, newUID, uid)
}

func TestAddUserRejectsNonRoot(t *testing.T) {
	disk := &usertable.MemDisk{}
	table, err := usertable.Open(disk)
	require.NoError(t, err)

	var addErr error
	runOnKernel(t, func(ec *kernel.EntityCtx) {
		_, addErr = table.AddUser(ec, 42, "mallory", "whatever")
	})
	require.ErrorIs(t, addErr, usertable.ErrNotRoot)
}

func TestAddUserRejectsDuplicateName(t *testing.T) {
	disk := &usertable.MemDisk{}
	table, err := usertable.Open(disk)
	require.NoError(t, err)

	var addErr error
	runOnKernel(t, func(ec *kernel.EntityCtx) {
		_, addErr = table.AddUser(ec, usertable.RootUID, "root", "0000")
	})
	require.ErrorIs(t, addErr, usertable.ErrDuplicateName)
}

func TestDeleteUserThenLoginFails(t *testing.T) {
	disk := &usertable.MemDisk{}
	table, err := usertable.Open(disk)
	require.NoError(t, err)

	var addErr, delErr error
	var loginOK bool
	runOnKernel(t, func(ec *kernel.EntityCtx) {
		_, addErr = table.AddUser(ec, usertable.RootUID, "bob", "hunter2")
		if addErr != nil {
			return
		}
		delErr = table.DeleteUser(ec, usertable.RootUID, "bob")
		_, loginOK = table.Login(ec, "bob", "hunter2")
	})
	require.NoError(t, addErr)
	require.NoError(t, delErr)
	require.False(t, loginOK)
}

func TestDeleteUserRefusesRoot(t *testing.T) {
	disk := &usertable.MemDisk{}
	table, err := usertable.Open(disk)
	require.NoError(t, err)

	var delErr error
	runOnKernel(t, func(ec *kernel.EntityCtx) {
		delErr = table.DeleteUser(ec, usertable.RootUID, "root")
	})
	require.ErrorIs(t, delErr, usertable.ErrCannotDeleteRoot)
}

func TestLoginRejectsBadFieldsWithoutTouchingLock(t *testing.T) {
	// Regression test for the acquire/release asymmetry the redesign
	// flags call out in one original_source revision of getuid: a bad
	// name/password must return before the lock is ever touched. If
	// acquire/release had gone asymmetric, the second, legitimate Login
	// below would deadlock.
	disk := &usertable.MemDisk{}
	table, err := usertable.Open(disk)
	require.NoError(t, err)

	var firstOK, secondOK bool
	var uid uint32
	runOnKernel(t, func(ec *kernel.EntityCtx) {
		_, firstOK = table.Login(ec, "a", "0000") // name too short
		uid, secondOK = table.Login(ec, "root", "0000")
	})
	require.False(t, firstOK)
	require.True(t, secondOK)
	require.EqualValues(t, usertable.RootUID, uid)
}
