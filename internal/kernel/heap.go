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

import "container/heap"

// levelHeap is a max-heap of *Thread keyed by Thread.priority, one per
// MLFQ level (spec §4.6). It implements container/heap.Interface — the
// idiomatic stdlib sift-up/sift-down heap — standing in for the original's
// hand-rolled array heap with a "slot 0 head cache"; see DESIGN.md for why
// no pack dependency supersedes container/heap for this role. The
// testable invariant "priority(h[i]) <= priority(h[i/2])" from spec §8
// is stated over the original's 1-indexed array; over container/heap's
// 0-indexed array the parent of i is (i-1)/2, so it holds here as
// priority(h[i]) <= priority(h[(i-1)/2]) for every i >= 1.
type levelHeap struct {
	items []*Thread
}

func (h *levelHeap) Len() int { return len(h.items) }

func (h *levelHeap) Less(i, j int) bool {
	// Max-heap: higher priority sorts first.
	return h.items[i].priority > h.items[j].priority
}

func (h *levelHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].idxOnQueue = i
	h.items[j].idxOnQueue = j
}

func (h *levelHeap) Push(x any) {
	t := x.(*Thread)
	t.idxOnQueue = len(h.items)
	h.items = append(h.items, t)
}

func (h *levelHeap) Pop() any {
	old := h.items
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	t.idxOnQueue = -1
	return t
}

// push inserts t, sifting up (spec §4.6's push).
func (h *levelHeap) push(t *Thread) { heap.Push(h, t) }

// pop removes t from its recorded index (spec §4.6's pop: "remove at
// p->idx_on_queue, replace with last element, sift either direction").
func (h *levelHeap) pop(t *Thread) {
	if t.idxOnQueue < 0 || t.idxOnQueue >= len(h.items) {
		return
	}
	heap.Remove(h, t.idxOnQueue)
}

// changePriority updates t's key in place and re-heapifies from its index
// (spec §4.6's change_priority).
func (h *levelHeap) changePriority(t *Thread, newPriority int) {
	t.priority = newPriority
	if t.idxOnQueue >= 0 && t.idxOnQueue < len(h.items) {
		heap.Fix(h, t.idxOnQueue)
	}
}

// extractTop removes and returns the highest-priority thread, or nil if
// the heap is empty (spec §4.6's extract, materialising the head).
func (h *levelHeap) extractTop() *Thread {
	if len(h.items) == 0 {
		return nil
	}
	return heap.Pop(h).(*Thread)
}

func (h *levelHeap) clear() { h.items = nil }
