// SPDX-License-Identifier: MIT
// Package: frontier
//
// types.go - entry type, sentinel errors and the internal heap.

package frontier

import "errors"

// ErrBadBatchSize is the panic value text used when a Frontier is created or
// reset with a batch size below 1.
var ErrBadBatchSize = errors.New("frontier: batch size must be >= 1")

// Entry is a key with its tentative value.
type Entry struct {
	Key   int
	Value float64
}

// entryHeap is a min-heap of Entry ordered by (Value, Key).
// It may hold stale entries; Frontier filters them against its table.
type entryHeap []Entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Value != h[j].Value {
		return h[i].Value < h[j].Value
	}

	return h[i].Key < h[j].Key
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(Entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
