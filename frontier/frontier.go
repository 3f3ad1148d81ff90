// SPDX-License-Identifier: MIT
// Package: frontier
//
// frontier.go - Frontier operations.

package frontier

import "container/heap"

// Frontier is a bounded, batched priority container. The zero value is not
// usable; create one with New.
type Frontier struct {
	m       int             // batch size
	ceiling float64         // bound returned when nothing remains
	best    map[int]float64 // authoritative current best per key
	h       entryHeap       // candidates, possibly stale
}

// New returns an empty Frontier with batch size m and ceiling B.
// It panics if m < 1.
func New(m int, ceiling float64) *Frontier {
	f := &Frontier{}
	f.Reset(m, ceiling)

	return f
}

// Reset clears all state and re-arms the Frontier with batch size m and
// ceiling B, keeping allocated capacity. It panics if m < 1.
func (f *Frontier) Reset(m int, ceiling float64) {
	if m < 1 {
		panic(ErrBadBatchSize.Error())
	}
	f.m = m
	f.ceiling = ceiling
	if f.best == nil {
		f.best = make(map[int]float64)
	} else {
		clear(f.best)
	}
	f.h = f.h[:0]
}

// Insert records value for key if key is absent or value is strictly smaller
// than its tracked value. It reports whether the table changed.
func (f *Frontier) Insert(key int, value float64) bool {
	if cur, ok := f.best[key]; ok && value >= cur {
		return false
	}
	f.best[key] = value
	heap.Push(&f.h, Entry{Key: key, Value: value})

	return true
}

// BatchPrepend inserts every pair with the same semantics as Insert.
// No assumption is made about how the values compare to those already held.
func (f *Frontier) BatchPrepend(entries []Entry) {
	for _, e := range entries {
		f.Insert(e.Key, e.Value)
	}
}

// Pull removes and returns up to M entries with the smallest values, and the
// separating bound: the smallest value still held afterwards, or the ceiling if
// the Frontier is now empty. Returned entries are ordered by (Value, Key).
func (f *Frontier) Pull() (float64, []Entry) {
	batch := make([]Entry, 0, min(f.m, len(f.best)))
	for len(batch) < f.m {
		e, ok := f.popLive()
		if !ok {
			break
		}
		delete(f.best, e.Key)
		batch = append(batch, e)
	}

	if e, ok := f.peekLive(); ok {
		return e.Value, batch
	}

	return f.ceiling, batch
}

// IsEmpty reports whether no key currently has a tracked value.
func (f *Frontier) IsEmpty() bool { return len(f.best) == 0 }

// Len returns the number of keys currently tracked.
func (f *Frontier) Len() int { return len(f.best) }

// Value returns the tracked value for key.
func (f *Frontier) Value(key int) (float64, bool) {
	v, ok := f.best[key]

	return v, ok
}

// BatchSize returns M.
func (f *Frontier) BatchSize() int { return f.m }

// Ceiling returns B.
func (f *Frontier) Ceiling() float64 { return f.ceiling }

// live reports whether e still matches the authoritative table.
func (f *Frontier) live(e Entry) bool {
	cur, ok := f.best[e.Key]

	return ok && cur == e.Value
}

// peekLive discards stale entries from the top and returns the smallest live one.
func (f *Frontier) peekLive() (Entry, bool) {
	for len(f.h) > 0 {
		if top := f.h[0]; f.live(top) {
			return top, true
		}
		heap.Pop(&f.h)
	}

	return Entry{}, false
}

// popLive removes and returns the smallest live entry.
func (f *Frontier) popLive() (Entry, bool) {
	if _, ok := f.peekLive(); !ok {
		return Entry{}, false
	}

	return heap.Pop(&f.h).(Entry), true
}
