// SPDX-License-Identifier: MIT

// Package frontier implements the bounded, batched priority container used by
// the bmssp recursion to hand out vertices in small low-distance batches.
//
// A Frontier tracks the best (smallest) value ever submitted for each key and
// releases keys through Pull in batches of at most M entries, together with a
// separating bound: the smallest value still held after the batch, or the
// ceiling B when nothing remains.
//
// Implementation:
//
//   - An authoritative key→value table holds the current best per key.
//   - A binary min-heap ordered by (value, key) holds candidate entries; a newer,
//     smaller Insert pushes a fresh entry and leaves the old one in place
//     ("lazy deletion"). Entries are validated against the table when they reach
//     the top of the heap, so a superseded value never surfaces.
//
// Complexity:
//
//   - Insert:       O(log H) where H is the heap size (H ≤ number of successful inserts).
//   - BatchPrepend: O(L log H) for L pairs.
//   - Pull:         O((M + S) log H) where S is the number of stale entries discarded.
//   - IsEmpty/Len:  O(1).
//
// Ordering: Pull returns entries sorted by value ascending, then key ascending,
// so identical input sequences yield identical batches.
package frontier
