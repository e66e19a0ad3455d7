// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "strconv"

// StackedValue is the cumulative span occupied by one series at one
// category position within one stack slot. Positive and negative
// contributions accumulate independently, so a stack can grow both up
// and down from its baseline.
type StackedValue struct {
	// Start is where the positive span begins: the contact value
	// inherited from the nearest occupied lower slot.
	Start float32

	// End is where the positive span currently ends.
	End float32

	// NegativeStart is where the negative span begins.
	NegativeStart float32

	// NegativeEnd is where the negative span currently ends.
	NegativeEnd float32
}

// StackedTotal is the running total across all slots at one category
// position, independent of slot. Renderers use it for 100% stacking
// and total labels.
type StackedTotal struct {
	// Positive is the sum of all non-negative values at the category.
	Positive float32

	// Negative is the sum of all negative values at the category.
	Negative float32
}

// StackNotFoundError is returned by [Stacker.Stack] when queried for a
// (slot, category) pair that [Stacker.StackPoint] never populated.
// It indicates a read-before-write ordering bug in the caller and
// surfaces immediately rather than yielding a silent zero.
type StackNotFoundError struct {
	Slot     int
	Category float32
}

func (e *StackNotFoundError) Error() string {
	return "plot: no stacked value at slot " + strconv.Itoa(e.Slot) +
		", category " + strconv.FormatFloat(float64(e.Category), 'g', -1, 32)
}

// Stacker accumulates, per categorical position, the running positive
// and negative totals and previous-slot contact points needed to stack
// bar segments within one stack group. One Stacker lives for one
// chart's render lifetime; rebuild it together with its owning
// [SeriesContext] when the series set changes.
//
// Slot assignment is strictly first-come-first-served and never
// reassigned, so callers must process series in a stable order for
// results to be deterministic across runs.
type Stacker struct {
	// slots maps each series to its immutable slot index.
	slots map[Series]int

	// values holds, per slot, the accumulated value at each category.
	values []map[float32]*StackedValue

	// totals holds the slot-independent running totals per category.
	totals map[float32]*StackedTotal

	// hint counts first-time value creations, used only to pre-size
	// the category maps of later slots.
	hint int
}

// NewStacker returns a new empty [Stacker].
func NewStacker() *Stacker {
	return &Stacker{
		slots:  map[Series]int{},
		totals: map[float32]*StackedTotal{},
	}
}

// SeriesSlot returns the slot of the given series within this stack
// group, assigning the next free integer (0, 1, 2, ...) in request
// order on first sight. Once granted, a slot is never reassigned.
func (st *Stacker) SeriesSlot(s Series) int {
	if slot, ok := st.slots[s]; ok {
		return slot
	}
	slot := len(st.values)
	st.slots[s] = slot
	st.values = append(st.values, make(map[float32]*StackedValue, st.hint))
	return slot
}

// SlotCount returns the number of slots assigned so far.
func (st *Stacker) SlotCount() int {
	return len(st.values)
}

// contact returns the start values for the given slot at the given
// category: the End/NegativeEnd of the nearest occupied slot below it,
// bridging transparently past slots with no entry at that category,
// or (0, 0) if no lower slot is occupied there.
func (st *Stacker) contact(slot int, category float32) (positive, negative float32) {
	for i := slot - 1; i >= 0; i-- {
		if sv, ok := st.values[i][category]; ok {
			return sv.End, sv.NegativeEnd
		}
	}
	return 0, 0
}

// StackPoint accumulates the given point into the given slot and
// returns the category's running positive sum if the value is
// non-negative, or the running negative sum otherwise. The first call
// for a (slot, category) pair seeds the stacked value at the contact
// point of the nearest occupied lower slot. Repeated calls accumulate
// further, so a render pass must call this exactly once per point.
//
// The slot must have been assigned by [Stacker.SeriesSlot].
func (st *Stacker) StackPoint(p Point, slot int) float32 {
	sv, ok := st.values[slot][p.Category]
	if !ok {
		positive, negative := st.contact(slot, p.Category)
		sv = &StackedValue{
			Start:         positive,
			End:           positive,
			NegativeStart: negative,
			NegativeEnd:   negative,
		}
		st.values[slot][p.Category] = sv
		st.hint++
		if _, ok := st.totals[p.Category]; !ok {
			st.totals[p.Category] = &StackedTotal{}
		}
	}
	total := st.totals[p.Category]
	if p.Value >= 0 {
		sv.End += p.Value
		total.Positive += p.Value
		return total.Positive
	}
	sv.NegativeEnd += p.Value
	total.Negative += p.Value
	return total.Negative
}

// Stack returns the finalized stacked span for the given point's
// category at the given slot, together with the category-wide totals.
// A [StackNotFoundError] is returned if [Stacker.StackPoint] was never
// called for that (slot, category) pair.
func (st *Stacker) Stack(p Point, slot int) (StackedValue, StackedTotal, error) {
	if slot < 0 || slot >= len(st.values) {
		return StackedValue{}, StackedTotal{}, &StackNotFoundError{Slot: slot, Category: p.Category}
	}
	sv, ok := st.values[slot][p.Category]
	if !ok {
		return StackedValue{}, StackedTotal{}, &StackNotFoundError{Slot: slot, Category: p.Category}
	}
	return *sv, *st.totals[p.Category], nil
}
