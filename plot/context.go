// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// stackerKey identifies one stacking accumulation: a stack group
// within one layout kind, so column and row stacks never mix.
type stackerKey struct {
	kind  Kind
	group int
}

// StackPosition is the resolved stacking position of one series: the
// accumulator for its stack group and the series' slot within it.
type StackPosition struct {
	Stacker *Stacker
	Slot    int
}

// SeriesContext classifies the full series set of one render pass and
// answers position and count queries for the four bar layout kinds:
// plain column, plain row, stacked column, and stacked row. It also
// brokers the [Stacker] for each stack group.
//
// The classification runs once, lazily, on the first query; all
// subsequent queries are map lookups against that snapshot. A render
// pass that adds or removes series must construct a new SeriesContext.
type SeriesContext struct {
	series  []Series
	indexed bool

	columns     map[Series]int
	rows        map[Series]int
	columnCount int
	rowCount    int

	// stack-group slots, keyed by stack group number
	stackedColumns     map[int]int
	stackedRows        map[int]int
	stackedColumnCount int
	stackedRowCount    int

	stackers map[stackerKey]*Stacker
}

// NewSeriesContext returns a [SeriesContext] over the given series
// set. The slice is read, not retained beyond the indexing pass; it
// must not change between construction and the last query.
func NewSeriesContext(series []Series) *SeriesContext {
	return &SeriesContext{
		series:         series,
		columns:        map[Series]int{},
		rows:           map[Series]int{},
		stackedColumns: map[int]int{},
		stackedRows:    map[int]int{},
		stackers:       map[stackerKey]*Stacker{},
	}
}

// index runs the one-time classification pass: every bar series gets
// the next free slot of its layout kind in declaration order, with
// stacked series collapsing onto one slot per stack group.
func (sc *SeriesContext) index() {
	if sc.indexed {
		return
	}
	for _, s := range sc.series {
		if !s.IsBar() {
			continue
		}
		if s.IsColumn() {
			if s.IsStacked() {
				g := s.StackGroup()
				if _, ok := sc.stackedColumns[g]; !ok {
					sc.stackedColumns[g] = sc.stackedColumnCount
					sc.stackedColumnCount++
				}
			} else {
				sc.columns[s] = sc.columnCount
				sc.columnCount++
			}
		}
		if s.IsRow() {
			if s.IsStacked() {
				g := s.StackGroup()
				if _, ok := sc.stackedRows[g]; !ok {
					sc.stackedRows[g] = sc.stackedRowCount
					sc.stackedRowCount++
				}
			} else {
				sc.rows[s] = sc.rowCount
				sc.rowCount++
			}
		}
	}
	sc.indexed = true
}

// ColumnPosition returns the slot of the given plain (non-stacked)
// column series, or -1 if the series was not indexed as one.
func (sc *SeriesContext) ColumnPosition(s Series) int {
	sc.index()
	if slot, ok := sc.columns[s]; ok {
		return slot
	}
	return -1
}

// ColumnCount returns the number of plain column series.
func (sc *SeriesContext) ColumnCount() int {
	sc.index()
	return sc.columnCount
}

// RowPosition returns the slot of the given plain (non-stacked) row
// series, or -1 if the series was not indexed as one.
func (sc *SeriesContext) RowPosition(s Series) int {
	sc.index()
	if slot, ok := sc.rows[s]; ok {
		return slot
	}
	return -1
}

// RowCount returns the number of plain row series.
func (sc *SeriesContext) RowCount() int {
	sc.index()
	return sc.rowCount
}

// StackedColumnPosition returns the slot of the given stacked column
// series' stack group among all stacked column groups, not the series'
// own slot within its stack; see [SeriesContext.StackPosition] for
// that. Returns -1 if the series' group was not indexed.
func (sc *SeriesContext) StackedColumnPosition(s Series) int {
	sc.index()
	if !s.IsStacked() || !s.IsColumn() {
		return -1
	}
	if slot, ok := sc.stackedColumns[s.StackGroup()]; ok {
		return slot
	}
	return -1
}

// StackedColumnCount returns the number of stacked column groups.
func (sc *SeriesContext) StackedColumnCount() int {
	sc.index()
	return sc.stackedColumnCount
}

// StackedRowPosition returns the slot of the given stacked row series'
// stack group among all stacked row groups. Returns -1 if the series'
// group was not indexed.
func (sc *SeriesContext) StackedRowPosition(s Series) int {
	sc.index()
	if !s.IsStacked() || !s.IsRow() {
		return -1
	}
	if slot, ok := sc.stackedRows[s.StackGroup()]; ok {
		return slot
	}
	return -1
}

// StackedRowCount returns the number of stacked row groups.
func (sc *SeriesContext) StackedRowCount() int {
	sc.index()
	return sc.stackedRowCount
}

// StackPosition resolves the [Stacker] responsible for the given
// series' stack group, creating it on first use, and returns it
// together with the series' slot within it. Returns nil if the series
// is not stacked. The registry is keyed by the series kind as well as
// the group, so column and row stacks with the same group number stay
// independent.
func (sc *SeriesContext) StackPosition(s Series, group int) *StackPosition {
	if !s.IsStacked() {
		return nil
	}
	key := stackerKey{kind: s.Kind(), group: group}
	st, ok := sc.stackers[key]
	if !ok {
		st = NewStacker()
		sc.stackers[key] = st
	}
	return &StackPosition{Stacker: st, Slot: st.SeriesSlot(s)}
}
