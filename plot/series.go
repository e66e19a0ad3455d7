// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package plot implements the bar layout core of the chart renderer:
deterministic slot assignment for grouped and stacked bar-type series
sharing a categorical axis ([SeriesContext]), and per-category running
totals for stacked segments ([Stacker]).

Everything here is scoped to a single render pass on a single
goroutine. When the series set changes, build a new [SeriesContext]
rather than mutating an existing one, so cached slot assignments stay
consistent.
*/
package plot

import "strconv"

// Point is one data point of a bar-type series: a floating categorical
// coordinate on the shared axis and a signed magnitude to stack.
type Point struct {
	// Category is the categorical coordinate shared across series.
	Category float32

	// Value is the signed magnitude of the point.
	Value float32
}

// Kind is the layout kind of a bar-type series. It distinguishes
// column stacking from row stacking in the [Stacker] registry, so a
// column stack group and a row stack group with the same group number
// never share an accumulator.
type Kind int32

const (
	// KindNone is a series that does not participate in bar layout.
	KindNone Kind = iota

	// KindColumn is a vertical bar series.
	KindColumn

	// KindRow is a horizontal bar series.
	KindRow
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindColumn:
		return "Column"
	case KindRow:
		return "Row"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Series is the capability set the layout code needs from a chart
// series. Concrete series types live in the rendering layers; the
// layout core only classifies them. Implementations must be usable as
// map keys (pointer types are).
type Series interface {
	// IsBar reports whether the series renders rectangular bars and
	// therefore participates in bar layout at all.
	IsBar() bool

	// IsColumn reports whether the series lays out as vertical columns.
	IsColumn() bool

	// IsRow reports whether the series lays out as horizontal rows.
	IsRow() bool

	// IsStacked reports whether the series stacks on others in its
	// stack group rather than occupying its own plain slot.
	IsStacked() bool

	// StackGroup returns the identifier partitioning stacked series
	// into independent accumulations.
	StackGroup() int

	// Kind returns the layout kind, used to key [Stacker] registries.
	Kind() Kind
}

// BarSeries is a minimal concrete [Series] for renderers that do not
// carry their own series types, and for tests.
type BarSeries struct {
	// Name identifies the series in logs and legends.
	Name string

	// Horizontal lays the bars out as rows instead of columns.
	Horizontal bool

	// Stacked stacks this series within its [BarSeries.Group].
	Stacked bool

	// Group is the stack group, meaningful only when Stacked.
	Group int
}

func (s *BarSeries) IsBar() bool { return true }

func (s *BarSeries) IsColumn() bool { return !s.Horizontal }

func (s *BarSeries) IsRow() bool { return s.Horizontal }

func (s *BarSeries) IsStacked() bool { return s.Stacked }

func (s *BarSeries) StackGroup() int { return s.Group }

func (s *BarSeries) Kind() Kind {
	if s.Horizontal {
		return KindRow
	}
	return KindColumn
}
