// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberchart/ember/plot"
)

func TestSeriesSlotOrder(t *testing.T) {
	st := plot.NewStacker()
	s1 := &plot.BarSeries{Name: "s1", Stacked: true}
	s2 := &plot.BarSeries{Name: "s2", Stacked: true}
	s3 := &plot.BarSeries{Name: "s3", Stacked: true}

	assert.Equal(t, 0, st.SeriesSlot(s1))
	assert.Equal(t, 1, st.SeriesSlot(s2))
	assert.Equal(t, 2, st.SeriesSlot(s3))
	assert.Equal(t, 3, st.SlotCount())

	// stable across repeated queries, in any order
	assert.Equal(t, 1, st.SeriesSlot(s2))
	assert.Equal(t, 0, st.SeriesSlot(s1))
	assert.Equal(t, 2, st.SeriesSlot(s3))
	assert.Equal(t, 3, st.SlotCount())
}

func TestStackPositive(t *testing.T) {
	st := plot.NewStacker()
	s1 := &plot.BarSeries{Name: "s1", Stacked: true}
	s2 := &plot.BarSeries{Name: "s2", Stacked: true}
	slot1 := st.SeriesSlot(s1)
	slot2 := st.SeriesSlot(s2)

	assert.Equal(t, float32(5), st.StackPoint(plot.Point{Category: 1, Value: 5}, slot1))
	assert.Equal(t, float32(8), st.StackPoint(plot.Point{Category: 1, Value: 3}, slot2))

	sv, total, err := st.Stack(plot.Point{Category: 1}, slot1)
	require.NoError(t, err)
	assert.Equal(t, float32(0), sv.Start)
	assert.Equal(t, float32(5), sv.End)
	assert.Equal(t, float32(8), total.Positive)

	sv, total, err = st.Stack(plot.Point{Category: 1}, slot2)
	require.NoError(t, err)
	assert.Equal(t, float32(5), sv.Start)
	assert.Equal(t, float32(8), sv.End)
	assert.Equal(t, float32(8), total.Positive)
	assert.Equal(t, float32(0), total.Negative)
}

func TestStackNegative(t *testing.T) {
	st := plot.NewStacker()
	s1 := &plot.BarSeries{Name: "s1", Stacked: true}
	s2 := &plot.BarSeries{Name: "s2", Stacked: true}
	slot1 := st.SeriesSlot(s1)
	slot2 := st.SeriesSlot(s2)

	assert.Equal(t, float32(5), st.StackPoint(plot.Point{Category: 1, Value: 5}, slot1))
	assert.Equal(t, float32(-2), st.StackPoint(plot.Point{Category: 1, Value: -2}, slot2))

	sv, total, err := st.Stack(plot.Point{Category: 1}, slot2)
	require.NoError(t, err)
	assert.Equal(t, float32(0), sv.NegativeStart)
	assert.Equal(t, float32(-2), sv.NegativeEnd)
	// the positive span of slot 1 still starts at slot 0's end
	assert.Equal(t, float32(5), sv.Start)
	assert.Equal(t, float32(5), sv.End)
	assert.Equal(t, float32(-2), total.Negative)
	assert.Equal(t, float32(5), total.Positive)
}

func TestStackBridgesEmptySlots(t *testing.T) {
	st := plot.NewStacker()
	s1 := &plot.BarSeries{Name: "s1", Stacked: true}
	s2 := &plot.BarSeries{Name: "s2", Stacked: true}
	s3 := &plot.BarSeries{Name: "s3", Stacked: true}
	slot1 := st.SeriesSlot(s1)
	slot2 := st.SeriesSlot(s2)
	slot3 := st.SeriesSlot(s3)

	// slot 1 has a point at category 2; slot 2 does not
	st.StackPoint(plot.Point{Category: 2, Value: 10}, slot1)
	st.StackPoint(plot.Point{Category: 3, Value: 1}, slot2)
	st.StackPoint(plot.Point{Category: 2, Value: 4}, slot3)

	// slot 3's contact start bridges past the empty slot 2 to slot 1's end
	sv, total, err := st.Stack(plot.Point{Category: 2}, slot3)
	require.NoError(t, err)
	assert.Equal(t, float32(10), sv.Start)
	assert.Equal(t, float32(14), sv.End)
	assert.Equal(t, float32(14), total.Positive)
}

func TestStackAccumulatesRepeatedCalls(t *testing.T) {
	st := plot.NewStacker()
	s1 := &plot.BarSeries{Name: "s1", Stacked: true}
	slot := st.SeriesSlot(s1)

	assert.Equal(t, float32(2), st.StackPoint(plot.Point{Category: 7, Value: 2}, slot))
	assert.Equal(t, float32(5), st.StackPoint(plot.Point{Category: 7, Value: 3}, slot))

	sv, _, err := st.Stack(plot.Point{Category: 7}, slot)
	require.NoError(t, err)
	assert.Equal(t, float32(0), sv.Start)
	assert.Equal(t, float32(5), sv.End)
}

func TestStackZeroValueIsPositive(t *testing.T) {
	st := plot.NewStacker()
	s1 := &plot.BarSeries{Name: "s1", Stacked: true}
	slot := st.SeriesSlot(s1)

	assert.Equal(t, float32(0), st.StackPoint(plot.Point{Category: 1, Value: 0}, slot))
	sv, total, err := st.Stack(plot.Point{Category: 1}, slot)
	require.NoError(t, err)
	assert.Equal(t, float32(0), sv.End)
	assert.Equal(t, float32(0), total.Positive)
}

func TestStackNotFound(t *testing.T) {
	st := plot.NewStacker()
	s1 := &plot.BarSeries{Name: "s1", Stacked: true}
	slot := st.SeriesSlot(s1)
	st.StackPoint(plot.Point{Category: 1, Value: 5}, slot)

	_, _, err := st.Stack(plot.Point{Category: 2}, slot)
	var nf *plot.StackNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, slot, nf.Slot)
	assert.Equal(t, float32(2), nf.Category)

	// an unassigned slot fails the same way instead of panicking
	_, _, err = st.Stack(plot.Point{Category: 1}, 9)
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 9, nf.Slot)
}

func TestStackIndependentCategories(t *testing.T) {
	st := plot.NewStacker()
	s1 := &plot.BarSeries{Name: "s1", Stacked: true}
	s2 := &plot.BarSeries{Name: "s2", Stacked: true}
	slot1 := st.SeriesSlot(s1)
	slot2 := st.SeriesSlot(s2)

	st.StackPoint(plot.Point{Category: 1, Value: 5}, slot1)
	st.StackPoint(plot.Point{Category: 2, Value: 7}, slot1)
	st.StackPoint(plot.Point{Category: 1, Value: 1}, slot2)

	sv, total, err := st.Stack(plot.Point{Category: 2}, slot1)
	require.NoError(t, err)
	assert.Equal(t, float32(7), sv.End)
	assert.Equal(t, float32(7), total.Positive)

	sv, total, err = st.Stack(plot.Point{Category: 1}, slot2)
	require.NoError(t, err)
	assert.Equal(t, float32(5), sv.Start)
	assert.Equal(t, float32(6), sv.End)
	assert.Equal(t, float32(6), total.Positive)
}
