// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/emberchart/ember/motion"

// BarGeom is the animatable rectangle geometry of one bar segment.
// A renderer creates one per visible data point, attaches a transition
// spec, and on every frame advances the clock and reads the four
// properties to draw. Setting new layout targets after a data change
// makes the bar glide there instead of jumping.
type BarGeom struct {
	motion.Animatable

	X      *motion.Property
	Y      *motion.Property
	Width  *motion.Property
	Height *motion.Property
}

// NewBarGeom returns bar geometry at the given initial layout.
func NewBarGeom(x, y, width, height float32) *BarGeom {
	bg := &BarGeom{}
	bg.Init()
	bg.X = bg.MustRegister("x", x)
	bg.Y = bg.MustRegister("y", y)
	bg.Width = bg.MustRegister("width", width)
	bg.Height = bg.MustRegister("height", height)
	return bg
}

// SetBounds sets new layout targets for all four properties,
// transitioning if a spec is attached.
func (bg *BarGeom) SetBounds(x, y, width, height float32) {
	bg.X.Set(x)
	bg.Y.Set(y)
	bg.Width.Set(width)
	bg.Height.Set(height)
}

// Segment is an animatable line segment, the geometry of one span of a
// line-type series. Consecutive segments are chained with
// [Segment.Follows] so a newly added segment starts exactly where its
// predecessor ends, including any in-flight animation.
type Segment struct {
	motion.Animatable

	X1 *motion.Property
	Y1 *motion.Property
	X2 *motion.Property
	Y2 *motion.Property
}

// NewSegment returns a segment spanning the given endpoints.
func NewSegment(x1, y1, x2, y2 float32) *Segment {
	sg := &Segment{}
	sg.Init()
	sg.X1 = sg.MustRegister("x1", x1)
	sg.Y1 = sg.MustRegister("y1", y1)
	sg.X2 = sg.MustRegister("x2", x2)
	sg.Y2 = sg.MustRegister("y2", y2)
	return sg
}

// Follows seeds this segment's start point from the predecessor's end
// point, cloning value and transition state so continuity of animation
// is preserved across the joint. It is a one-shot operation: the
// predecessor is read once and no reference to it is kept.
func (sg *Segment) Follows(prev *Segment) error {
	if prev == nil {
		return nil
	}
	if err := sg.X1.CopyFrom(prev.X2); err != nil {
		return err
	}
	return sg.Y1.CopyFrom(prev.Y2)
}
