// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package motion implements the animatable-property engine at the heart of
the chart renderer. Any drawable element embeds an [Animatable] and
registers its scalar fields as [Property] handles; on every frame the
renderer advances the element's logical clock and reads the properties,
which lazily evaluate any in-flight transition between the previously
shown value and the newly authored one.

All state is owned by the single goroutine driving the render pass;
there is no internal locking.
*/
package motion

import "time"

// Easing maps normalized transition progress in [0, 1] to an
// interpolation weight. The weight may leave [0, 1] for easings that
// overshoot, such as elastic or back curves. The curve mathematics is
// entirely up to the caller.
type Easing func(t float32) float32

// Linear is the identity easing, used when a [Spec] has none.
func Linear(t float32) float32 { return t }

// Spec describes how a property transitions to a newly set value.
// A nil Spec, or one with a zero Duration, means values apply
// immediately with no interpolation.
type Spec struct {
	// Duration is how long the transition takes. Zero disables animation.
	Duration time.Duration

	// Easing shapes the transition progress. nil means [Linear].
	Easing Easing

	// Delay postpones the start of the transition after a value is set.
	Delay time.Duration
}

// Animates reports whether the spec actually produces a transition.
func (sp *Spec) Animates() bool {
	return sp != nil && sp.Duration > 0
}

// ease applies the spec's easing function to the given normalized progress.
func (sp *Spec) ease(t float32) float32 {
	if sp == nil || sp.Easing == nil {
		return t
	}
	return sp.Easing(t)
}
