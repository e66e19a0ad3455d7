// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 scalar math used throughout the
// chart layout and animation code. These are mostly just wrappers around
// chewxy/math32, which has some optimized implementations.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Floating-point limit values.
const (
	MaxFloat32             = math.MaxFloat32
	SmallestNonzeroFloat32 = math.SmallestNonzeroFloat32
)

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// IsNaN reports whether x is a "not-a-number" value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Clamp01 clamps x to the closed interval [0, 1], the domain of
// normalized animation progress.
func Clamp01(x float32) float32 {
	return Clamp(x, 0, 1)
}

// Lerp returns the linear interpolation between start and stop in
// proportion to amount. The amount is not clamped, so easing functions
// that overshoot produce values beyond the [start, stop] interval.
func Lerp(start, stop, amount float32) float32 {
	return (stop-start)*amount + start
}

// InverseLerp returns the proportion at which value lies between start
// and stop, the inverse of [Lerp]. Returns 0 if start == stop.
func InverseLerp(start, stop, value float32) float32 {
	if start == stop {
		return 0
	}
	return (value - start) / (stop - start)
}
