// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motion

import (
	"time"

	"github.com/jinzhu/copier"

	"github.com/emberchart/ember/math32"
)

// State is the transition lifecycle state of a [Property].
type State int32

const (
	// Idle means no transition is attached or in flight; the property
	// always evaluates to its raw authored value.
	Idle State = iota

	// Animating means a transition toward [Property.To] is in flight.
	Animating

	// Completed means the last transition has reached its target value.
	// A new [Property.Set] with an attached spec starts animating again.
	Completed
)

func (st State) String() string {
	switch st {
	case Idle:
		return "Idle"
	case Animating:
		return "Animating"
	case Completed:
		return "Completed"
	}
	return "Invalid"
}

// Property is a single named, animatable scalar value owned by exactly
// one [Animatable]. It decouples the value an author wants from the
// value currently shown, interpolating between them over the owner's
// logical clock. Handles are obtained from [Animatable.Register] and
// are the primary access path; by-name lookup via [Animatable.Property]
// exists for generic tooling.
type Property struct {
	// Name is the property name, unique within the owning [Animatable].
	Name string `copier:"-"`

	// Raw is the authored target value, independent of any transition.
	Raw float32

	// From is the evaluated value snapshotted when the current
	// transition started.
	From float32

	// To is the target value of the current transition.
	To float32

	// Start is the owner-clock time at which the current transition
	// begins, including any spec delay.
	Start time.Duration

	// State is the transition lifecycle state.
	State State

	// Spec is the attached animation spec, or nil for none.
	Spec *Spec

	owner *Animatable
}

// Owner returns the [Animatable] this property is registered on.
func (p *Property) Owner() *Animatable { return p.owner }

// IsCompleted reports whether the last transition reached its target.
func (p *Property) IsCompleted() bool { return p.State == Completed }

// Get evaluates and returns the value shown at the owner's current
// time. With no transition in flight it returns the raw value directly.
// During a transition it returns From before the transition start,
// To at or after completion (marking the property completed), and the
// eased interpolation in between. Progress is clamped to [0, 1].
func (p *Property) Get() float32 {
	switch p.State {
	case Idle:
		return p.Raw
	case Completed:
		return p.To
	}
	if !p.Spec.Animates() {
		// spec was detached out from under an in-flight transition
		p.State = Idle
		return p.Raw
	}
	now := p.owner.currentTime
	// at the exact start the shown value is From, even for easings
	// with ease(0) != 0
	if now <= p.Start {
		return p.From
	}
	if now >= p.Start+p.Spec.Duration {
		p.State = Completed
		return p.To
	}
	progress := math32.Clamp01(float32(now-p.Start) / float32(p.Spec.Duration))
	return math32.Lerp(p.From, p.To, p.Spec.ease(progress))
}

// Set sets a new authored value. If an animation spec with a nonzero
// duration is attached, the currently shown value is snapshotted as the
// transition start point and the property begins animating toward v
// from the owner's current time (plus any spec delay). Otherwise v
// applies immediately.
func (p *Property) Set(v float32) {
	if p.Spec.Animates() {
		p.From = p.Get()
		p.To = v
		p.Raw = v
		p.Start = p.owner.currentTime + p.Spec.Delay
		p.State = Animating
		return
	}
	p.Raw = v
	p.From = v
	p.To = v
	p.State = Idle
}

// freeze pins the property at its currently shown value and detaches
// any transition.
func (p *Property) freeze() {
	v := p.Get()
	p.Raw = v
	p.From = v
	p.To = v
	p.Spec = nil
	p.State = Idle
}

// complete forces an in-flight transition to its target value.
// Idle properties are left untouched; completing twice is a no-op.
func (p *Property) complete() {
	if p.State == Idle || !p.Spec.Animates() {
		return
	}
	p.State = Completed
}

// setSpec attaches the given spec, or detaches animation entirely when
// the spec does not animate (nil or zero duration).
func (p *Property) setSpec(sp *Spec) {
	if !sp.Animates() {
		p.Spec = nil
		p.State = Idle
		return
	}
	p.Spec = sp
}

// CopyFrom clones the value and transition state of the given property
// verbatim, preserving this property's name and owner. It is used to
// chain geometry so a new element starts exactly where its predecessor
// ends, preserving continuity of animation. The source is read-only;
// no reference to it is retained.
func (p *Property) CopyFrom(src *Property) error {
	// copier clones unexported fields between identical types, which
	// would rebind owner to the source's clock
	own := p.owner
	err := copier.Copy(p, src)
	p.owner = own
	return err
}
