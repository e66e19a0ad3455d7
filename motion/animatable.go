// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motion

import (
	"time"

	"github.com/emberchart/ember/base/errors"
	"github.com/emberchart/ember/base/keylist"
)

// NeverRendered is the sentinel value of an [Animatable] clock that has
// not yet been advanced by a render pass.
const NeverRendered = time.Duration(-1)

// Animatable owns a named collection of [Property] values and the
// logical clock driving their interpolation. Drawable geometry types
// embed Animatable and register their scalar fields during
// construction. [Animatable.Init] must be called before use; the
// constructors of embedding types do this.
type Animatable struct {
	// Valid indicates whether the owning geometry currently represents
	// real, drawable data. Invalid geometry is eligible for removal by
	// the renderer once its transitions finish; removal itself is the
	// renderer's job, not this package's.
	Valid bool

	// RemoveOnCompleted hints to the renderer that once Valid is false
	// and all transitions have completed, the object may be discarded.
	RemoveOnCompleted bool

	// currentTime is the logical timestamp all owned properties
	// evaluate against. It starts at [NeverRendered].
	currentTime time.Duration

	// props is the ordered registry of owned properties.
	props keylist.List[string, *Property]
}

// NewAnimatable returns a new initialized [Animatable].
func NewAnimatable() *Animatable {
	an := &Animatable{}
	an.Init()
	return an
}

// Init initializes the animatable state: the object is valid and has
// never been rendered. Embedding types must call this in their
// constructors before registering properties.
func (an *Animatable) Init() {
	an.Valid = true
	an.currentTime = NeverRendered
}

// Register registers a new named property with the given initial
// value and returns its handle, bound to this owner. It is called once
// per field during construction. A [DuplicateNameError] is returned if
// the name is already registered.
func (an *Animatable) Register(name string, initial float32) (*Property, error) {
	p := &Property{
		Name:  name,
		Raw:   initial,
		From:  initial,
		To:    initial,
		owner: an,
	}
	if err := an.props.Add(name, p); err != nil {
		return nil, &DuplicateNameError{Name: name}
	}
	return p, nil
}

// MustRegister is a convenience wrapper around [Animatable.Register]
// for use in constructors with compile-time-known names, where a
// duplicate is an unrecoverable bug.
func (an *Animatable) MustRegister(name string, initial float32) *Property {
	return errors.Must1(an.Register(name, initial))
}

// Property returns the property registered under the given name, for
// generic by-name tooling. Handle access from [Animatable.Register] is
// the primary path. An [UnknownPropertyError] is returned for an
// unregistered name.
func (an *Animatable) Property(name string) (*Property, error) {
	p, ok := an.props.AtTry(name)
	if !ok {
		return nil, &UnknownPropertyError{Name: name}
	}
	return p, nil
}

// Properties returns all registered properties in registration order.
// The returned slice is the internal one and must not be modified.
func (an *Animatable) Properties() []*Property {
	return an.props.Values
}

// CurrentTime returns the logical clock the properties evaluate
// against, or [NeverRendered] if no render pass has set it yet.
func (an *Animatable) CurrentTime() time.Duration {
	return an.currentTime
}

// SetCurrentTime sets the logical clock. The renderer calls this once
// per frame before reading any properties. Timestamps are expected to
// be monotonically increasing across frames; evaluation clamps
// progress, so out-of-range times are never rejected.
func (an *Animatable) SetCurrentTime(t time.Duration) {
	an.currentTime = t
}

// Rendered reports whether the clock has been advanced off the
// [NeverRendered] sentinel.
func (an *Animatable) Rendered() bool {
	return an.currentTime != NeverRendered
}

// named resolves the given property names, or all registered
// properties if none are given, in registration order. An
// [UnknownPropertyError] naming the first offending name is returned
// if any requested name is not registered.
func (an *Animatable) named(names []string) ([]*Property, error) {
	if len(names) == 0 {
		return an.props.Values, nil
	}
	ps := make([]*Property, len(names))
	for i, name := range names {
		p, ok := an.props.AtTry(name)
		if !ok {
			return nil, &UnknownPropertyError{Name: name}
		}
		ps[i] = p
	}
	return ps, nil
}

// SetTransition attaches the given animation spec to the named
// properties, or to all registered properties if no names are given.
// A nil spec or one with zero duration clears any attached animation
// instead. Transitions begin on the next [Property.Set] call.
func (an *Animatable) SetTransition(sp *Spec, names ...string) error {
	ps, err := an.named(names)
	if err != nil {
		return err
	}
	for _, p := range ps {
		p.setSpec(sp)
	}
	return nil
}

// RemoveTransition detaches animation from the named properties (or
// all), freezing each at its currently evaluated value.
func (an *Animatable) RemoveTransition(names ...string) error {
	ps, err := an.named(names)
	if err != nil {
		return err
	}
	for _, p := range ps {
		p.freeze()
	}
	return nil
}

// CompleteTransition forces the named properties (or all) to their
// target values immediately. Properties with no transition in flight
// are silently skipped, so completing twice is harmless. An
// [UnknownPropertyError] is returned if any requested name is not
// registered, in which case nothing is modified.
func (an *Animatable) CompleteTransition(names ...string) error {
	ps, err := an.named(names)
	if err != nil {
		return err
	}
	for _, p := range ps {
		p.complete()
	}
	return nil
}

// Completed reports whether every owned property is idle or has
// finished its transition as of the current clock. Together with Valid
// and RemoveOnCompleted this is what a renderer checks to decide
// whether invalid geometry can be dropped.
func (an *Animatable) Completed() bool {
	for _, p := range an.props.Values {
		p.Get()
		if p.State == Animating {
			return false
		}
	}
	return true
}

// CopyPropertiesFrom clones the value and transition state of every
// property of the given animatable into the same-named properties of
// this one, via [Property.CopyFrom]. Properties of other that are not
// registered here produce an [UnknownPropertyError].
func (an *Animatable) CopyPropertiesFrom(other *Animatable) error {
	for _, sp := range other.props.Values {
		p, ok := an.props.AtTry(sp.Name)
		if !ok {
			return &UnknownPropertyError{Name: sp.Name}
		}
		if err := p.CopyFrom(sp); err != nil {
			return err
		}
	}
	return nil
}
