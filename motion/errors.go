// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motion

// DuplicateNameError is returned by [Animatable.Register] when a
// property with the same name is already registered on the owner.
// It indicates a bug in the constructing geometry code.
type DuplicateNameError struct {
	// Name is the property name that was registered twice.
	Name string
}

func (e *DuplicateNameError) Error() string {
	return "motion: property name already registered: " + e.Name
}

// UnknownPropertyError is returned by named-property operations such as
// [Animatable.CompleteTransition] when a requested name is not
// registered on the owner. It indicates a bug in the calling code and
// should surface immediately rather than being swallowed.
type UnknownPropertyError struct {
	// Name is the property name that is not registered.
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return "motion: unknown property: " + e.Name
}
