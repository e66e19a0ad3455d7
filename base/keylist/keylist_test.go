// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyList(t *testing.T) {
	kl := New[string, int]()
	assert.Equal(t, 0, kl.Len())

	assert.NoError(t, kl.Add("x", 1))
	assert.NoError(t, kl.Add("y", 2))
	assert.Error(t, kl.Add("x", 3))

	assert.Equal(t, 2, kl.Len())
	assert.Equal(t, 1, kl.At("x"))
	assert.Equal(t, 2, kl.At("y"))
	assert.Equal(t, 0, kl.At("missing"))

	v, ok := kl.AtTry("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, v)

	assert.True(t, kl.Contains("y"))
	assert.False(t, kl.Contains("z"))
	assert.Equal(t, 1, kl.IndexByKey("y"))
	assert.Equal(t, -1, kl.IndexByKey("z"))

	// Set replaces in place, preserving order.
	kl.Set("x", 10)
	assert.Equal(t, []string{"x", "y"}, kl.Keys)
	assert.Equal(t, []int{10, 2}, kl.Values)

	kl.Set("z", 3)
	assert.Equal(t, []string{"x", "y", "z"}, kl.Keys)

	kl.Reset()
	assert.Equal(t, 0, kl.Len())
}

func TestKeyListZeroValue(t *testing.T) {
	var kl List[string, string]
	kl.Set("a", "first")
	assert.Equal(t, "first", kl.At("a"))
	assert.Equal(t, 1, kl.Len())
}
