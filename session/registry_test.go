// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register("cube", fakeCtor)
	reg.Register("sphere", fakeCtor)
	reg.Register("basics", fakeCtor)
	assert.Equal(t, []string{"cube", "sphere", "basics"}, reg.IDs())
	assert.Equal(t, 3, reg.Len())
	assert.True(t, reg.Has("sphere"))
	assert.False(t, reg.Has("torus"))

	_, err := reg.Get("torus")
	assert.ErrorIs(t, err, ErrUnknownExample)
	assert.Contains(t, err.Error(), "torus")

	called := false
	reg.Register("sphere", func(ctx context.Context, env *Env) (*Handle, error) {
		called = true
		return nil, nil
	})
	assert.Equal(t, []string{"cube", "sphere", "basics"}, reg.IDs(), "re-registering keeps order")
	ctor, err := reg.Get("sphere")
	require.NoError(t, err)
	ctor(context.Background(), &Env{})
	assert.True(t, called, "last registration wins")
}
