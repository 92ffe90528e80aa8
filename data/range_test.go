/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArange(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	for _, c := range []struct {
		start, stop, step float64
		want              Vector
	}{
		{0, 5, 1, Vector{0, 1, 2, 3, 4}},
		{0, 1, 0.25, Vector{0, 0.25, 0.5, 0.75}},
		{1, 2.1, 0.5, Vector{1, 1.5, 2}},
		{5, 0, -2, Vector{5, 3, 1}},
		{0, 5, -1, Vector{}},
		{3, 3, 1, Vector{}},
	} {
		got, err := Arange(c.start, c.stop, c.step)
		require.NoError(t, err)
		if diff := cmp.Diff(c.want, got, approx); diff != "" {
			t.Errorf("Arange(%v, %v, %v) mismatch (-want +got):\n%s", c.start, c.stop, c.step, diff)
		}
	}
}

func TestArange_Invalid(t *testing.T) {
	_, err := Arange(0, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Arange(0, nan(), 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Arange(0, 1e300, 1e-300)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLinspace(t *testing.T) {
	got, err := Linspace(0, 1, 5)
	require.NoError(t, err)
	if diff := cmp.Diff(Vector{0, 0.25, 0.5, 0.75, 1}, got); diff != "" {
		t.Errorf("Linspace mismatch (-want +got):\n%s", diff)
	}

	got, err = Linspace(0, 0.3, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.3, got[3], "endpoint should be exact")

	got, err = Linspace(2, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, Vector{2}, got)

	got, err = Linspace(2, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Linspace(0, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
