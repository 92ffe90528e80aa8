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

	"github.com/fentec-project/numstat/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	l := 3
	sampler, err := sample.NewNormal(0, 100, sample.NewSeededSource(1))
	require.NoError(t, err)

	x, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	y, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	add := x.Add(y)
	sub := x.Sub(y)
	mul, err := x.Dot(y)
	if err != nil {
		t.Fatalf("Error during vector multiplication: %v", err)
	}

	innerProd := 0.0
	for i := 0; i < 3; i++ {
		assert.Equal(t, x[i]+y[i], add[i], "coordinates should sum correctly")
		assert.Equal(t, x[i]-y[i], sub[i], "coordinates should subtract correctly")
		innerProd += x[i] * y[i]
	}

	assert.InDelta(t, innerProd, mul, 1e-9, "inner product should calculate correctly")

	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	det := NewRandomDetVector(100, &key)
	assert.Equal(t, det, NewRandomDetVector(100, &key))
	for _, v := range det {
		assert.True(t, v >= 0 && v < 1)
	}
}

func TestVector_DotMismatch(t *testing.T) {
	_, err := Vector{1, 2}.Dot(Vector{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVector_Elementwise(t *testing.T) {
	v := Vector{1, 2, 3}

	assert.Equal(t, Vector{2, 4, 6}, v.MulScalar(2))
	assert.Equal(t, Vector{1, 4, 9}, v.Apply(func(x float64) float64 { return x * x }))
	assert.Equal(t, 6.0, v.Sum())
	assert.Equal(t, Vector{7, 7}, NewConstantVector(2, 7))

	c := v.Copy()
	c[0] = 100
	assert.Equal(t, 1.0, v[0], "copy should not share storage")

	assert.Equal(t, "[1 2 3]", v.String())
	assert.Equal(t, "[0.5 NaN]", Vector{0.5, nan()}.String())
}
