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
	"strconv"
	"strings"

	"github.com/fentec-project/numstat/internal"
	"github.com/fentec-project/numstat/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidInput is returned when vectors or matrices have
// incompatible dimensions, or range parameters are malformed.
var ErrInvalidInput = internal.ErrInvalidInput

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, errors.Wrap(err, "error while sampling")
		}
	}

	return NewVector(vec), nil
}

// NewRandomDetVector returns a new Vector instance
// with (deterministic) random elements from [0, 1), produced
// by a pseudo-random generator determined by key.
func NewRandomDetVector(len int, key *[32]byte) Vector {
	src := sample.NewDetSource(key)
	vec := make([]float64, len)
	for i := range vec {
		vec[i] = src.Float64()
	}

	return NewVector(vec)
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = x * vi
	}

	return res
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	sum := make([]float64, len(v))

	for i, c := range v {
		sum[i] = c + other[i]
	}

	return NewVector(sum)
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	sub := make([]float64, len(v))
	for i, c := range v {
		sub[i] = c - other[i]
	}

	return sub
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, errors.Wrapf(ErrInvalidInput, "vectors of length %d and %d should be of same length", len(v), len(other))
	}

	return floats.Dot(v, other), nil
}

// Sum returns the sum of the elements of v.
func (v Vector) Sum() float64 {
	return floats.Sum(v)
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	strs := make([]string, len(v))
	for i, vi := range v {
		strs[i] = strconv.FormatFloat(vi, 'g', -1, 64)
	}
	return "[" + strings.Join(strs, " ") + "]"
}
