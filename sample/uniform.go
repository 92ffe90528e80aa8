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

package sample

import (
	"github.com/pkg/errors"
)

// UniformRange samples random integers from the interval [min, max).
type UniformRange struct {
	min int64
	max int64
	src *Source
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values and
// returns an error if min >= max.
func NewUniformRange(min, max int64, src *Source) (*UniformRange, error) {
	if min >= max {
		return nil, errors.Wrapf(ErrConstruction, "empty range [%d, %d)", min, max)
	}

	return &UniformRange{
		min: min,
		max: max,
		src: src,
	}, nil
}

// SampleInt samples a random integer from [min, max).
func (u *UniformRange) SampleInt() int64 {
	// the span is computed in uint64 so that ranges wider than
	// math.MaxInt64 do not overflow
	span := uint64(u.max) - uint64(u.min)
	return int64(uint64(u.min) + u.src.uint64N(span))
}

// Sample samples a random integer from [min, max) and returns it
// as a float64.
func (u *UniformRange) Sample() (float64, error) {
	return float64(u.SampleInt()), nil
}

// NewBit returns an instance of UniformRange sampling a single
// random bit (value 0 or 1).
func NewBit(src *Source) *UniformRange {
	u, _ := NewUniformRange(0, 2, src)
	return u
}

// RandIntN returns n random integers from [min, max).
// It returns an error if min >= max.
func RandIntN(min, max int64, n int, src *Source) ([]int64, error) {
	u, err := NewUniformRange(min, max, src)
	if err != nil {
		return nil, err
	}

	res := make([]int64, n)
	for i := range res {
		res[i] = u.SampleInt()
	}

	return res, nil
}
