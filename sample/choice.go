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
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Choice returns size elements randomly chosen from population,
// in the order they were drawn.
//
// If replace is true, every element is drawn independently from the
// same distribution and may appear more than once. Otherwise every
// drawn element is removed from further consideration, and size must
// not exceed the length of population.
//
// If weights is nil, every element is equally likely. Otherwise
// weights must have the same length as population and hold finite,
// non-negative values with a positive sum; they are normalized to
// probabilities before the first draw. Without replacement, at least
// size of them must be strictly positive.
//
// All the checks are performed before anything is drawn, so on
// error no elements are returned.
func Choice[T any](src *Source, population []T, size int, replace bool, weights []float64) ([]T, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "sample size %d is negative", size)
	}
	if weights != nil && len(weights) != len(population) {
		return nil, errors.Wrapf(ErrInvalidInput,
			"weights length %d differs from population length %d", len(weights), len(population))
	}
	if !replace && size > len(population) {
		return nil, errors.Wrapf(ErrInvalidInput,
			"cannot draw %d elements without replacement from a population of %d", size, len(population))
	}

	res := make([]T, 0, size)
	if size == 0 {
		return res, nil
	}

	p, err := probabilities(len(population), weights)
	if err != nil {
		return nil, err
	}

	if replace {
		dist := distuv.NewCategorical(p, src.src)
		for i := 0; i < size; i++ {
			res = append(res, population[int(dist.Rand())])
		}
		return res, nil
	}

	if positive := countPositive(p); positive < size {
		return nil, errors.Wrapf(ErrInvalidInput,
			"cannot draw %d elements without replacement when only %d have positive weight", size, positive)
	}

	state := newProbabilityState(p)
	for i := 0; i < size; i++ {
		res = append(res, population[state.draw(src)])
	}

	return res, nil
}

// probabilities returns the probability of every population index.
// A nil weights yields the uniform distribution over n elements.
func probabilities(n int, weights []float64) ([]float64, error) {
	if n == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "cannot draw from an empty population")
	}

	p := make([]float64, n)
	if weights == nil {
		for i := range p {
			p[i] = 1 / float64(n)
		}
		return p, nil
	}

	for i, w := range weights {
		if !(w >= 0) || math.IsInf(w, 1) {
			return nil, errors.Wrapf(ErrInvalidInput, "weight %v at index %d is not a finite non-negative number", w, i)
		}
	}
	total := floats.Sum(weights)
	if !(total > 0) || math.IsInf(total, 1) {
		return nil, errors.Wrapf(ErrInvalidInput, "weights sum to %v", total)
	}
	for i, w := range weights {
		p[i] = w / total
	}

	return p, nil
}

func countPositive(p []float64) int {
	n := 0
	for _, v := range p {
		if v > 0 {
			n++
		}
	}

	return n
}

// probabilityState holds the population indices that have not been
// drawn yet together with their current probabilities. The
// probabilities of the remaining indices always sum to 1.
type probabilityState struct {
	indices []int
	masses  []float64
}

func newProbabilityState(p []float64) *probabilityState {
	indices := make([]int, len(p))
	for i := range indices {
		indices[i] = i
	}

	return &probabilityState{
		indices: indices,
		masses:  append([]float64(nil), p...),
	}
}

// draw draws a population index from the current distribution and
// removes it from further draws.
func (s *probabilityState) draw(src *Source) int {
	k := src.Index(s.masses)
	idx := s.indices[k]
	s.remove(k)

	return idx
}

// remove drops the k-th remaining index and rescales the masses of
// the others by 1/(1-p), where p is the mass of the dropped index.
func (s *probabilityState) remove(k int) {
	p := s.masses[k]

	last := len(s.masses) - 1
	s.indices[k] = s.indices[last]
	s.masses[k] = s.masses[last]
	s.indices = s.indices[:last]
	s.masses = s.masses[:last]

	denom := 1 - p
	if denom <= 0 {
		// all the mass was concentrated on the dropped index up to
		// rounding; rescale by what is actually left
		denom = floats.Sum(s.masses)
	}
	if denom <= 0 {
		return
	}
	for i := range s.masses {
		s.masses[i] /= denom
	}
}
