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

// Package sample includes samplers for sampling random values
// from different probability distributions, and for drawing
// random subsets of a finite population.
//
// Package sample provides the Sampler interface along with
// Normal, Binomial and UniformRange implementations of it.
// All of them draw their randomness from a Source, which is
// passed explicitly so that tests can use a seeded or
// deterministic stream instead of a cryptographically seeded one.
//
// Choice draws elements from a population with or without
// replacement, optionally following a per-element weight vector.
// Without replacement, the probabilities of the remaining elements
// are renormalized after every draw so that they keep summing to 1.
//
// Implementations of the Sampler interface can be used,
// for instance, to fill vectors with the desired random data.
package sample

import "github.com/fentec-project/numstat/internal"

// ErrInvalidInput is returned when the population, weights or
// requested sample size are inconsistent.
var ErrInvalidInput = internal.ErrInvalidInput

// ErrConstruction is returned when a sampler is constructed with
// invalid distribution parameters.
var ErrConstruction = internal.ErrConstruction

// Sampler samples random values from some probability distribution.
type Sampler interface {
	Sample() (float64, error)
}
