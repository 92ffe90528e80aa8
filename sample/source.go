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
	"crypto/rand"
	mrand "math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source is the source of randomness shared by the samplers of this
// package. A Source is not safe for concurrent use; use one Source
// per goroutine.
type Source struct {
	src mrand.Source
	rng *mrand.Rand
}

func newSource(src mrand.Source) *Source {
	return &Source{
		src: src,
		rng: mrand.New(src),
	}
}

// NewSource returns a Source seeded from crypto/rand.
// It returns an error if the seed cannot be read.
func NewSource() (*Source, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, errors.Wrap(err, "cannot seed random source")
	}

	return newSource(mrand.NewChaCha8(seed)), nil
}

// NewSeededSource returns a Source whose stream is fully determined
// by seed.
func NewSeededSource(seed uint64) *Source {
	return newSource(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uint64 returns a uniformly distributed 64-bit value. It makes
// *Source usable wherever a math/rand/v2 Source is expected.
func (s *Source) Uint64() uint64 {
	return s.src.Uint64()
}

// Float64 returns a uniformly distributed value from [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// IntN returns a uniformly distributed value from [0, n).
// It panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// Index returns a random index into weights, chosen with probability
// proportional to its weight. Weights must be non-negative and
// must not all be zero.
func (s *Source) Index(weights []float64) int {
	return int(distuv.NewCategorical(weights, s.src).Rand())
}

// uint64N returns a uniformly distributed value from [0, n).
func (s *Source) uint64N(n uint64) uint64 {
	return s.rng.Uint64N(n)
}
