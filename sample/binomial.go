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
	"gonum.org/v1/gonum/stat/distuv"
)

// Binomial samples the number of successes in n independent
// Bernoulli trials, each succeeding with probability p.
type Binomial struct {
	n    uint64
	p    float64
	dist distuv.Binomial
}

// NewBinomial returns an instance of Binomial sampler.
// It returns an error if n is zero or p is outside [0, 1].
func NewBinomial(n uint64, p float64, src *Source) (*Binomial, error) {
	if n == 0 {
		return nil, errors.Wrap(ErrConstruction, "number of trials must be positive")
	}
	if !(p >= 0 && p <= 1) {
		return nil, errors.Wrapf(ErrConstruction, "success probability %v is outside [0, 1]", p)
	}

	return &Binomial{
		n: n,
		p: p,
		dist: distuv.Binomial{
			N:   float64(n),
			P:   p,
			Src: src.src,
		},
	}, nil
}

// SampleCount samples the number of successes.
func (b *Binomial) SampleCount() uint64 {
	// degenerate distributions are resolved directly
	switch b.p {
	case 0:
		return 0
	case 1:
		return b.n
	}

	k := math.Round(b.dist.Rand())
	if k < 0 {
		return 0
	}
	if k > float64(b.n) {
		return b.n
	}

	return uint64(k)
}

// Sample samples the number of successes and returns it as a float64.
func (b *Binomial) Sample() (float64, error) {
	return float64(b.SampleCount()), nil
}

// BinomialN returns size samples from the Binomial distribution
// with n trials and success probability p.
func BinomialN(n uint64, p float64, size int, src *Source) ([]uint64, error) {
	b, err := NewBinomial(n, p, src)
	if err != nil {
		return nil, err
	}

	res := make([]uint64, size)
	for i := range res {
		res[i] = b.SampleCount()
	}

	return res, nil
}
