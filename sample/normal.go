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

// Normal samples random values from the Normal (Gaussian)
// probability distribution with mean mu and standard deviation sigma.
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns an instance of Normal sampler.
// It returns an error if mu is not finite, or if sigma is
// negative or not finite.
func NewNormal(mu, sigma float64, src *Source) (*Normal, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, errors.Wrapf(ErrConstruction, "mean %v is not finite", mu)
	}
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		return nil, errors.Wrapf(ErrConstruction, "standard deviation %v is not a finite non-negative number", sigma)
	}

	return &Normal{
		dist: distuv.Normal{
			Mu:    mu,
			Sigma: sigma,
			Src:   src.src,
		},
	}, nil
}

// Sample samples a random value from the distribution.
func (n *Normal) Sample() (float64, error) {
	return n.dist.Rand(), nil
}

// NormalN returns n samples from the Normal distribution with
// mean mu and standard deviation sigma.
func NormalN(mu, sigma float64, n int, src *Source) ([]float64, error) {
	s, err := NewNormal(mu, sigma, src)
	if err != nil {
		return nil, err
	}

	return sampleN(s, n)
}

// sampleN collects n values from sampler s.
func sampleN(s Sampler, n int) ([]float64, error) {
	res := make([]float64, n)
	var err error
	for i := range res {
		res[i], err = s.Sample()
		if err != nil {
			return nil, errors.Wrap(err, "error while sampling")
		}
	}

	return res, nil
}
