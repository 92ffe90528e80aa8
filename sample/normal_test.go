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

package sample_test

import (
	"math"
	"testing"

	"github.com/fentec-project/numstat/sample"
	"github.com/fentec-project/numstat/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_Normal(t *testing.T) {
	src := sample.NewSeededSource(1)

	vec, err := sample.NormalN(10, 2, 10000, src)
	require.NoError(t, err)
	assert.Len(t, vec, 10000)

	me := stats.Mean(vec)
	sd := stats.StdDev(vec)
	// me should be around 10 and sd should be around 2
	assert.InDelta(t, 10, me, 0.1, "mean value of the normal distribution is off")
	assert.Equal(t, 2.0, math.Round(sd), "standard deviation of the normal distribution is off")
}

func TestSample_NormalZeroSigma(t *testing.T) {
	n, err := sample.NewNormal(3, 0, sample.NewSeededSource(2))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		v, err := n.Sample()
		require.NoError(t, err)
		assert.Equal(t, 3.0, v)
	}
}

func TestSample_NormalInvalid(t *testing.T) {
	src := sample.NewSeededSource(3)

	for _, c := range []struct{ mu, sigma float64 }{
		{0, -1},
		{0, math.NaN()},
		{0, math.Inf(1)},
		{math.NaN(), 1},
		{math.Inf(-1), 1},
	} {
		_, err := sample.NewNormal(c.mu, c.sigma, src)
		assert.ErrorIs(t, err, sample.ErrConstruction, "mu=%v sigma=%v", c.mu, c.sigma)
	}

	_, err := sample.NormalN(0, -1, 10, src)
	assert.ErrorIs(t, err, sample.ErrConstruction)
}
