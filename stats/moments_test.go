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

package stats_test

import (
	"math"
	"testing"

	"github.com/fentec-project/numstat/sample"
	"github.com/fentec-project/numstat/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gonum "gonum.org/v1/gonum/stat"
)

func TestMean(t *testing.T) {
	assert.True(t, math.IsNaN(stats.Mean([]float64{})))
	assert.Equal(t, 42.0, stats.Mean([]float64{42}))
	assert.Equal(t, 2.0, stats.Mean([]float64{1, 2, 3}))
	assert.Equal(t, 3.0, stats.Mean([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 1.5, stats.Mean([]uint8{1, 2}))
}

func TestVariance(t *testing.T) {
	assert.True(t, math.IsNaN(stats.Variance([]float64{})))
	assert.True(t, math.IsNaN(stats.Variance([]float64{42})))
	assert.Equal(t, 2.5, stats.Variance([]float64{1, 2, 3, 4, 5}))
	assert.Equal(t, 0.0, stats.Variance([]int{7, 7, 7}))
}

func TestStdDev(t *testing.T) {
	assert.True(t, math.IsNaN(stats.StdDev([]float64{})))
	assert.True(t, math.IsNaN(stats.StdDev([]float64{42})))
	assert.Equal(t, 1.0, stats.StdDev([]float64{1, 2, 3}))
}

func TestStdDev_IsSqrtOfVariance(t *testing.T) {
	src := sample.NewSeededSource(1)
	for n := 2; n < 50; n++ {
		x, err := sample.NormalN(5, 3, n, src)
		require.NoError(t, err)
		assert.Equal(t, math.Sqrt(stats.Variance(x)), stats.StdDev(x))
	}
}

func TestPopulationVariance(t *testing.T) {
	assert.True(t, math.IsNaN(stats.PopulationVariance([]float64{})))
	assert.Equal(t, 0.0, stats.PopulationVariance([]float64{42}))
	assert.Equal(t, 2.0, stats.PopulationVariance([]float64{1, 2, 3, 4, 5}))
}

func TestSkewness(t *testing.T) {
	assert.Equal(t, 0.0, stats.Skewness([]float64{1, 2, 3, 4, 5}))
	assert.InDelta(t, 1.1547, stats.Skewness([]float64{6, 6, 6, 9}), 0.001)
	assert.InDelta(t, -1.1547, stats.Skewness([]int{6, 9, 9, 9}), 0.001)

	assert.True(t, math.IsNaN(stats.Skewness([]float64{})))
	assert.True(t, math.IsNaN(stats.Skewness([]float64{3, 3, 3})))
	assert.True(t, math.IsNaN(stats.Skewness([]float64{42})))
}

func TestMoments_AgainstGonum(t *testing.T) {
	src := sample.NewSeededSource(2)
	x, err := sample.NormalN(-4, 10, 1000, src)
	require.NoError(t, err)

	assert.InDelta(t, gonum.Mean(x, nil), stats.Mean(x), 1e-9)
	assert.InDelta(t, gonum.Variance(x, nil), stats.Variance(x), 1e-9)
	assert.InDelta(t, gonum.StdDev(x, nil), stats.StdDev(x), 1e-9)
	assert.InDelta(t, gonum.PopVariance(x, nil), stats.PopulationVariance(x), 1e-9)
}
