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

package stats

import (
	"math"
)

// Sum returns the sum of the values of x.
func Sum[T Number](x []T) float64 {
	var s float64
	for _, v := range x {
		s += float64(v)
	}

	return s
}

// Mean returns the arithmetic mean of x.
// It returns NaN for an empty sample.
func Mean[T Number](x []T) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	return Sum(x) / float64(len(x))
}

// Variance returns the sample variance of x, using n-1
// as the denominator. It returns NaN for samples with
// fewer than two values.
func Variance[T Number](x []T) float64 {
	if len(x) < 2 {
		return math.NaN()
	}

	return sumSquares(x, Mean(x)) / float64(len(x)-1)
}

// StdDev returns the sample standard deviation of x, the square
// root of Variance. It returns NaN exactly when Variance does.
func StdDev[T Number](x []T) float64 {
	return math.Sqrt(Variance(x))
}

// PopulationVariance returns the variance of x using n as the
// denominator. It returns NaN for an empty sample.
func PopulationVariance[T Number](x []T) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	return sumSquares(x, Mean(x)) / float64(len(x))
}

// Skewness returns the third standardized moment of x,
//
//	(1/n) Σ (x_i - mean)^3 / σ^3,
//
// where σ is the square root of PopulationVariance, not of Variance.
// It returns NaN for empty and constant samples.
func Skewness[T Number](x []T) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	n := float64(len(x))
	mean := Mean(x)
	var m2, m3 float64
	for _, v := range x {
		d := float64(v) - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return math.NaN()
	}

	return m3 / math.Pow(m2, 1.5)
}

// sumSquares returns the sum of squared deviations of x from mean.
func sumSquares[T Number](x []T, mean float64) float64 {
	var s float64
	for _, v := range x {
		d := float64(v) - mean
		s += d * d
	}

	return s
}

// sumProducts returns the sum of products of the deviations of x
// and y from their means. x and y must have the same length.
func sumProducts[T Number](x, y []T, meanX, meanY float64) float64 {
	var s float64
	for i := range x {
		s += (float64(x[i]) - meanX) * (float64(y[i]) - meanY)
	}

	return s
}
