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

// Package stats computes descriptive statistics of numeric samples:
// mean, variance, standard deviation, skewness, and the covariance
// and correlation matrices of a pair of samples.
//
// A mathematically undefined result, such as the mean of an empty
// sample or the variance of a single value, is reported as NaN
// rather than as an error. NaN propagates through further
// arithmetic, so callers test the result with math.IsNaN instead
// of checking sample lengths up front. Errors are returned only
// for misuse, namely samples of different lengths where a pair
// is expected.
//
// Variance, StdDev and Covariance use the unbiased n-1 denominator.
// Skewness standardizes the third central moment with the population
// (n denominator) variance, available separately as PopulationVariance.
package stats

import (
	"github.com/fentec-project/numstat/internal"
	"golang.org/x/exp/constraints"
)

// ErrInvalidInput is returned when a pair of samples have
// different lengths.
var ErrInvalidInput = internal.ErrInvalidInput

// Number is the set of types whose samples can be described.
type Number interface {
	constraints.Integer | constraints.Float
}
