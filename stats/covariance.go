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

	"github.com/fentec-project/numstat/data"
	"github.com/pkg/errors"
)

// Covariance returns the 2x2 covariance matrix of samples x and y,
//
//	[ Var(x)    Cov(x,y) ]
//	[ Cov(y,x)  Var(y)   ]
//
// with every entry using n-1 as the denominator. The diagonal entries
// equal Variance(x) and Variance(y), and both off-diagonal entries
// hold the same value. Entries are NaN for samples with fewer than
// two values. It returns an error if x and y differ in length.
func Covariance[T Number](x, y []T) (data.Matrix, error) {
	if len(x) != len(y) {
		return nil, errors.Wrapf(ErrInvalidInput, "samples of length %d and %d should be of same length", len(x), len(y))
	}

	cov := math.NaN()
	if len(x) >= 2 {
		cov = sumProducts(x, y, Mean(x), Mean(y)) / float64(len(x)-1)
	}

	return pairMatrix(Variance(x), Variance(y), cov), nil
}

// Correlation returns the 2x2 Pearson correlation matrix of samples
// x and y. Its diagonal is always 1 and both off-diagonal entries
// hold Cov(x,y) / (StdDev(x) * StdDev(y)), which is NaN when either
// sample has zero or undefined variance.
// It returns an error if x and y differ in length.
func Correlation[T Number](x, y []T) (data.Matrix, error) {
	cov, err := Covariance(x, y)
	if err != nil {
		return nil, err
	}

	var r float64
	sx, sy := math.Sqrt(cov[0][0]), math.Sqrt(cov[1][1])
	if sx == 0 || sy == 0 {
		r = math.NaN()
	} else {
		r = cov[0][1] / (sx * sy)
	}

	return pairMatrix(1, 1, r), nil
}

// pairMatrix builds the symmetric matrix [[a, c], [c, b]].
func pairMatrix(a, b, c float64) data.Matrix {
	return data.Matrix{
		data.Vector{a, c},
		data.Vector{c, b},
	}
}
