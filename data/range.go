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

package data

import (
	"math"

	"github.com/pkg/errors"
)

// maxRangeLen bounds the number of values Arange generates.
const maxRangeLen = 1 << 31

// Arange returns evenly spaced values start, start+step, ...
// within the half-open interval [start, stop).
// The result is empty if step points away from stop.
// It returns an error if step is zero or any argument is not finite.
func Arange(start, stop, step float64) (Vector, error) {
	if !isFinite(start) || !isFinite(stop) || !isFinite(step) {
		return nil, errors.Wrap(ErrInvalidInput, "range bounds and step should be finite")
	}
	if step == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "range step should not be zero")
	}

	n := math.Ceil((stop - start) / step)
	if n <= 0 {
		return Vector{}, nil
	}
	if n > maxRangeLen {
		return nil, errors.Wrapf(ErrInvalidInput, "range of %g values is too long", n)
	}

	res := make(Vector, int(n))
	for i := range res {
		res[i] = start + float64(i)*step
	}

	return res, nil
}

// Linspace returns num evenly spaced values over the closed
// interval [start, stop]. The last value is exactly stop.
// It returns an error if num is negative or a bound is not finite.
func Linspace(start, stop float64, num int) (Vector, error) {
	if num < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "number of values %d is negative", num)
	}
	if !isFinite(start) || !isFinite(stop) {
		return nil, errors.Wrap(ErrInvalidInput, "range bounds should be finite")
	}

	res := make(Vector, num)
	switch num {
	case 0:
		return res, nil
	case 1:
		res[0] = start
		return res, nil
	}

	step := (stop - start) / float64(num-1)
	for i := range res {
		res[i] = start + float64(i)*step
	}
	res[num-1] = stop

	return res, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
