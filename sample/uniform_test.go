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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformRange(t *testing.T) {
	src := sample.NewSeededSource(21)

	values, err := sample.RandIntN(1, 10, 1000, src)
	require.NoError(t, err)
	assert.Len(t, values, 1000)

	seen := make(map[int64]bool)
	for _, v := range values {
		assert.True(t, v >= 1 && v < 10, "value %d out of range", v)
		seen[v] = true
	}
	assert.Len(t, seen, 9, "all values of the range should appear")
}

func TestUniformRange_Wide(t *testing.T) {
	u, err := sample.NewUniformRange(math.MinInt64, math.MaxInt64, sample.NewSeededSource(22))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		v := u.SampleInt()
		assert.Less(t, v, int64(math.MaxInt64))
	}
}

func TestUniformRange_Invalid(t *testing.T) {
	src := sample.NewSeededSource(23)

	_, err := sample.NewUniformRange(10, 1, src)
	assert.ErrorIs(t, err, sample.ErrConstruction)
	_, err = sample.NewUniformRange(5, 5, src)
	assert.ErrorIs(t, err, sample.ErrConstruction)
	_, err = sample.RandIntN(10, 1, 100, src)
	assert.ErrorIs(t, err, sample.ErrConstruction)
}

func TestBit(t *testing.T) {
	b := sample.NewBit(sample.NewSeededSource(24))

	var ones int
	for i := 0; i < 1000; i++ {
		v, err := b.Sample()
		require.NoError(t, err)
		assert.Contains(t, []float64{0, 1}, v)
		ones += int(v)
	}
	assert.True(t, ones > 400 && ones < 600, "bit should be balanced, got %d ones", ones)
}
