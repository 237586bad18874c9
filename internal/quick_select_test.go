/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickSelect(t *testing.T) {
	testCases := []struct {
		name     string
		arr      []uint64
		lo       int
		hi       int
		pivot    int
		expected uint64
	}{
		{name: "middle", arr: []uint64{3, 1, 4, 1, 5, 9, 2, 6}, lo: 0, hi: 7, pivot: 4, expected: 4},
		{name: "minimum", arr: []uint64{3, 1, 4, 1, 5, 9, 2, 6}, lo: 0, hi: 7, pivot: 0, expected: 1},
		{name: "maximum", arr: []uint64{3, 1, 4, 1, 5, 9, 2, 6}, lo: 0, hi: 7, pivot: 7, expected: 9},
		{name: "single element", arr: []uint64{42}, lo: 0, hi: 0, pivot: 0, expected: 42},
		{name: "two elements", arr: []uint64{5, 3}, lo: 0, hi: 1, pivot: 1, expected: 5},
		{name: "sorted", arr: []uint64{1, 2, 3, 4, 5}, lo: 0, hi: 4, pivot: 2, expected: 3},
		{name: "reverse sorted", arr: []uint64{5, 4, 3, 2, 1}, lo: 0, hi: 4, pivot: 2, expected: 3},
		{name: "all equal", arr: []uint64{3, 3, 3, 3, 3}, lo: 0, hi: 4, pivot: 2, expected: 3},
		{name: "sub range", arr: []uint64{9, 8, 7, 6, 5, 4, 3, 2, 1}, lo: 2, hi: 6, pivot: 4, expected: 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			arr := slices.Clone(tc.arr)
			assert.Equal(t, tc.expected, QuickSelect(arr, tc.lo, tc.hi, tc.pivot))
		})
	}
}

func TestQuickSelectPartitions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	arr := make([]uint64, 1000)
	for i := range arr {
		arr[i] = rng.Uint64() >> 1
	}
	sorted := slices.Sorted(slices.Values(arr))

	const k = 256
	assert.Equal(t, sorted[k], QuickSelect(arr, 0, len(arr)-1, k))
	for i, v := range arr {
		if i < k {
			assert.LessOrEqual(t, v, arr[k])
		} else if i > k {
			assert.GreaterOrEqual(t, v, arr[k])
		}
	}
}
