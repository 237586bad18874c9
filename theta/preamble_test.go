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

package theta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCompactPreLongs(t *testing.T) {
	testCases := []struct {
		name       string
		theta      uint64
		empty      bool
		numEntries uint32
		expected   uint8
	}{
		{name: "empty", theta: MaxTheta, empty: true, numEntries: 0, expected: 1},
		{name: "single entry exact", theta: MaxTheta, numEntries: 1, expected: 1},
		{name: "many entries exact", theta: MaxTheta, numEntries: 3, expected: 2},
		{name: "no entries exact not empty", theta: MaxTheta, numEntries: 0, expected: 2},
		{name: "single entry estimation", theta: MaxTheta / 2, numEntries: 1, expected: 3},
		{name: "many entries estimation", theta: MaxTheta / 2, numEntries: 100, expected: 3},
		{name: "sampled out", theta: MaxTheta / 1000, numEntries: 0, expected: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, computeCompactPreLongs(tc.theta, tc.empty, tc.numEntries))
		})
	}
}

func TestIsSingleItem(t *testing.T) {
	assert.True(t, isSingleItem(1, false, 1))
	assert.False(t, isSingleItem(1, true, 0))
	assert.False(t, isSingleItem(3, false, 1))
	assert.False(t, isSingleItem(2, false, 2))
}

func TestComputeCompactFlags(t *testing.T) {
	testCases := []struct {
		name       string
		empty      bool
		ordered    bool
		singleItem bool
		expected   uint8
	}{
		{name: "unordered", expected: 0x0A},
		{name: "ordered", ordered: true, expected: 0x1A},
		{name: "empty", empty: true, expected: 0x0E},
		{name: "empty ordered", empty: true, ordered: true, expected: 0x1E},
		{name: "single item", singleItem: true, expected: 0x2A},
		{name: "single item ordered", ordered: true, singleItem: true, expected: 0x3A},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flags := computeCompactFlags(tc.empty, tc.ordered, tc.singleItem)
			assert.Equal(t, tc.expected, flags)
			assert.NotZero(t, flags&flagReadOnly)
			assert.NotZero(t, flags&flagCompact)
			assert.Zero(t, flags&flagBigEndian)
		})
	}
}

func TestCompactSizeBytes(t *testing.T) {
	assert.Equal(t, 8, compactSizeBytes(1, 0))
	assert.Equal(t, 16, compactSizeBytes(1, 1))
	assert.Equal(t, 40, compactSizeBytes(2, 3))
	assert.Equal(t, 24, compactSizeBytes(3, 0))
}
