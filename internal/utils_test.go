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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSeedHash(t *testing.T) {
	t.Run("Default Seed", func(t *testing.T) {
		seedHash, err := ComputeSeedHash(9001)
		assert.NoError(t, err)
		// the value the Java and C++ libraries store for the default seed
		assert.Equal(t, uint16(37836), uint16(seedHash))

		again, err := ComputeSeedHash(9001)
		assert.NoError(t, err)
		assert.Equal(t, seedHash, again)
	})

	t.Run("Different Seeds", func(t *testing.T) {
		h1, err := ComputeSeedHash(9001)
		assert.NoError(t, err)
		h2, err := ComputeSeedHash(12345)
		assert.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})
}

func TestFamilyByID(t *testing.T) {
	testCases := []struct {
		id       int
		expected Family
	}{
		{id: 1, expected: FamilyEnum.Alpha},
		{id: 2, expected: FamilyEnum.QuickSelect},
		{id: 3, expected: FamilyEnum.Compact},
		{id: 4, expected: FamilyEnum.Union},
	}
	for _, tc := range testCases {
		t.Run(tc.expected.Name, func(t *testing.T) {
			family, ok := FamilyEnum.ByID(tc.id)
			assert.True(t, ok)
			assert.Equal(t, tc.expected, family)
		})
	}

	_, ok := FamilyEnum.ByID(7)
	assert.False(t, ok)
}

func TestFamilyAcceptsPreLongs(t *testing.T) {
	for preLongs := 0; preLongs <= 4; preLongs++ {
		assert.Equal(t, preLongs >= 1 && preLongs <= 3, FamilyEnum.Compact.AcceptsPreLongs(preLongs), "preLongs %d", preLongs)
	}
	assert.True(t, FamilyEnum.Union.AcceptsPreLongs(4))
	assert.False(t, FamilyEnum.QuickSelect.AcceptsPreLongs(2))
}
