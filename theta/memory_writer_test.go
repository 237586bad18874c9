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
	"encoding/binary"
	"math"
	"testing"

	"github.com/apache/datasketches-theta-go/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCompactMemory_Layouts(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		buf := make([]byte, 8)
		flags := computeCompactFlags(true, false, false)
		_, err := loadCompactMemory(nil, 0x1234, 0, MaxTheta, memory.WrapWritable(buf), flags, 1)
		require.NoError(t, err)

		assert.Equal(t, []byte{1, SerialVersion, CompactFamilyID, 0, 0, flags, 0x34, 0x12}, buf)
	})

	t.Run("Single Entry", func(t *testing.T) {
		buf := make([]byte, 16)
		flags := computeCompactFlags(false, false, true)
		_, err := loadCompactMemory([]uint64{42}, 0x1234, 1, MaxTheta, memory.WrapWritable(buf), flags, 1)
		require.NoError(t, err)

		assert.Equal(t, uint8(1), buf[preLongsByte])
		assert.Equal(t, flags, buf[flagsByte])
		assert.Equal(t, uint64(42), binary.LittleEndian.Uint64(buf[singleEntryLong:]))
	})

	t.Run("Exact", func(t *testing.T) {
		buf := make([]byte, 40)
		flags := computeCompactFlags(false, false, false)
		_, err := loadCompactMemory([]uint64{10, 30, 20}, 0x1234, 3, MaxTheta, memory.WrapWritable(buf), flags, 2)
		require.NoError(t, err)

		assert.Equal(t, uint8(2), buf[preLongsByte])
		assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(buf[retainedEntriesInt:]))
		assert.Equal(t, float32(1.0), math.Float32frombits(binary.LittleEndian.Uint32(buf[pFloat:])))
		assert.Equal(t, uint64(10), binary.LittleEndian.Uint64(buf[16:]))
		assert.Equal(t, uint64(30), binary.LittleEndian.Uint64(buf[24:]))
		assert.Equal(t, uint64(20), binary.LittleEndian.Uint64(buf[32:]))
	})

	t.Run("Estimation", func(t *testing.T) {
		buf := make([]byte, 40)
		theta := MaxTheta / 2
		flags := computeCompactFlags(false, true, false)
		_, err := loadCompactMemory([]uint64{10, 20}, 0x1234, 2, theta, memory.WrapWritable(buf), flags, 3)
		require.NoError(t, err)

		assert.Equal(t, uint8(3), buf[preLongsByte])
		assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(buf[retainedEntriesInt:]))
		assert.Equal(t, theta, binary.LittleEndian.Uint64(buf[thetaLong:]))
		assert.Equal(t, uint64(10), binary.LittleEndian.Uint64(buf[24:]))
		assert.Equal(t, uint64(20), binary.LittleEndian.Uint64(buf[32:]))
	})
}

func TestLoadCompactMemory_ClearsWrittenExtent(t *testing.T) {
	buf := make([]byte, 48)
	for i := range buf {
		buf[i] = 0xFF
	}

	flags := computeCompactFlags(false, false, false)
	_, err := loadCompactMemory([]uint64{10, 20}, 0x1234, 2, MaxTheta, memory.WrapWritable(buf), flags, 2)
	require.NoError(t, err)

	// unused preamble bytes are zero
	assert.Equal(t, byte(0), buf[3])
	assert.Equal(t, byte(0), buf[4])
	// bytes past the image are left alone
	for _, b := range buf[32:] {
		assert.Equal(t, byte(0xFF), b)
	}
}

func TestLoadCompactMemory_ContractViolations(t *testing.T) {
	flags := computeCompactFlags(false, false, false)

	t.Run("Destination Too Small", func(t *testing.T) {
		_, err := loadCompactMemory([]uint64{10, 20}, 0x1234, 2, MaxTheta, memory.Allocate(31), flags, 2)
		assert.ErrorIs(t, err, ErrContractViolation)
		assert.ErrorContains(t, err, "too small")
	})

	t.Run("Nil Destination", func(t *testing.T) {
		_, err := loadCompactMemory([]uint64{10, 20}, 0x1234, 2, MaxTheta, nil, flags, 2)
		assert.ErrorIs(t, err, ErrContractViolation)
	})

	t.Run("Cache Length Mismatch", func(t *testing.T) {
		_, err := loadCompactMemory([]uint64{10}, 0x1234, 2, MaxTheta, memory.Allocate(64), flags, 2)
		assert.ErrorIs(t, err, ErrContractViolation)
	})
}

func TestLoadCompactMemory_ReturnsReadOnlyView(t *testing.T) {
	dst := memory.Allocate(16)
	mem, err := loadCompactMemory([]uint64{7}, 0x1234, 1, MaxTheta, dst, computeCompactFlags(false, false, true), 1)
	require.NoError(t, err)

	assert.True(t, mem.IsReadOnly())
	assert.Equal(t, 16, mem.Capacity())
	assert.Equal(t, uint64(7), mem.GetUint64(singleEntryLong))
}
