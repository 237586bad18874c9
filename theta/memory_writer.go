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
	"fmt"

	"github.com/apache/datasketches-theta-go/memory"
)

// loadCompactMemory writes a compact image into dst and returns a read-only view of it.
// cache must already be compacted (exactly numEntries live entries); the written
// extent of dst is cleared first so no earlier bytes survive in it.
func loadCompactMemory(
	cache []uint64,
	seedHash uint16,
	numEntries uint32,
	theta uint64,
	dst memory.WritableMemory,
	flags uint8,
	preLongs uint8,
) (memory.Memory, error) {
	if dst == nil {
		return nil, fmt.Errorf("%w: destination memory is nil", ErrContractViolation)
	}
	if dst.IsReadOnly() {
		return nil, fmt.Errorf("%w: destination memory is read-only", ErrContractViolation)
	}
	if uint32(len(cache)) != numEntries {
		return nil, fmt.Errorf("%w: cache length %d does not match retained entries %d", ErrContractViolation, len(cache), numEntries)
	}

	outBytes := compactSizeBytes(preLongs, numEntries)
	if outBytes > dst.Capacity() {
		return nil, fmt.Errorf("%w: destination memory too small: required %d bytes, capacity %d", ErrContractViolation, outBytes, dst.Capacity())
	}

	dst.Clear(0, outBytes)

	dst.PutUint8(preLongsByte, preLongs)
	dst.PutUint8(serialVersionByte, SerialVersion)
	dst.PutUint8(familyByte, CompactFamilyID)
	// bytes 3 and 4 (lgNomLongs, lgArrLongs) are unused in compact images
	dst.PutUint8(flagsByte, flags)
	dst.PutUint16(seedHashShort, seedHash)

	if preLongs == 1 {
		if numEntries == 1 {
			dst.PutUint64(singleEntryLong, cache[0])
		}
		return dst.AsReadOnly(), nil
	}

	dst.PutUint32(retainedEntriesInt, numEntries)
	dst.PutFloat32(pFloat, 1.0)
	if preLongs > 2 {
		dst.PutUint64(thetaLong, theta)
	}
	dst.PutUint64Slice(int(preLongs)<<3, cache)

	return dst.AsReadOnly(), nil
}
