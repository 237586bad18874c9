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
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/twmb/murmur3"
)

var ErrZeroSeedHash = errors.New("seed hash is zero")

// ComputeSeedHash returns the 16-bit hash of the given update seed.
// Images carry it so that sketches built with different seeds are never mixed.
// A seed whose hash is zero is rejected because zero marks a missing seed hash.
func ComputeSeedHash(seed int64) (int16, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	h1, _ := murmur3.SeedSum128(0, 0, buf[:])
	seedHash := uint16(h1 & 0xFFFF)
	if seedHash == 0 {
		return 0, fmt.Errorf("%w: the given seed %d produced a seed hash of zero, choose a different seed", ErrZeroSeedHash, seed)
	}
	return int16(seedHash), nil
}
