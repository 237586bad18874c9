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
	"slices"
)

// thetaOnCompact returns the theta to persist.
// A sketch that never saw an item may still report a lowered theta when it was
// configured with p < 1; persisting it would turn an exact empty result into an
// estimate, so it is reset to MaxTheta.
func thetaOnCompact(empty bool, numEntries uint32, theta uint64) uint64 {
	if empty && numEntries == 0 && theta < MaxTheta {
		return MaxTheta
	}
	return theta
}

// emptyOnCompact returns true if the compact image is empty.
// Zero entries with theta below MaxTheta means everything was sampled out,
// which is not empty.
func emptyOnCompact(numEntries uint32, theta uint64) bool {
	return numEntries == 0 && theta == MaxTheta
}

// compactCache copies the live entries of a hash table cache into a dense slice.
// Slots holding zero or a hash at or above theta are skipped; the order of
// the remaining entries is kept unless ordered is true, in which case they are sorted.
// The number of live entries must equal numEntries.
func compactCache(cache []uint64, numEntries uint32, theta uint64, ordered bool) ([]uint64, error) {
	if numEntries == 0 {
		return []uint64{}, nil
	}

	out := make([]uint64, 0, numEntries)
	for _, entry := range cache {
		if entry == 0 || entry >= theta {
			continue
		}
		if uint32(len(out)) == numEntries {
			return nil, fmt.Errorf("%w: cache holds more than %d live entries", ErrContractViolation, numEntries)
		}
		out = append(out, entry)
	}
	if uint32(len(out)) != numEntries {
		return nil, fmt.Errorf("%w: expected %d live entries in cache, found %d", ErrContractViolation, numEntries, len(out))
	}

	if ordered {
		slices.Sort(out)
	}
	return out, nil
}
