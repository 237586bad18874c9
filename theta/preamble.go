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

import "github.com/apache/datasketches-theta-go/internal"

// SerialVersion is the serialization version of the images written and read here.
const SerialVersion = 3

// CompactFamilyID is the family id stored in byte 2 of a compact image.
var CompactFamilyID = uint8(internal.FamilyEnum.Compact.Id)

// Offsets in bytes
const (
	preLongsByte       = 0
	serialVersionByte  = 1
	familyByte         = 2
	flagsByte          = 5
	seedHashShort      = 6
	retainedEntriesInt = 8
	pFloat             = 12
	thetaLong          = 16
	singleEntryLong    = 8
)

// Serialization flags, as bit positions within the flags byte
const (
	serializationFlagIsBigEndian uint8 = iota
	serializationFlagIsReadOnly
	serializationFlagIsEmpty
	serializationFlagIsCompact
	serializationFlagIsOrdered
	serializationFlagIsSingleItem
)

const (
	flagBigEndian  = 1 << serializationFlagIsBigEndian
	flagReadOnly   = 1 << serializationFlagIsReadOnly
	flagEmpty      = 1 << serializationFlagIsEmpty
	flagCompact    = 1 << serializationFlagIsCompact
	flagOrdered    = 1 << serializationFlagIsOrdered
	flagSingleItem = 1 << serializationFlagIsSingleItem
)

// computeCompactPreLongs returns the number of 8-byte preamble words of a compact image.
//
//   - 1: empty, nothing follows the preamble
//   - 1: exactly one entry and no sampling, the entry follows the preamble
//   - 2: retained count stored (possibly zero), theta is implicitly MaxTheta
//   - 3: retained count and theta stored
func computeCompactPreLongs(theta uint64, empty bool, numEntries uint32) uint8 {
	if theta < MaxTheta {
		return 3
	}
	if empty || numEntries == 1 {
		return 1
	}
	return 2
}

// isSingleItem reports whether the layout stores one entry right after a one word preamble.
func isSingleItem(preLongs uint8, empty bool, numEntries uint32) bool {
	return preLongs == 1 && !empty && numEntries == 1
}

// computeCompactFlags returns the flags byte of a compact image.
// Compact images are always read-only and little-endian.
func computeCompactFlags(empty, ordered, singleItem bool) uint8 {
	flags := uint8(flagReadOnly | flagCompact)
	if empty {
		flags |= flagEmpty
	}
	if ordered {
		flags |= flagOrdered
	}
	if singleItem {
		flags |= flagSingleItem
	}
	return flags
}

func compactSizeBytes(preLongs uint8, numEntries uint32) int {
	return (int(preLongs) + int(numEntries)) << 3
}
