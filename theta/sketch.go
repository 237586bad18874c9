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
	"iter"

	"github.com/apache/datasketches-theta-go/memory"
)

// CompactSource is the state a mutable sketch exposes to be compacted.
type CompactSource interface {
	// IsEmpty returns true if the sketch has never been presented with an item
	IsEmpty() bool

	// Theta64 returns the current sampling threshold between 0 and MaxTheta
	Theta64() uint64

	// NumRetained returns the number of live entries in Cache
	NumRetained() uint32

	// SeedHash returns hash of the seed that was used to hash the input
	SeedHash() (uint16, error)

	// Cache returns the internal hash table. Slots holding zero are unused and
	// slots at or above theta are stale; exactly NumRetained slots are live.
	// The returned slice is only read.
	Cache() []uint64
}

// DirectCompactSketch is an immutable compact theta sketch backed by a memory region
// it does not own. The region must stay alive and unchanged while the sketch is used.
type DirectCompactSketch interface {
	// IsEmpty returns true if this sketch represents an empty set
	// (not the same as no retained entries!)
	IsEmpty() bool

	// IsOrdered returns true if retained entries are ordered
	IsOrdered() bool

	// IsEstimationMode returns true if the sketch is in estimation mode
	// (as opposed to exact mode)
	IsEstimationMode() bool

	// Theta returns theta as a fraction from 0 to 1 (effective sampling rate)
	Theta() float64

	// Theta64 returns theta as a positive integer between 0 and math.MaxInt64
	Theta64() uint64

	// NumRetained returns the number of retained entries in the sketch
	NumRetained() uint32

	// SeedHash returns hash of the seed that was used to hash the input
	SeedHash() (uint16, error)

	// Entries returns a view of the retained hash values in the backing region
	Entries() HashEntries

	// All returns an iterator over hash values in the sketch
	All() iter.Seq[uint64]

	// Memory returns the backing region
	Memory() memory.Memory

	// SerializedSizeBytes returns the number of bytes of the image
	SerializedSizeBytes() int

	// Validate scans the retained entries and checks that each is non-zero and below
	// theta, and strictly ascending when the image is ordered
	Validate() error

	// String returns a human-readable summary of this sketch as a string
	// If shouldPrintItems is true, include the list of items retained by the sketch
	String(shouldPrintItems bool) string
}
