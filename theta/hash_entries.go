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

// HashEntries is a read-only view of the hash values stored in a compact image.
// Values are read from the backing region on access; nothing is copied.
type HashEntries struct {
	mem    memory.Memory
	offset int
	n      int
}

// Len returns the number of entries.
func (e HashEntries) Len() int {
	return e.n
}

// At returns the i-th entry. It panics if i is out of range.
func (e HashEntries) At(i int) uint64 {
	if i < 0 || i >= e.n {
		panic("theta: hash entry index out of range")
	}
	return e.mem.GetUint64(e.offset + i<<3)
}

// All returns an iterator over the entries in stored order.
func (e HashEntries) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := 0; i < e.n; i++ {
			if !yield(e.mem.GetUint64(e.offset + i<<3)) {
				return
			}
		}
	}
}

// AppendTo appends the entries to dst and returns the extended slice.
func (e HashEntries) AppendTo(dst []uint64) []uint64 {
	for entry := range e.All() {
		dst = append(dst, entry)
	}
	return dst
}
