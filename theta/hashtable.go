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
	"errors"
	"math"

	"github.com/apache/datasketches-theta-go/internal"
	"github.com/twmb/murmur3"
)

const (
	resizeThreshold  = 0.5
	rebuildThreshold = 15.0 / 16.0
)

const (
	strideHashBits = 7
	strideMask     = (1 << strideHashBits) - 1
)

var (
	ErrKeyNotFound                = errors.New("key not found")
	ErrKeyNotFoundAndNoEmptySlots = errors.New("key not found and no empty slots")
	// ErrZeroHashValue is used to indicate that the hash value is zero.
	// Zero is a reserved value for empty slots in the hash table.
	ErrZeroHashValue    = errors.New("zero hash value")
	ErrHashExceedsTheta = errors.New("hash exceeds theta")
)

// Hashtable is the open addressing table behind an update sketch.
// A zero slot is empty; live entries are non-zero and below theta.
type Hashtable struct {
	entries    []uint64
	theta      uint64
	seed       uint64
	numEntries uint32
	p          float32
	lgCurSize  uint8
	lgNomSize  uint8
	rf         ResizeFactor
	isEmpty    bool
}

// NewHashtable creates a new hash table
func NewHashtable(lgCurSize, lgNomSize uint8, rf ResizeFactor, p float32, theta, seed uint64, isEmpty bool) *Hashtable {
	t := &Hashtable{
		isEmpty:   isEmpty,
		lgCurSize: lgCurSize,
		lgNomSize: lgNomSize,
		rf:        rf,
		p:         p,
		theta:     theta,
		seed:      seed,
	}
	if lgCurSize > 0 {
		t.entries = make([]uint64, 1<<lgCurSize)
	}
	return t
}

// HashInt64AndScreen hashes an integer and checks it against theta
func (t *Hashtable) HashInt64AndScreen(data int64) (uint64, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(data))
	return t.HashBytesAndScreen(buf[:])
}

// HashStringAndScreen hashes the UTF-8 bytes of a string and checks it against theta
func (t *Hashtable) HashStringAndScreen(data string) (uint64, error) {
	return t.HashBytesAndScreen([]byte(data))
}

// HashBytesAndScreen hashes bytes and checks the hash against theta.
// Any call marks the table as not empty, even if the hash is screened out.
func (t *Hashtable) HashBytesAndScreen(data []byte) (uint64, error) {
	t.isEmpty = false
	h1, _ := murmur3.SeedSum128(t.seed, t.seed, data)
	hash := h1 >> 1
	if hash >= t.theta {
		return 0, ErrHashExceedsTheta
	}
	if hash == 0 {
		return 0, ErrZeroHashValue
	}
	return hash, nil
}

// Find searches for a key in the hash table and returns its index if found,
// or the index of the empty slot where it belongs with ErrKeyNotFound
func (t *Hashtable) Find(key uint64) (int, error) {
	return find(t.entries, t.lgCurSize, key)
}

func find(entries []uint64, lgSize uint8, key uint64) (int, error) {
	size := uint32(1 << lgSize)
	mask := size - 1
	stride := computeStride(key, lgSize)
	index := uint32(key) & mask

	loopIndex := index
	for {
		probe := entries[index]
		if probe == 0 {
			return int(index), ErrKeyNotFound
		} else if probe == key {
			return int(index), nil
		}

		index = (index + stride) & mask
		if index == loopIndex {
			return 0, ErrKeyNotFoundAndNoEmptySlots
		}
	}
}

// computeStride returns an odd stride independent of the lgSize low bits used for the index
func computeStride(key uint64, lgSize uint8) uint32 {
	return (2 * uint32((key>>lgSize)&strideMask)) + 1
}

// Insert inserts an entry at the given index
func (t *Hashtable) Insert(index int, entry uint64) {
	t.entries[index] = entry
	t.numEntries++

	if t.numEntries > computeCapacity(t.lgCurSize, t.lgNomSize) {
		if t.lgCurSize <= t.lgNomSize {
			t.resize()
		} else {
			t.rebuild()
		}
	}
}

func computeCapacity(lgCurSize, lgNomSize uint8) uint32 {
	fraction := resizeThreshold
	if lgCurSize > lgNomSize {
		fraction = rebuildThreshold
	}
	return uint32(math.Floor(fraction * float64(uint32(1)<<lgCurSize)))
}

func (t *Hashtable) resize() {
	lgNewSize := min(t.lgCurSize+uint8(t.rf), t.lgNomSize+1)
	newEntries := make([]uint64, 1<<lgNewSize)

	for _, key := range t.entries {
		if key != 0 {
			// a larger table always has an empty slot
			index, _ := find(newEntries, lgNewSize, key)
			newEntries[index] = key
		}
	}

	t.entries = newEntries
	t.lgCurSize = lgNewSize
}

// rebuild keeps the k smallest entries and lowers theta to the (k+1)-th smallest
func (t *Hashtable) rebuild() {
	nominalSize := 1 << t.lgNomSize

	consolidateNonEmpty(t.entries, int(t.numEntries))
	internal.QuickSelect(t.entries[:t.numEntries], 0, int(t.numEntries)-1, nominalSize)
	t.theta = t.entries[nominalSize]

	oldEntries := t.entries
	t.entries = make([]uint64, len(oldEntries))
	t.numEntries = uint32(nominalSize)

	for _, key := range oldEntries[:nominalSize] {
		index, _ := find(t.entries, t.lgCurSize, key)
		t.entries[index] = key
	}
}

// Trim reduces the table to the nominal size if needed
func (t *Hashtable) Trim() {
	if t.numEntries > uint32(1<<t.lgNomSize) {
		t.rebuild()
	}
}

// Reset clears the table back to the initial empty state
func (t *Hashtable) Reset() {
	startingLgSize := startingSubMultiple(t.lgNomSize+1, MinLgK, uint8(t.rf))
	if startingLgSize != t.lgCurSize {
		t.lgCurSize = startingLgSize
		t.entries = make([]uint64, 1<<startingLgSize)
	} else {
		clear(t.entries)
	}

	t.numEntries = 0
	t.theta = startingThetaFromP(t.p)
	t.isEmpty = true
}

// consolidateNonEmpty moves the num non-zero entries to the front of entries
func consolidateNonEmpty(entries []uint64, num int) {
	i := 0
	for i < len(entries) && entries[i] != 0 {
		i++
	}
	for j := i + 1; j < len(entries) && i < num; j++ {
		if entries[j] != 0 {
			entries[i] = entries[j]
			entries[j] = 0
			i++
		}
	}
}
