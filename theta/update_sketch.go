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
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/apache/datasketches-theta-go/internal"
	"github.com/apache/datasketches-theta-go/memory"
)

var (
	ErrUpdateEmptyString = errors.New("cannot update empty string")
	ErrDuplicateKey      = errors.New("duplicate key")
)

// QuickSelectUpdateSketch is an Update Theta sketch based on the QuickSelect algorithm.
// It builds a sketch from input data and is compacted into a memory region with
// CompactToMemory.
type QuickSelectUpdateSketch struct {
	table *Hashtable
}

type updateSketchOptions struct {
	seed uint64
	p    float32
	lgK  uint8
	rf   ResizeFactor
}

type UpdateSketchOptionFunc func(*updateSketchOptions)

// WithUpdateSketchLgK sets log2(k), where k is a nominal number of entries in the sketch
func WithUpdateSketchLgK(lgK uint8) UpdateSketchOptionFunc {
	return func(opts *updateSketchOptions) {
		opts.lgK = lgK
	}
}

// WithUpdateSketchResizeFactor sets a resize factor for the internal hash table (defaults to 8)
func WithUpdateSketchResizeFactor(rf ResizeFactor) UpdateSketchOptionFunc {
	return func(opts *updateSketchOptions) {
		opts.rf = rf
	}
}

// WithUpdateSketchP sets sampling probability (initial theta). The default is 1, so the sketch retains
// all entries until it reaches the limit, at which point it goes into the estimation mode
// and reduces the effective sampling probability (theta) as necessary
func WithUpdateSketchP(p float32) UpdateSketchOptionFunc {
	return func(opts *updateSketchOptions) {
		opts.p = p
	}
}

// WithUpdateSketchSeed sets the seed for the hash function. Should be used carefully if needed.
// Sketches produced with different seed are not compatible: compact images carry the
// seed hash and wrapping with another seed fails.
func WithUpdateSketchSeed(seed uint64) UpdateSketchOptionFunc {
	return func(opts *updateSketchOptions) {
		opts.seed = seed
	}
}

// NewQuickSelectUpdateSketch creates a new quickselect update sketch with the given options
func NewQuickSelectUpdateSketch(opts ...UpdateSketchOptionFunc) (*QuickSelectUpdateSketch, error) {
	options := &updateSketchOptions{
		lgK:  DefaultLgK,
		rf:   DefaultResizeFactor,
		p:    1.0,
		seed: DefaultSeed,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.lgK < MinLgK {
		return nil, fmt.Errorf("lg_k must not be less than %d: %d", MinLgK, options.lgK)
	}
	if options.lgK > MaxLgK {
		return nil, fmt.Errorf("lg_k must not be greater than %d: %d", MaxLgK, options.lgK)
	}
	if options.p <= 0 || options.p > 1 {
		return nil, errors.New("sampling probability must be between 0 and 1")
	}
	if _, err := internal.ComputeSeedHash(int64(options.seed)); err != nil {
		return nil, err
	}

	lgCurSize := startingSubMultiple(options.lgK+1, MinLgK, uint8(options.rf))
	return &QuickSelectUpdateSketch{
		table: NewHashtable(
			lgCurSize, options.lgK, options.rf, options.p, startingThetaFromP(options.p), options.seed, true,
		),
	}, nil
}

// IsEmpty returns true if this sketch represents an empty set
// (not the same as no retained entries!)
func (s *QuickSelectUpdateSketch) IsEmpty() bool {
	return s.table.isEmpty
}

// IsOrdered returns true if retained entries are ordered
func (s *QuickSelectUpdateSketch) IsOrdered() bool {
	return s.table.numEntries <= 1
}

// Theta64 returns theta as a positive integer between 0 and math.MaxInt64
func (s *QuickSelectUpdateSketch) Theta64() uint64 {
	return s.table.theta
}

// Theta returns theta as a fraction from 0 to 1 (effective sampling rate)
func (s *QuickSelectUpdateSketch) Theta() float64 {
	return float64(s.Theta64()) / float64(MaxTheta)
}

// IsEstimationMode returns true if the sketch is in estimation mode
// (as opposed to exact mode)
func (s *QuickSelectUpdateSketch) IsEstimationMode() bool {
	return s.Theta64() < MaxTheta && !s.IsEmpty()
}

// NumRetained returns the number of retained entries in the sketch
func (s *QuickSelectUpdateSketch) NumRetained() uint32 {
	return s.table.numEntries
}

// SeedHash returns hash of the seed that was used to hash the input
func (s *QuickSelectUpdateSketch) SeedHash() (uint16, error) {
	seedHash, err := internal.ComputeSeedHash(int64(s.table.seed))
	if err != nil {
		return 0, err
	}
	return uint16(seedHash), nil
}

// Cache returns the internal hash table slots. It must not be modified.
func (s *QuickSelectUpdateSketch) Cache() []uint64 {
	return s.table.entries
}

// LgK returns configured nominal number of entries in the sketch
func (s *QuickSelectUpdateSketch) LgK() uint8 {
	return s.table.lgNomSize
}

// ResizeFactor returns a configured resize factor of the sketch
func (s *QuickSelectUpdateSketch) ResizeFactor() ResizeFactor {
	return s.table.rf
}

// UpdateUint64 updates this sketch with a given unsigned 64-bit integer.
// It hashes the same 8 little-endian bytes as UpdateInt64.
func (s *QuickSelectUpdateSketch) UpdateUint64(value uint64) error {
	return s.UpdateInt64(int64(value))
}

// UpdateInt64 updates this sketch with a given signed 64-bit integer
func (s *QuickSelectUpdateSketch) UpdateInt64(value int64) error {
	hash, err := s.table.HashInt64AndScreen(value)
	if err != nil {
		return err
	}
	return s.insert(hash)
}

// UpdateUint32 updates this sketch with a given unsigned 32-bit integer.
// The value is widened to int64 first, so it hashes like the C++ library's
// update(uint32_t) and like UpdateInt64 of the same number.
func (s *QuickSelectUpdateSketch) UpdateUint32(value uint32) error {
	return s.UpdateInt64(int64(value))
}

// UpdateInt32 updates this sketch with a given signed 32-bit integer.
// The value is sign-extended to int64 first, as the C++ library does; this differs
// from hashing a Java int[] of one element.
func (s *QuickSelectUpdateSketch) UpdateInt32(value int32) error {
	return s.UpdateInt64(int64(value))
}

// UpdateFloat64 updates this sketch with a given double-precision floating point value
func (s *QuickSelectUpdateSketch) UpdateFloat64(value float64) error {
	return s.UpdateInt64(canonicalDouble(value))
}

// canonicalDouble canonicalizes double values for Java compatibility
func canonicalDouble(value float64) int64 {
	if value == 0.0 {
		value = 0.0 // canonicalize -0.0 to 0.0
	} else if math.IsNaN(value) {
		return 0x7ff8000000000000 // canonicalize NaN using value from Java's Double.doubleToLongBits()
	}
	return int64(math.Float64bits(value))
}

// UpdateString updates this sketch with a given string
func (s *QuickSelectUpdateSketch) UpdateString(value string) error {
	if value == "" {
		return ErrUpdateEmptyString
	}
	hash, err := s.table.HashStringAndScreen(value)
	if err != nil {
		return err
	}
	return s.insert(hash)
}

// UpdateBytes updates this sketch with given data
func (s *QuickSelectUpdateSketch) UpdateBytes(data []byte) error {
	hash, err := s.table.HashBytesAndScreen(data)
	if err != nil {
		return err
	}
	return s.insert(hash)
}

func (s *QuickSelectUpdateSketch) insert(hash uint64) error {
	index, err := s.table.Find(hash)
	if err == nil {
		return ErrDuplicateKey
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return err
	}
	s.table.Insert(index, hash)
	return nil
}

// Trim removes retained entries in excess of the nominal size k (if any)
func (s *QuickSelectUpdateSketch) Trim() {
	s.table.Trim()
}

// Reset resets the sketch to the initial empty state
func (s *QuickSelectUpdateSketch) Reset() {
	s.table.Reset()
}

// All returns an iterator over hash values in this sketch
func (s *QuickSelectUpdateSketch) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, entry := range s.table.entries {
			if entry != 0 {
				if !yield(entry) {
					return
				}
			}
		}
	}
}

// CompactToMemory compacts this sketch into dst, sorting entries if ordered is true.
func (s *QuickSelectUpdateSketch) CompactToMemory(ordered bool, dst memory.WritableMemory) (DirectCompactSketch, error) {
	if ordered {
		sketch, err := CompactOrderedToMemory(s, dst)
		if err != nil {
			return nil, err
		}
		return sketch, nil
	}
	sketch, err := CompactUnorderedToMemory(s, dst)
	if err != nil {
		return nil, err
	}
	return sketch, nil
}
