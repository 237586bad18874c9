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
	"iter"
	"strings"

	"github.com/apache/datasketches-theta-go/internal"
	"github.com/apache/datasketches-theta-go/memory"
)

// directCompactSketch reads a validated compact image. Every accessor is computed
// from fixed offsets of the backing region on each call.
type directCompactSketch struct {
	mem memory.Memory
}

// DirectCompactUnorderedSketch is a compact, read-only sketch whose entries are stored
// in hash table order.
type DirectCompactUnorderedSketch struct {
	directCompactSketch
}

// DirectCompactOrderedSketch is a compact, read-only sketch whose entries are stored
// in ascending order.
type DirectCompactOrderedSketch struct {
	directCompactSketch
}

var (
	_ DirectCompactSketch = (*DirectCompactUnorderedSketch)(nil)
	_ DirectCompactSketch = (*DirectCompactOrderedSketch)(nil)
)

// CompactUnorderedToMemory compacts src into dst without sorting its entries.
// The written extent of dst is cleared first. The returned sketch reads from dst.
func CompactUnorderedToMemory(src CompactSource, dst memory.WritableMemory) (*DirectCompactUnorderedSketch, error) {
	mem, err := compactToMemory(src, dst, false)
	if err != nil {
		return nil, err
	}
	return &DirectCompactUnorderedSketch{directCompactSketch{mem: mem}}, nil
}

// CompactOrderedToMemory compacts src into dst with its entries sorted ascending.
// The written extent of dst is cleared first. The returned sketch reads from dst.
func CompactOrderedToMemory(src CompactSource, dst memory.WritableMemory) (*DirectCompactOrderedSketch, error) {
	mem, err := compactToMemory(src, dst, true)
	if err != nil {
		return nil, err
	}
	return &DirectCompactOrderedSketch{directCompactSketch{mem: mem}}, nil
}

// NewDirectCompactUnorderedSketch writes a compact image from components the caller
// has already validated: entries is dense, every entry is below theta, and empty is
// consistent with numEntries and theta.
func NewDirectCompactUnorderedSketch(
	entries []uint64, empty bool, seedHash uint16, numEntries uint32, theta uint64, dst memory.WritableMemory,
) (*DirectCompactUnorderedSketch, error) {
	mem, err := componentsToMemory(entries, empty, false, seedHash, numEntries, theta, dst)
	if err != nil {
		return nil, err
	}
	return &DirectCompactUnorderedSketch{directCompactSketch{mem: mem}}, nil
}

// NewDirectCompactOrderedSketch is like NewDirectCompactUnorderedSketch, and
// additionally requires entries to be sorted ascending. The order is not checked.
func NewDirectCompactOrderedSketch(
	entries []uint64, empty bool, seedHash uint16, numEntries uint32, theta uint64, dst memory.WritableMemory,
) (*DirectCompactOrderedSketch, error) {
	mem, err := componentsToMemory(entries, empty, true, seedHash, numEntries, theta, dst)
	if err != nil {
		return nil, err
	}
	return &DirectCompactOrderedSketch{directCompactSketch{mem: mem}}, nil
}

// WrapDirectCompactUnorderedSketch wraps a compact image. The seed hash stored in the
// image must match the hash of seed. Ordered images are accepted too and are then
// treated as unordered.
func WrapDirectCompactUnorderedSketch(src memory.Memory, seed uint64) (*DirectCompactUnorderedSketch, error) {
	s, err := wrapDirectCompact(src, seed)
	if err != nil {
		return nil, err
	}
	return &DirectCompactUnorderedSketch{s}, nil
}

// WrapDirectCompactOrderedSketch wraps a compact image whose ordered flag is set.
// The seed hash stored in the image must match the hash of seed.
func WrapDirectCompactOrderedSketch(src memory.Memory, seed uint64) (*DirectCompactOrderedSketch, error) {
	s, err := wrapDirectCompact(src, seed)
	if err != nil {
		return nil, err
	}
	if !s.isOrderedImage() {
		return nil, fmt.Errorf("%w: image is not ordered", ErrValidation)
	}
	return &DirectCompactOrderedSketch{s}, nil
}

// WrapDirectCompactSketch wraps a compact image, choosing the variant from its ordered flag.
func WrapDirectCompactSketch(src memory.Memory, seed uint64) (DirectCompactSketch, error) {
	s, err := wrapDirectCompact(src, seed)
	if err != nil {
		return nil, err
	}
	if s.isOrderedImage() {
		return &DirectCompactOrderedSketch{s}, nil
	}
	return &DirectCompactUnorderedSketch{s}, nil
}

// CompactSerializedSizeBytes returns the number of bytes compacting src will write.
func CompactSerializedSizeBytes(src CompactSource) int {
	numEntries := src.NumRetained()
	theta := thetaOnCompact(src.IsEmpty(), numEntries, src.Theta64())
	empty := emptyOnCompact(numEntries, theta)
	return compactSizeBytes(computeCompactPreLongs(theta, empty, numEntries), numEntries)
}

func compactToMemory(src CompactSource, dst memory.WritableMemory, ordered bool) (memory.Memory, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: source sketch is nil", ErrContractViolation)
	}
	numEntries := src.NumRetained()
	theta := thetaOnCompact(src.IsEmpty(), numEntries, src.Theta64())
	empty := emptyOnCompact(numEntries, theta)
	preLongs := computeCompactPreLongs(theta, empty, numEntries)

	seedHash, err := src.SeedHash()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContractViolation, err)
	}

	cache, err := compactCache(src.Cache(), numEntries, theta, ordered)
	if err != nil {
		return nil, err
	}

	flags := computeCompactFlags(empty, ordered, isSingleItem(preLongs, empty, numEntries))
	return loadCompactMemory(cache, seedHash, numEntries, theta, dst, flags, preLongs)
}

func componentsToMemory(
	entries []uint64, empty, ordered bool, seedHash uint16, numEntries uint32, theta uint64, dst memory.WritableMemory,
) (memory.Memory, error) {
	if empty && numEntries != 0 {
		return nil, fmt.Errorf("%w: empty sketch with %d retained entries", ErrContractViolation, numEntries)
	}
	if empty && theta != MaxTheta {
		return nil, fmt.Errorf("%w: empty sketch with theta %d", ErrContractViolation, theta)
	}
	preLongs := computeCompactPreLongs(theta, empty, numEntries)
	flags := computeCompactFlags(empty, ordered, isSingleItem(preLongs, empty, numEntries))
	return loadCompactMemory(entries, seedHash, numEntries, theta, dst, flags, preLongs)
}

// wrapDirectCompact validates src as a compact image. The seed hash is checked
// before any other field is interpreted.
func wrapDirectCompact(src memory.Memory, seed uint64) (directCompactSketch, error) {
	if src == nil {
		return directCompactSketch{}, fmt.Errorf("%w: source memory is nil", ErrValidation)
	}
	if err := memory.CheckBounds(src, 0, 8); err != nil {
		return directCompactSketch{}, fmt.Errorf("%w: preamble: %w", ErrValidation, err)
	}

	expectedSeedHash, err := internal.ComputeSeedHash(int64(seed))
	if err != nil {
		return directCompactSketch{}, fmt.Errorf("%w: %w", ErrContractViolation, err)
	}
	if err := CheckSeedHashEqual(src.GetUint16(seedHashShort), uint16(expectedSeedHash)); err != nil {
		return directCompactSketch{}, fmt.Errorf("%w: %w", ErrSeedHashMismatch, err)
	}

	if err := CheckSerialVersionEqual(src.GetUint8(serialVersionByte), SerialVersion); err != nil {
		return directCompactSketch{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	family := src.GetUint8(familyByte)
	if err := CheckSketchFamilyEqual(family, CompactFamilyID); err != nil {
		if other, ok := internal.FamilyEnum.ByID(int(family)); ok {
			return directCompactSketch{}, fmt.Errorf("%w: %s image is not compact: %w", ErrValidation, other.Name, err)
		}
		return directCompactSketch{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	flags := src.GetUint8(flagsByte)
	if flags&flagCompact == 0 || flags&flagReadOnly == 0 {
		return directCompactSketch{}, fmt.Errorf("%w: compact and read-only flags must be set: flags 0x%02x", ErrValidation, flags)
	}
	if flags&flagBigEndian != 0 {
		return directCompactSketch{}, fmt.Errorf("%w: big-endian images are not supported", ErrValidation)
	}

	preLongs := src.GetUint8(preLongsByte)
	if !internal.FamilyEnum.Compact.AcceptsPreLongs(int(preLongs)) {
		return directCompactSketch{}, fmt.Errorf("%w: invalid preamble longs %d", ErrValidation, preLongs)
	}

	s := directCompactSketch{mem: src}
	switch {
	case flags&flagEmpty != 0:
		if preLongs != 1 {
			return directCompactSketch{}, fmt.Errorf("%w: empty image with %d preamble longs", ErrValidation, preLongs)
		}
	case preLongs == 1:
		if err := memory.CheckBounds(src, singleEntryLong, 8); err != nil {
			return directCompactSketch{}, fmt.Errorf("%w: single entry: %w", ErrValidation, err)
		}
	default:
		if err := memory.CheckBounds(src, 0, int(preLongs)<<3); err != nil {
			return directCompactSketch{}, fmt.Errorf("%w: preamble: %w", ErrValidation, err)
		}
		if preLongs > 2 && s.Theta64() > MaxTheta {
			return directCompactSketch{}, fmt.Errorf("%w: theta %d exceeds %d", ErrValidation, s.Theta64(), MaxTheta)
		}
		numEntries := s.NumRetained()
		if err := memory.CheckBounds(src, int64(preLongs)<<3, int64(numEntries)<<3); err != nil {
			return directCompactSketch{}, fmt.Errorf("%w: %d entries: %w", ErrValidation, numEntries, err)
		}
	}
	return s, nil
}

func (s *directCompactSketch) preLongs() uint8 {
	return s.mem.GetUint8(preLongsByte)
}

func (s *directCompactSketch) flags() uint8 {
	return s.mem.GetUint8(flagsByte)
}

func (s *directCompactSketch) isOrderedImage() bool {
	return s.flags()&flagOrdered != 0
}

// IsEmpty returns true if this sketch represents an empty set
// (not the same as no retained entries!)
func (s *directCompactSketch) IsEmpty() bool {
	return s.flags()&flagEmpty != 0
}

// NumRetained returns the number of retained entries in the sketch
func (s *directCompactSketch) NumRetained() uint32 {
	if s.preLongs() == 1 {
		if s.IsEmpty() {
			return 0
		}
		return 1
	}
	return s.mem.GetUint32(retainedEntriesInt)
}

// Theta64 returns theta as a positive integer between 0 and math.MaxInt64
func (s *directCompactSketch) Theta64() uint64 {
	if s.preLongs() > 2 {
		return s.mem.GetUint64(thetaLong)
	}
	return MaxTheta
}

// Theta returns theta as a fraction from 0 to 1 (effective sampling rate)
func (s *directCompactSketch) Theta() float64 {
	return float64(s.Theta64()) / float64(MaxTheta)
}

// IsEstimationMode returns true if the sketch is in estimation mode
// (as opposed to exact mode)
func (s *directCompactSketch) IsEstimationMode() bool {
	return s.Theta64() < MaxTheta && !s.IsEmpty()
}

// SeedHash returns hash of the seed that was used to hash the input
func (s *directCompactSketch) SeedHash() (uint16, error) {
	return s.mem.GetUint16(seedHashShort), nil
}

// Entries returns a view of the retained hash values
func (s *directCompactSketch) Entries() HashEntries {
	return HashEntries{
		mem:    s.mem,
		offset: int(s.preLongs()) << 3,
		n:      int(s.NumRetained()),
	}
}

// All returns an iterator over hash values in the sketch
func (s *directCompactSketch) All() iter.Seq[uint64] {
	return s.Entries().All()
}

// Memory returns the backing region
func (s *directCompactSketch) Memory() memory.Memory {
	return s.mem
}

// SerializedSizeBytes returns the number of bytes of the image
func (s *directCompactSketch) SerializedSizeBytes() int {
	return compactSizeBytes(s.preLongs(), s.NumRetained())
}

// Validate checks every retained entry against theta and, for ordered images, checks
// that entries are strictly ascending
func (s *directCompactSketch) Validate() error {
	theta := s.Theta64()
	ordered := s.isOrderedImage()

	var previous uint64
	i := 0
	for entry := range s.All() {
		if entry == 0 {
			return fmt.Errorf("%w: entry %d is zero", ErrValidation, i)
		}
		if entry >= theta {
			return fmt.Errorf("%w: entry %d (%d) is not below theta %d", ErrValidation, i, entry, theta)
		}
		if ordered && i > 0 && entry <= previous {
			return fmt.Errorf("%w: entry %d (%d) breaks ascending order", ErrValidation, i, entry)
		}
		previous = entry
		i++
	}
	return nil
}

func (s *directCompactSketch) summary(ordered, shouldPrintItems bool) string {
	seedHash, _ := s.SeedHash()

	var sb strings.Builder
	sb.WriteString("### Direct compact theta sketch summary:\n")
	sb.WriteString(fmt.Sprintf("   num retained entries : %d\n", s.NumRetained()))
	sb.WriteString(fmt.Sprintf("   seed hash            : %d\n", seedHash))
	sb.WriteString(fmt.Sprintf("   empty?               : %t\n", s.IsEmpty()))
	sb.WriteString(fmt.Sprintf("   ordered?             : %t\n", ordered))
	sb.WriteString(fmt.Sprintf("   estimation mode?     : %t\n", s.IsEstimationMode()))
	sb.WriteString(fmt.Sprintf("   theta (fraction)     : %g\n", s.Theta()))
	sb.WriteString(fmt.Sprintf("   theta (raw 64-bit)   : %d\n", s.Theta64()))
	sb.WriteString(fmt.Sprintf("   preamble longs       : %d\n", s.preLongs()))
	sb.WriteString(fmt.Sprintf("   serialized bytes     : %d\n", s.SerializedSizeBytes()))
	sb.WriteString("### End sketch summary\n")

	if shouldPrintItems {
		sb.WriteString("### Retained entries\n")
		for entry := range s.All() {
			sb.WriteString(fmt.Sprintf("%d\n", entry))
		}
		sb.WriteString("### End retained entries\n")
	}

	return sb.String()
}

// IsOrdered returns false: entries are stored in hash table order
func (s *DirectCompactUnorderedSketch) IsOrdered() bool {
	return false
}

// String returns a human-readable summary of this sketch as a string
// If shouldPrintItems is true, include the list of items retained by the sketch
func (s *DirectCompactUnorderedSketch) String(shouldPrintItems bool) string {
	return s.summary(s.IsOrdered(), shouldPrintItems)
}

// IsOrdered returns true: entries are stored in ascending order
func (s *DirectCompactOrderedSketch) IsOrdered() bool {
	return true
}

// String returns a human-readable summary of this sketch as a string
// If shouldPrintItems is true, include the list of items retained by the sketch
func (s *DirectCompactOrderedSketch) String(shouldPrintItems bool) string {
	return s.summary(s.IsOrdered(), shouldPrintItems)
}
