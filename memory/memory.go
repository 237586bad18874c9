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

package memory

import (
	"encoding/binary"
	"math"
)

// Memory is a read-only view of a byte region.
type Memory interface {
	// Capacity returns the size of the region in bytes.
	Capacity() int
	// IsReadOnly returns true if the region cannot be written through this view.
	IsReadOnly() bool
	GetUint8(offset int) uint8
	GetUint16(offset int) uint16
	GetUint32(offset int) uint32
	GetUint64(offset int) uint64
	GetFloat32(offset int) float32
}

// WritableMemory is a byte region that can be written.
type WritableMemory interface {
	Memory
	PutUint8(offset int, value uint8)
	PutUint16(offset int, value uint16)
	PutUint32(offset int, value uint32)
	PutUint64(offset int, value uint64)
	PutFloat32(offset int, value float32)
	// PutUint64Slice writes values as consecutive 8-byte words starting at offset.
	PutUint64Slice(offset int, values []uint64)
	// Clear zeroes length bytes starting at offset.
	Clear(offset, length int)
	// AsReadOnly returns a read-only view over the same bytes.
	AsReadOnly() Memory
}

type readOnlyRegion struct {
	buf []byte
}

// Wrap returns a read-only view of b. The caller keeps ownership of b and must keep
// it unchanged for as long as the view is in use.
func Wrap(b []byte) Memory {
	return readOnlyRegion{buf: b}
}

func (r readOnlyRegion) Capacity() int {
	return len(r.buf)
}

func (r readOnlyRegion) IsReadOnly() bool {
	return true
}

func (r readOnlyRegion) GetUint8(offset int) uint8 {
	return r.buf[offset]
}

func (r readOnlyRegion) GetUint16(offset int) uint16 {
	return binary.LittleEndian.Uint16(r.buf[offset : offset+2])
}

func (r readOnlyRegion) GetUint32(offset int) uint32 {
	return binary.LittleEndian.Uint32(r.buf[offset : offset+4])
}

func (r readOnlyRegion) GetUint64(offset int) uint64 {
	return binary.LittleEndian.Uint64(r.buf[offset : offset+8])
}

func (r readOnlyRegion) GetFloat32(offset int) float32 {
	return math.Float32frombits(r.GetUint32(offset))
}

type writableRegion struct {
	readOnlyRegion
}

// WrapWritable returns a writable view of b. Writes go straight to b.
func WrapWritable(b []byte) WritableMemory {
	return writableRegion{readOnlyRegion{buf: b}}
}

// Allocate returns a zeroed writable heap region of the given size.
func Allocate(size int) WritableMemory {
	return WrapWritable(make([]byte, size))
}

func (w writableRegion) IsReadOnly() bool {
	return false
}

func (w writableRegion) PutUint8(offset int, value uint8) {
	w.buf[offset] = value
}

func (w writableRegion) PutUint16(offset int, value uint16) {
	binary.LittleEndian.PutUint16(w.buf[offset:offset+2], value)
}

func (w writableRegion) PutUint32(offset int, value uint32) {
	binary.LittleEndian.PutUint32(w.buf[offset:offset+4], value)
}

func (w writableRegion) PutUint64(offset int, value uint64) {
	binary.LittleEndian.PutUint64(w.buf[offset:offset+8], value)
}

func (w writableRegion) PutFloat32(offset int, value float32) {
	w.PutUint32(offset, math.Float32bits(value))
}

func (w writableRegion) PutUint64Slice(offset int, values []uint64) {
	dst := w.buf[offset : offset+len(values)*8]
	for i, v := range values {
		binary.LittleEndian.PutUint64(dst[i*8:], v)
	}
}

func (w writableRegion) Clear(offset, length int) {
	clear(w.buf[offset : offset+length])
}

func (w writableRegion) AsReadOnly() Memory {
	return w.readOnlyRegion
}
