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
	"errors"
	"fmt"
	"os"
)

var ErrClosed = errors.New("memory region is closed")

// DirectMemory is a writable region allocated outside the Go heap.
// It must be released with Close; views obtained from it are invalid afterwards.
type DirectMemory struct {
	writableRegion
	release func([]byte) error
}

// AllocateDirect allocates a zeroed region of the given size outside the Go heap.
func AllocateDirect(size int) (*DirectMemory, error) {
	if size <= 0 {
		return nil, fmt.Errorf("direct region size must be positive: %d", size)
	}
	data, release, err := osMapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("allocate direct region of %d bytes: %w", size, err)
	}
	return &DirectMemory{
		writableRegion: writableRegion{readOnlyRegion{buf: data}},
		release:        release,
	}, nil
}

// Close releases the region. Calling Close twice returns ErrClosed.
func (d *DirectMemory) Close() error {
	if d.release == nil {
		return ErrClosed
	}
	data := d.buf
	release := d.release
	d.buf = nil
	d.release = nil
	return release(data)
}

// MappedMemory is a read-only view of a file mapped into memory.
// The file may be written by another process; this view never writes it.
type MappedMemory struct {
	readOnlyRegion
	release func([]byte) error
}

// MapFile maps the whole file at path read-only.
func MapFile(path string) (*MappedMemory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return nil, fmt.Errorf("cannot map empty file %s", path)
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("file %s is too large to map: %d bytes", path, size)
	}

	data, release, err := osMapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return &MappedMemory{
		readOnlyRegion: readOnlyRegion{buf: data},
		release:        release,
	}, nil
}

// Close unmaps the file. Calling Close twice returns ErrClosed.
func (m *MappedMemory) Close() error {
	if m.release == nil {
		return ErrClosed
	}
	data := m.buf
	release := m.release
	m.buf = nil
	m.release = nil
	return release(data)
}
