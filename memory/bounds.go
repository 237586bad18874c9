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

	"golang.org/x/exp/constraints"
)

var ErrOutOfBounds = errors.New("memory access out of bounds")

// CheckBounds returns ErrOutOfBounds unless [offset, offset+length) lies within m.
func CheckBounds[T constraints.Integer](m Memory, offset, length T) error {
	return checkBounds(int64(offset), int64(length), int64(m.Capacity()))
}

func checkBounds(offset, length, capacity int64) error {
	if offset < 0 || length < 0 || offset+length < 0 || offset+length > capacity {
		return fmt.Errorf("%w: offset %d, length %d, capacity %d", ErrOutOfBounds, offset, length, capacity)
	}
	return nil
}
