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

import "math"

// ResizeFactor is log2 of the growth factor of the update sketch hash table.
type ResizeFactor uint8

const (
	ResizeX1 ResizeFactor = iota // no growth, the table starts at full size
	ResizeX2
	ResizeX4
	ResizeX8
)

const (
	// DefaultResizeFactor is used when no resize factor option is given.
	DefaultResizeFactor = ResizeX8

	// MaxTheta is the threshold of a sketch that has never sampled. It is the signed
	// 64-bit maximum so images stay readable by the Java and C++ libraries.
	MaxTheta uint64 = math.MaxInt64

	MinLgK     uint8 = 5
	MaxLgK     uint8 = 26
	DefaultLgK uint8 = 12

	// DefaultSeed is the hash seed shared by the reference implementations.
	DefaultSeed uint64 = 9001
)
