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

// Package memory provides byte regions that sketches are written into and read from.
//
// A region is a non-owning view: heap regions wrap a caller's slice, direct regions
// live outside the Go heap in an anonymous mapping, and mapped regions expose a file
// that another process (or another language runtime) wrote. Multi-byte values are
// always little-endian regardless of the host.
//
// Accessors index the underlying bytes directly and panic on out-of-range offsets,
// like slice indexing. Use [CheckBounds] before trusting offsets read from an image.
package memory
