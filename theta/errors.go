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
)

var (
	// ErrContractViolation is returned when a caller passes inconsistent inputs,
	// such as a retained count that does not match the live cache entries
	// or a destination region that is too small.
	ErrContractViolation = errors.New("contract violation")

	// ErrValidation is returned when a region does not hold a valid compact sketch image.
	// No handle is returned together with it.
	ErrValidation = errors.New("invalid compact sketch image")

	// ErrSeedHashMismatch is returned when an image was built with a different seed.
	// It wraps ErrValidation.
	ErrSeedHashMismatch = fmt.Errorf("%w: incompatible seed", ErrValidation)
)
