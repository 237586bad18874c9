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


package internal

// Family identifies a sketch family in byte 2 of a serialized image.
type Family struct {
	Id          int
	Name        string
	MinPreLongs int
	MaxPreLongs int
}

type families struct {
	Alpha       Family
	QuickSelect Family
	Compact     Family
	Union       Family
}

var FamilyEnum = &families{
	Alpha: Family{
		Id:          1,
		Name:        "Alpha",
		MinPreLongs: 3,
		MaxPreLongs: 3,
	},
	QuickSelect: Family{
		Id:          2,
		Name:        "QuickSelect",
		MinPreLongs: 3,
		MaxPreLongs: 3,
	},
	Compact: Family{
		Id:          3,
		Name:        "Compact",
		MinPreLongs: 1,
		MaxPreLongs: 3,
	},
	Union: Family{
		Id:          4,
		Name:        "Union",
		MinPreLongs: 4,
		MaxPreLongs: 4,
	},
}

// ByID returns the theta family stored under id, if any.
func (f *families) ByID(id int) (Family, bool) {
	for _, family := range []Family{f.Alpha, f.QuickSelect, f.Compact, f.Union} {
		if family.Id == id {
			return family, true
		}
	}
	return Family{}, false
}

// AcceptsPreLongs reports whether preLongs is within the family's bounds.
func (f Family) AcceptsPreLongs(preLongs int) bool {
	return preLongs >= f.MinPreLongs && preLongs <= f.MaxPreLongs
}
