/*
   Copyright Mycophonic.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package aec

// maxSecondExtensionM bounds the Second Extension unary code; the pair
// table below only has entries for m in 0..90.
const maxSecondExtensionM = 90

// secondExtensionPair holds the (a, b) sample pair recovered from a Second
// Extension code m.
type secondExtensionPair struct {
	a, b uint32
}

// secondExtensionTable maps m (0..90) to its (a, b) pair, enumerated in
// increasing triangular order: for s = 0, 1, 2, ..., for k = 0..s, the pair
// is (s-k, k). There are 13 diagonals (s = 0..12), giving 91 entries.
var secondExtensionTable = buildSecondExtensionTable()

func buildSecondExtensionTable() [91]secondExtensionPair {
	var table [91]secondExtensionPair
	idx := 0
	for s := 0; s <= 12; s++ {
		for k := 0; k <= s; k++ {
			if idx >= len(table) {
				break
			}
			table[idx] = secondExtensionPair{a: uint32(s - k), b: uint32(k)}
			idx++
		}
	}
	return table
}

// secondExtensionLookup returns the pair for code m, or an error if m
// exceeds the table (the bitstream is malformed or maxUnaryRun-bounded
// garbage).
func secondExtensionLookup(m uint32) (secondExtensionPair, error) {
	if m > maxSecondExtensionM {
		return secondExtensionPair{}, &InvalidInputError{Reason: "second extension code out of range"}
	}
	return secondExtensionTable[m], nil
}
