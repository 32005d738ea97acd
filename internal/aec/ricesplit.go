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

// decodeRiceSplit handles block option 1 <= id <= maxID-1: k = id-1, and
// codes are laid out two-pass (all quotients, then all k-bit remainders),
// matching the CCSDS Rice split option's wire layout.
func (e *Engine) decodeRiceSplit(id uint32, needsRef bool) ([]pendingItem, uint64, uint32, error) {
	k := uint8(id - 1)
	blockSize := uint32(e.params.BlockSize)

	var items []pendingItem
	remaining := blockSize
	refItem, refConsumed, err := e.maybeConsumeReference(needsRef)
	if err != nil {
		return nil, 0, 0, err
	}
	if refConsumed {
		items = append(items, refItem)
		remaining--
	}

	values := make([]uint32, remaining)
	var maxQ uint32 = ^uint32(0)
	if k > 0 {
		maxQ = (uint32(1) << (32 - k)) - 1
	}
	for i := range values {
		q, err := readUnary(&e.r)
		if err != nil {
			return nil, 0, 0, err
		}
		if q > maxQ {
			return nil, 0, 0, &InvalidInputError{Reason: "rice shift overflow"}
		}
		values[i] = q << k
	}
	if k > 0 {
		for i := range values {
			rem, err := e.r.read(k)
			if err != nil {
				return nil, 0, 0, err
			}
			values[i] |= rem
		}
	}

	for _, v := range values {
		items = append(items, pendingItem{value: v})
	}
	return items, 0, 1, nil
}
