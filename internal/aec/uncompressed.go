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

// decodeUncompressed handles block option id == maxID: every sample in
// the block is stored as a raw BitsPerSample-wide value with no entropy
// coding. The raw bits are passed through to emitItem uninterpreted: with
// PREPROCESS on they are a folded delta code, with PREPROCESS off they are
// the final sample bit pattern.
func (e *Engine) decodeUncompressed(needsRef bool) ([]pendingItem, uint64, uint32, error) {
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

	for i := uint32(0); i < remaining; i++ {
		raw, err := e.r.read(e.params.BitsPerSample)
		if err != nil {
			return nil, 0, 0, err
		}
		items = append(items, pendingItem{value: raw})
	}
	return items, 0, 1, nil
}
