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

// decodeLowEntropy handles block option id == 0: a selector bit chooses
// between a Zero-Block Run and the Second Extension option.
func (e *Engine) decodeLowEntropy(needsRef bool) ([]pendingItem, uint64, uint32, error) {
	selector, err := e.r.readOne()
	if err != nil {
		return nil, 0, 0, err
	}

	refItem, refConsumed, err := e.maybeConsumeReference(needsRef)
	if err != nil {
		return nil, 0, 0, err
	}

	if selector == 0 {
		return e.decodeZeroBlockRun(refItem, refConsumed)
	}
	return e.decodeSecondExtension(refItem, refConsumed)
}

// decodeZeroBlockRun reads the Zero-Block Run length code and produces a
// lazily-counted repeat of zero-valued coded samples, per spec.md's
// three-regime length derivation on z = fs+1 (z<5, z==5 "fill to
// boundary", z>5).
func (e *Engine) decodeZeroBlockRun(refItem pendingItem, refConsumed bool) ([]pendingItem, uint64, uint32, error) {
	fs, err := readUnary(&e.r)
	if err != nil {
		return nil, 0, 0, err
	}
	z := fs + 1

	var zBlocks uint32
	switch {
	case z < 5:
		zBlocks = z
	case z == 5:
		// b < RSI is an invariant, so fill1 >= 1; b%64 < 64, so fill2 >= 1.
		b := e.blockIndex
		fill1 := e.params.RSI - b
		fill2 := uint32(64) - b%64
		if fill1 < fill2 {
			zBlocks = fill1
		} else {
			zBlocks = fill2
		}
	default:
		zBlocks = z - 1
	}

	zerosSamples := uint64(zBlocks) * uint64(e.params.BlockSize)
	var items []pendingItem
	if refConsumed {
		items = []pendingItem{refItem}
		zerosSamples--
	}
	return items, zerosSamples, zBlocks, nil
}

// decodeSecondExtension reads Second Extension codes until the block's
// sample budget is filled. Each code m decodes to a pair (a, b); if a
// reference sample was just consumed the block's remaining budget is odd,
// so the first pair contributes only b to restore parity.
func (e *Engine) decodeSecondExtension(refItem pendingItem, refConsumed bool) ([]pendingItem, uint64, uint32, error) {
	blockSize := uint32(e.params.BlockSize)
	remaining := blockSize
	items := make([]pendingItem, 0, blockSize)
	if refConsumed {
		items = append(items, refItem)
		remaining--
	}

	needOddFirst := refConsumed
	var emitted uint32
	for emitted < remaining {
		m, err := readUnary(&e.r)
		if err != nil {
			return nil, 0, 0, err
		}
		pair, err := secondExtensionLookup(m)
		if err != nil {
			return nil, 0, 0, err
		}

		if needOddFirst {
			items = append(items, pendingItem{value: pair.b})
			emitted++
			needOddFirst = false
			continue
		}
		items = append(items, pendingItem{value: pair.a})
		emitted++
		if emitted < remaining {
			items = append(items, pendingItem{value: pair.b})
			emitted++
		}
	}
	return items, 0, 1, nil
}
