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

import "errors"

// Status reports why Decode returned control to the caller.
type Status int

const (
	// StatusNeedInput means the decoder consumed all buffered input while
	// attempting to decode the next block; push more input and retry.
	StatusNeedInput Status = iota
	// StatusNeedOutput means the output buffer passed to Decode is full
	// but more samples remain; call again with a fresh buffer.
	StatusNeedOutput
	// StatusFinished means every requested sample has been produced.
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusNeedInput:
		return "need_input"
	case StatusNeedOutput:
		return "need_output"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// FlushMode controls end-of-stream behavior. NoFlush treats input
// exhaustion as transient (more bytes may still arrive); Flush treats it
// as a hard error, since the caller has declared there is no more input.
type FlushMode int

const (
	NoFlush FlushMode = iota
	Flush
)

// pendingItem is one sample queued for emission: either the literal
// reference sample for an RSI interval, or a coded value awaiting
// reconstruction (or direct interpretation, when PREPROCESS is off).
type pendingItem struct {
	value       uint32
	isReference bool
}

// Engine is the Streaming Controller plus Block Decoder plus Reconstruction
// Engine, combined into one incremental state machine so it can be driven a
// few bytes of input and a few bytes of output at a time.
type Engine struct {
	params Params
	dv     derived

	r bitReader

	outputSamples  uint64
	samplesWritten uint64
	inputPushed    uint64

	predictor    int64
	predictorSet bool
	blockIndex   uint32 // block_index_within_rsi

	pendingList []pendingItem
	pendingPos  int
	pendingRept uint64 // remaining zero-valued samples to emit lazily
}

// NewEngine validates params and constructs an Engine targeting
// outputSamples total reconstructed samples.
func NewEngine(params Params, outputSamples uint64) (*Engine, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	return &Engine{
		params:        params,
		dv:            deriveParams(params),
		outputSamples: outputSamples,
	}, nil
}

// PushInput appends more encoded bytes to the decoder's input buffer.
func (e *Engine) PushInput(p []byte) {
	e.r.append(p)
	e.inputPushed += uint64(len(p))
}

// TotalIn returns the total number of input bytes pushed so far.
func (e *Engine) TotalIn() uint64 { return e.inputPushed }

// TotalOut returns the total number of output bytes produced so far.
func (e *Engine) TotalOut() uint64 { return e.samplesWritten * uint64(e.dv.bytesPerSample) }

// AvailIn returns the number of input bytes currently buffered and not yet
// consumed.
func (e *Engine) AvailIn() int { return len(e.r.buf) }

// BytesPerSample returns the on-the-wire width of one reconstructed sample.
func (e *Engine) BytesPerSample() int { return e.dv.bytesPerSample }

// Decode writes as many reconstructed sample bytes into out as it can and
// reports why it stopped. out's length need not be a multiple of
// BytesPerSample(); Decode only ever writes whole samples, so it returns
// early (StatusNeedOutput) if fewer than BytesPerSample() bytes remain.
func (e *Engine) Decode(out []byte, flush FlushMode) (int, Status, error) {
	bp := e.dv.bytesPerSample
	written := 0

	for {
		if e.samplesWritten >= e.outputSamples {
			return written, StatusFinished, nil
		}
		if len(out)-written < bp {
			return written, StatusNeedOutput, nil
		}

		if e.pendingPos < len(e.pendingList) {
			it := e.pendingList[e.pendingPos]
			if err := e.emitItem(it, out[written:written+bp]); err != nil {
				return written, StatusFinished, err
			}
			e.pendingPos++
			written += bp
			e.samplesWritten++
			continue
		}
		if e.pendingRept > 0 {
			if err := e.emitItem(pendingItem{}, out[written:written+bp]); err != nil {
				return written, StatusFinished, err
			}
			e.pendingRept--
			written += bp
			e.samplesWritten++
			continue
		}

		// Pending queue drained; decode the next block. Snapshot first so
		// a short read (more input needed) rolls back cleanly, leaving no
		// partial side effects for the next Decode call to repeat.
		snapshot := *e
		items, repeat, blocksAdvanced, err := e.decodeOneBlock()
		if err != nil {
			var eofErr *UnexpectedEOFError
			if errors.As(err, &eofErr) {
				if flush == Flush {
					return written, StatusFinished, &EOFDuringDecodeError{
						BitPos:         eofErr.BitPos,
						SamplesWritten: e.samplesWritten,
					}
				}
				*e = snapshot
				return written, StatusNeedInput, nil
			}
			return written, StatusFinished, err
		}

		e.pendingList = items
		e.pendingPos = 0
		e.pendingRept = repeat
		e.advanceBlockIndex(blocksAdvanced)
		traceBlock("block", e.samplesWritten, uint64(len(items))+repeat, int(e.blockIndex))
	}
}

// emitItem reconstructs (if needed) and writes one sample into out, which
// must be exactly BytesPerSample() bytes.
func (e *Engine) emitItem(it pendingItem, out []byte) error {
	n := e.params.BitsPerSample
	signed := e.params.Flags.has(FlagSigned)
	msb := e.params.Flags.has(FlagMSBFirst)
	bp := e.dv.bytesPerSample

	if it.isReference {
		var x int64
		if signed {
			x = signExtend(it.value, n)
		} else {
			x = int64(it.value)
		}
		writeSample(out, x, n, signed, msb, bp)
		e.predictor = x
		e.predictorSet = true
		return nil
	}

	if e.params.Flags.has(FlagPreprocess) {
		if !e.predictorSet {
			return &InvalidInputError{Reason: "missing reference sample before coded value"}
		}
		x := inverseStep(e.predictor, it.value, n, signed, e.dv)
		writeSample(out, x, n, signed, msb, bp)
		e.predictor = x
		return nil
	}

	writeSample(out, int64(it.value), n, signed, msb, bp)
	return nil
}

// advanceBlockIndex moves block_index_within_rsi forward by n blocks,
// wrapping unconditionally (see DESIGN.md's Open Question resolutions) and
// aligning to a byte boundary if PAD_RSI is set and a wrap occurred.
func (e *Engine) advanceBlockIndex(n uint32) {
	e.blockIndex += n
	if e.blockIndex >= e.params.RSI {
		e.blockIndex %= e.params.RSI
		if e.params.Flags.has(FlagPadRSI) {
			e.r.alignToByte()
		}
	}
}

// signExtend sign-extends the low n bits of raw into a 64-bit signed value.
func signExtend(raw uint32, n uint8) int64 {
	if n == 32 {
		return int64(int32(raw))
	}
	signBit := uint32(1) << (n - 1)
	if raw&signBit != 0 {
		return int64(raw) - (int64(1) << n)
	}
	return int64(raw)
}

// maybeConsumeReference reads the RSI reference sample as a pendingItem if
// needed is set, advancing the bit reader.
func (e *Engine) maybeConsumeReference(needed bool) (pendingItem, bool, error) {
	if !needed {
		return pendingItem{}, false, nil
	}
	raw, err := e.r.read(e.params.BitsPerSample)
	if err != nil {
		return pendingItem{}, false, err
	}
	return pendingItem{value: raw, isReference: true}, true, nil
}

// decodeOneBlock decodes exactly one block-option unit from the bitstream
// and returns the pending items it produces (items to run through
// emitItem), a lazily-counted zero-run length, and how many blocks the RSI
// block index advances by (normally 1, but a Zero-Block Run can skip
// several at once).
func (e *Engine) decodeOneBlock() ([]pendingItem, uint64, uint32, error) {
	if e.blockIndex == 0 {
		e.predictorSet = false
	}
	needsRef := e.params.Flags.has(FlagPreprocess) && e.blockIndex == 0

	id, err := e.r.read(e.dv.idLen)
	if err != nil {
		return nil, 0, 0, err
	}

	switch {
	case id == 0:
		return e.decodeLowEntropy(needsRef)
	case id == e.dv.maxID:
		return e.decodeUncompressed(needsRef)
	default:
		return e.decodeRiceSplit(id, needsRef)
	}
}
