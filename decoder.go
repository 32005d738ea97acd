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

import aecint "github.com/ccsds-aec/aec/internal/aec"

// Decoder is a streaming AEC decoder: input bytes and output space are
// both supplied incrementally, and Decode's ordering guarantee holds
// regardless of how either is chunked — the output is byte-identical to a
// one-shot Decode of the same payload for any chunking of either side.
type Decoder struct {
	eng *aecint.Engine
}

// NewDecoder constructs a Decoder that will produce outputSamples
// reconstructed samples once enough input has been pushed.
func NewDecoder(params Params, outputSamples uint64) (*Decoder, error) {
	eng, err := aecint.NewEngine(params, outputSamples)
	if err != nil {
		return nil, err
	}
	return &Decoder{eng: eng}, nil
}

// PushInput appends more encoded bytes to the decoder's input buffer.
func (d *Decoder) PushInput(p []byte) { d.eng.PushInput(p) }

// Decode writes as many reconstructed sample bytes into out as it can.
// See Status for what each return value means.
func (d *Decoder) Decode(out []byte, flush FlushMode) (int, Status, error) {
	return d.eng.Decode(out, flush)
}

// TotalIn returns the total number of input bytes pushed so far.
func (d *Decoder) TotalIn() uint64 { return d.eng.TotalIn() }

// TotalOut returns the total number of output bytes produced so far.
func (d *Decoder) TotalOut() uint64 { return d.eng.TotalOut() }

// AvailIn returns the number of input bytes currently buffered and not
// yet consumed.
func (d *Decoder) AvailIn() int { return d.eng.AvailIn() }

// BytesPerSample returns the on-the-wire width of one reconstructed
// sample.
func (d *Decoder) BytesPerSample() int { return d.eng.BytesPerSample() }
