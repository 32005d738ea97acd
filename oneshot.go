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

// Decode decodes payload in one call and returns the reconstructed
// samples as a freshly allocated byte slice.
func Decode(payload []byte, params Params, outputSamples uint64) ([]byte, error) {
	dec, err := NewDecoder(params, outputSamples)
	if err != nil {
		return nil, err
	}
	out := make([]byte, outputSamples*uint64(dec.BytesPerSample()))

	dec.PushInput(payload)
	n, status, err := dec.Decode(out, Flush)
	if err != nil {
		return nil, err
	}
	if status != StatusFinished || n != len(out) {
		return nil, &EOFDuringDecodeError{BitPos: 0, SamplesWritten: uint64(n / dec.BytesPerSample())}
	}
	return out, nil
}

// DecodeInto decodes payload in one call, writing into out, which must be
// exactly outputSamples * BytesPerSample(params) bytes long.
func DecodeInto(payload []byte, params Params, outputSamples uint64, out []byte) error {
	dec, err := NewDecoder(params, outputSamples)
	if err != nil {
		return err
	}
	want := int(outputSamples) * dec.BytesPerSample()
	if len(out) != want {
		return &InvalidInputError{Reason: "output buffer size does not match outputSamples * BytesPerSample"}
	}

	dec.PushInput(payload)
	n, status, err := dec.Decode(out, Flush)
	if err != nil {
		return err
	}
	if status != StatusFinished || n != want {
		return &EOFDuringDecodeError{BitPos: 0, SamplesWritten: uint64(n / dec.BytesPerSample())}
	}
	return nil
}
