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

package aec_test

import (
	"testing"

	"github.com/ccsds-aec/aec"
)

func TestFlagsFromGRIB2(t *testing.T) {
	got := aec.FlagsFromGRIB2(0x0e) // 0b0000_1110: preprocess, msb, 3-byte
	want := aec.FlagThreeByte | aec.FlagMSBFirst | aec.FlagPreprocess
	if got != want {
		t.Fatalf("FlagsFromGRIB2(0x0e) = %#x, want %#x", got, want)
	}
}

func TestFlagsFromGRIB2AllBits(t *testing.T) {
	got := aec.FlagsFromGRIB2(0x3f)
	want := aec.FlagSigned | aec.FlagThreeByte | aec.FlagMSBFirst |
		aec.FlagPreprocess | aec.FlagRestricted | aec.FlagPadRSI
	if got != want {
		t.Fatalf("FlagsFromGRIB2(0x3f) = %#x, want %#x", got, want)
	}
}

func TestDecodeRejectsWrongBufferSize(t *testing.T) {
	params := aec.Params{BitsPerSample: 8, BlockSize: 8, RSI: 1, Flags: aec.FlagMSBFirst}
	err := aec.DecodeInto([]byte{0}, params, 8, make([]byte, 3))
	if err == nil {
		t.Fatal("expected an error for a mismatched output buffer size")
	}
	var invalid *aec.InvalidInputError
	if !asInvalidInput(err, &invalid) {
		t.Fatalf("expected *aec.InvalidInputError, got %T: %v", err, err)
	}
}

func TestDecoderStatusString(t *testing.T) {
	cases := map[aec.Status]string{
		aec.StatusNeedInput:  "need_input",
		aec.StatusNeedOutput: "need_output",
		aec.StatusFinished:   "finished",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Fatalf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}

func asInvalidInput(err error, target **aec.InvalidInputError) bool {
	if e, ok := err.(*aec.InvalidInputError); ok {
		*target = e
		return true
	}
	return false
}
