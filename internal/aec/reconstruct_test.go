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

import "testing"

// TestInverseStepZeroIsIdentity checks the invariant a Zero-Block Run
// depends on: a coded value of 0 always reproduces the previous sample,
// for both signed and unsigned interpretations and across bit depths.
func TestInverseStepZeroIsIdentity(t *testing.T) {
	cases := []struct {
		n      uint8
		signed bool
		xPrev  int64
	}{
		{8, false, 0},
		{8, false, 255},
		{8, false, 128},
		{12, false, 2000},
		{16, true, -12345},
		{16, true, 12345},
		{32, true, -1 << 30},
		{32, false, 1 << 30},
	}
	for _, c := range cases {
		dv := deriveParams(Params{BitsPerSample: c.n})
		got := inverseStep(c.xPrev, 0, c.n, c.signed, dv)
		if got != c.xPrev {
			t.Fatalf("n=%d signed=%v xPrev=%d: got %d, want %d (identity)", c.n, c.signed, c.xPrev, got, c.xPrev)
		}
	}
}

// TestInverseStepZigZagInterior checks the ordinary (non-boundary-
// reflected) mapping away from the representable range's edges: even d
// decodes to xPrev + d/2, odd d decodes to xPrev - (d+1)/2.
func TestInverseStepZigZagInterior(t *testing.T) {
	const n = 16
	dv := deriveParams(Params{BitsPerSample: n})

	for _, signed := range []bool{false, true} {
		xPrev := int64(1000) // far from both 0/unsignedMax and +-signedMax edges
		for d := uint32(0); d <= 20; d++ {
			var want int64
			if d%2 == 0 {
				want = xPrev + int64(d/2)
			} else {
				want = xPrev - int64(d+1)/2
			}
			got := inverseStep(xPrev, d, n, signed, dv)
			if got != want {
				t.Fatalf("signed=%v d=%d: got %d, want %d", signed, d, got, want)
			}
		}
	}
}

func TestSignExtend(t *testing.T) {
	tests := []struct {
		raw  uint32
		n    uint8
		want int64
	}{
		{0x7f, 8, 127},
		{0x80, 8, -128},
		{0xff, 8, -1},
		{0x7fffffff, 32, 0x7fffffff},
		{0x80000000, 32, -0x80000000},
		{0, 12, 0},
		{0x800, 12, -2048},
		{0x7ff, 12, 2047},
	}
	for _, tt := range tests {
		got := signExtend(tt.raw, tt.n)
		if got != tt.want {
			t.Fatalf("signExtend(%#x, %d): got %d, want %d", tt.raw, tt.n, got, tt.want)
		}
	}
}
