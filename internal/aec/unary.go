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

// maxUnaryRun bounds the fundamental-sequence (unary) code length so a
// corrupt or adversarial bitstream of all-zero bits cannot spin forever.
const maxUnaryRun = 1_000_000

// readUnary counts zero bits up to and including the terminating one bit,
// returning the count of zero bits (the coded value). It reports
// InvalidInputError if the run exceeds maxUnaryRun before a one bit is
// found.
func readUnary(r *bitReader) (uint32, error) {
	var count uint32
	for {
		bit, err := r.readOne()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			return count, nil
		}
		count++
		if count > maxUnaryRun {
			return 0, &InvalidInputError{Reason: "unary run too long"}
		}
	}
}
