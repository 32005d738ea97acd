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

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// traceSample is the sample index requested via RUST_AEC_TRACE_SAMPLE, or
// -1 if tracing is disabled. The name is kept verbatim from the original
// implementation's environment variable: it is an external interface
// contract, not an internal detail free to rename.
var (
	traceOnce   sync.Once
	traceSample int64 = -1
)

func loadTraceSample() int64 {
	traceOnce.Do(func() {
		v, ok := os.LookupEnv("RUST_AEC_TRACE_SAMPLE")
		if !ok {
			return
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return
		}
		traceSample = n
	})
	return traceSample
}

// traceBlock writes an advisory diagnostic line to stderr if the traced
// sample index falls within [first, first+count). Purely informational: it never
// affects decoded output.
func traceBlock(mode string, first, count uint64, blockIndex int) {
	target := loadTraceSample()
	if target < 0 {
		return
	}
	idx := uint64(target)
	if idx < first || idx >= first+count {
		return
	}
	fmt.Fprintf(os.Stderr, "aec: trace sample=%d mode=%s block=%d range=[%d,%d)\n",
		target, mode, blockIndex, first, first+count)
}
