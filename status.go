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

// Status reports why Decoder.Decode returned control to the caller.
type Status = aecint.Status

const (
	StatusNeedInput  = aecint.StatusNeedInput
	StatusNeedOutput = aecint.StatusNeedOutput
	StatusFinished   = aecint.StatusFinished
)

// FlushMode controls end-of-stream behavior.
type FlushMode = aecint.FlushMode

const (
	NoFlush = aecint.NoFlush
	Flush   = aecint.Flush
)
