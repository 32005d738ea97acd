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

// Public sentinel errors for consumer error matching via errors.Is.
var (
	ErrInvalidInput    = aecint.ErrInvalidInput
	ErrUnsupported     = aecint.ErrUnsupported
	ErrNotImplemented  = aecint.ErrNotImplemented
	ErrUnexpectedEOF   = aecint.ErrUnexpectedEOF
	ErrEOFDuringDecode = aecint.ErrEOFDuringDecode
)

// Structured error types, re-exported so callers can errors.As into them
// without importing the internal package.
type (
	InvalidInputError    = aecint.InvalidInputError
	UnsupportedError     = aecint.UnsupportedError
	NotImplementedError  = aecint.NotImplementedError
	UnexpectedEOFError   = aecint.UnexpectedEOFError
	EOFDuringDecodeError = aecint.EOFDuringDecodeError
)
