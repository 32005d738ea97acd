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
	"errors"
	"fmt"
)

// Sentinel errors for consumer error matching via errors.Is.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnsupported     = errors.New("unsupported")
	ErrNotImplemented  = errors.New("not implemented")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrEOFDuringDecode = errors.New("unexpected end of input during decode")
)

// InvalidInputError reports a malformed bitstream or parameter set.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// UnsupportedError reports a syntactically valid but unsupported configuration.
type UnsupportedError struct {
	Reason string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported: %s", e.Reason)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// NotImplementedError reports a recognized but unimplemented code path.
type NotImplementedError struct {
	Reason string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Reason)
}

func (e *NotImplementedError) Unwrap() error { return ErrNotImplemented }

// UnexpectedEOFError reports input exhaustion outside of an active decode
// (e.g. while probing a header before any sample has been produced).
type UnexpectedEOFError struct {
	BitPos uint64
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of input at bit %d", e.BitPos)
}

func (e *UnexpectedEOFError) Unwrap() error { return ErrUnexpectedEOF }

// EOFDuringDecodeError reports input exhaustion after some samples were
// already written, so the caller knows how much output is usable.
type EOFDuringDecodeError struct {
	BitPos         uint64
	SamplesWritten uint64
}

func (e *EOFDuringDecodeError) Error() string {
	return fmt.Sprintf("unexpected end of input at bit %d (wrote %d samples)", e.BitPos, e.SamplesWritten)
}

func (e *EOFDuringDecodeError) Unwrap() error { return ErrEOFDuringDecode }
