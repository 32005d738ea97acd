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

func TestBitReaderAcrossBytes(t *testing.T) {
	var r bitReader
	r.append([]byte{0b1010_1100, 0b0101_0001})

	tests := []struct {
		nbits uint8
		want  uint32
	}{
		{4, 0b1010},
		{4, 0b1100},
		{3, 0b010},
		{5, 0b10001},
	}
	for i, tt := range tests {
		got, err := r.read(tt.nbits)
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if got != tt.want {
			t.Fatalf("read %d: got %#b, want %#b", i, got, tt.want)
		}
	}
}

func TestBitReaderAlignToByte(t *testing.T) {
	var r bitReader
	r.append([]byte{0xff, 0x12})

	if _, err := r.read(1); err != nil {
		t.Fatalf("read: %v", err)
	}
	r.alignToByte()
	got, err := r.read(8)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != 0x12 {
		t.Fatalf("got %#x, want %#x", got, 0x12)
	}
}

func TestBitReaderUnexpectedEOF(t *testing.T) {
	var r bitReader
	r.append([]byte{0xff})

	if _, err := r.read(8); err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := r.read(1); err == nil {
		t.Fatal("expected UnexpectedEOFError, got nil")
	} else if _, ok := err.(*UnexpectedEOFError); !ok {
		t.Fatalf("expected *UnexpectedEOFError, got %T", err)
	}
}

func TestBitReaderRollbackAfterAppend(t *testing.T) {
	var r bitReader
	r.append([]byte{0b1111_0000})

	if _, err := r.read(4); err != nil {
		t.Fatalf("read: %v", err)
	}

	snapshot := r
	if _, err := r.read(8); err == nil {
		t.Fatal("expected short read to fail")
	}
	r = snapshot

	r.append([]byte{0b1010_1010})
	got, err := r.read(8)
	if err != nil {
		t.Fatalf("read after append: %v", err)
	}
	if want := uint32(0b0000_1010); got != want {
		t.Fatalf("got %#b, want %#b", got, want)
	}
}

func TestReadUnary(t *testing.T) {
	var r bitReader
	// 001 -> 2 zero bits then a one bit.
	r.append([]byte{0b0010_0000})
	got, err := readUnary(&r)
	if err != nil {
		t.Fatalf("readUnary: %v", err)
	}
	if got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestReadUnaryGuard(t *testing.T) {
	var r bitReader
	r.append(make([]byte, (maxUnaryRun/8)+8))
	if _, err := readUnary(&r); err == nil {
		t.Fatal("expected InvalidInputError for an overlong unary run")
	}
}
