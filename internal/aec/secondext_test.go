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

func TestSecondExtensionTableEnumeration(t *testing.T) {
	want := map[uint32]secondExtensionPair{
		0: {a: 0, b: 0},
		1: {a: 1, b: 0},
		2: {a: 0, b: 1},
		3: {a: 2, b: 0},
		4: {a: 1, b: 1},
		5: {a: 0, b: 2},
		6: {a: 3, b: 0},
	}
	for m, want := range want {
		got, err := secondExtensionLookup(m)
		if err != nil {
			t.Fatalf("secondExtensionLookup(%d): %v", m, err)
		}
		if got != want {
			t.Fatalf("secondExtensionLookup(%d) = %+v, want %+v", m, got, want)
		}
	}
}

func TestSecondExtensionTableOutOfRange(t *testing.T) {
	if _, err := secondExtensionLookup(91); err == nil {
		t.Fatal("expected an error for m == 91")
	}
	if _, err := secondExtensionLookup(maxSecondExtensionM); err != nil {
		t.Fatalf("secondExtensionLookup(%d): %v", maxSecondExtensionM, err)
	}
}
