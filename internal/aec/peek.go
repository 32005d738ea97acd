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

// PeekBlockID reads and returns only the leading block-option id from
// payload for the given params, without decoding the rest of the block or
// requiring any reference-sample/predictor state. It is a diagnostic
// helper, not part of the normal decode path.
func PeekBlockID(params Params, payload []byte) (uint32, error) {
	if err := validateParams(params); err != nil {
		return 0, err
	}
	dv := deriveParams(params)

	var r bitReader
	r.append(payload)
	return r.read(dv.idLen)
}
