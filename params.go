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

// Flags mirrors libaec's aec_stream.flags, as carried by GRIB2 Template
// 5.42.
type Flags = aecint.Flags

const (
	FlagSigned     = aecint.FlagSigned
	FlagThreeByte  = aecint.FlagThreeByte
	FlagMSBFirst   = aecint.FlagMSBFirst
	FlagPreprocess = aecint.FlagPreprocess
	FlagRestricted = aecint.FlagRestricted
	FlagPadRSI     = aecint.FlagPadRSI
)

// Params is a fully specified AEC bitstream configuration.
type Params = aecint.Params

// FlagsFromGRIB2 maps the one-byte CCSDS flag field carried by GRIB2
// Template 5.42 octet 22 into Flags.
func FlagsFromGRIB2(ccsdsFlags uint8) Flags {
	return aecint.FlagsFromGRIB2(ccsdsFlags)
}
