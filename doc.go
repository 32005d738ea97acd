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

// Package aec decodes the CCSDS 121.0-B-3 Adaptive Entropy Coding
// bitstream as carried by GRIB2 Data Representation Template 5.42.
//
// Use Decode or DecodeInto for a complete, in-memory payload. Use Decoder
// when the payload arrives incrementally (e.g. read off a network
// connection alongside other GRIB2 sections) or when the output should be
// produced into a caller-managed buffer a chunk at a time.
package aec
