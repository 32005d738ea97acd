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

// Flags mirrors libaec's aec_stream.flags, as carried by GRIB2 Template 5.42.
type Flags uint8

const (
	FlagSigned Flags = 1 << iota
	FlagThreeByte
	FlagMSBFirst
	FlagPreprocess
	FlagRestricted
	FlagPadRSI
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Params is a fully specified AEC bitstream configuration.
type Params struct {
	BitsPerSample uint8  // n, in 1..32
	BlockSize     uint8  // J, one of {8, 16, 32, 64}
	RSI           uint32 // R, reference sample interval, >= 1
	Flags         Flags
}

// FlagsFromGRIB2 maps the one-byte CCSDS flag field carried by GRIB2
// Template 5.42 octet 22 into Flags. Bit numbering follows the template:
// bit 0 (LSB) signed, bit 1 3-byte, bit 2 MSB-first, bit 3 preprocess,
// bit 4 restricted, bit 5 pad-RSI.
func FlagsFromGRIB2(ccsdsFlags uint8) Flags {
	var f Flags
	if ccsdsFlags&(1<<0) != 0 {
		f |= FlagSigned
	}
	if ccsdsFlags&(1<<1) != 0 {
		f |= FlagThreeByte
	}
	if ccsdsFlags&(1<<2) != 0 {
		f |= FlagMSBFirst
	}
	if ccsdsFlags&(1<<3) != 0 {
		f |= FlagPreprocess
	}
	if ccsdsFlags&(1<<4) != 0 {
		f |= FlagRestricted
	}
	if ccsdsFlags&(1<<5) != 0 {
		f |= FlagPadRSI
	}
	return f
}

// derived holds quantities computed once from Params and reused throughout
// a decode.
type derived struct {
	idLen          uint8  // bits per block-option id, per idLenFor
	maxID          uint32 // id of the Uncompressed option, 2^idLen - 1
	signedMax      int64  // (1<<(n-1))-1
	unsignedMax    uint64 // (1<<n)-1, or all-ones for n==32
	bytesPerSample int
}

func validateParams(p Params) error {
	if p.BitsPerSample < 1 || p.BitsPerSample > 32 {
		return &InvalidInputError{Reason: "bits_per_sample must be in 1..=32"}
	}
	switch p.BlockSize {
	case 8, 16, 32, 64:
	case 0:
		return &InvalidInputError{Reason: "block_size must not be zero"}
	default:
		return &UnsupportedError{Reason: "block_size must be one of {8, 16, 32, 64}"}
	}
	if p.RSI == 0 {
		return &InvalidInputError{Reason: "rsi must not be zero"}
	}
	return nil
}

func deriveParams(p Params) derived {
	n := p.BitsPerSample
	idLen := idLenFor(n, p.Flags.has(FlagRestricted))
	maxID := (uint32(1) << idLen) - 1

	var signedMax int64
	var unsignedMax uint64
	if n == 32 {
		signedMax = (int64(1) << 31) - 1
		unsignedMax = 0xFFFFFFFF
	} else {
		signedMax = (int64(1) << (n - 1)) - 1
		unsignedMax = (uint64(1) << n) - 1
	}

	return derived{
		idLen:          idLen,
		maxID:          maxID,
		signedMax:      signedMax,
		unsignedMax:    unsignedMax,
		bytesPerSample: bytesPerSample(n, p.Flags.has(FlagThreeByte)),
	}
}

// idLenFor returns the number of bits used to encode a block-option id:
// n>16 -> 5, n>8 -> 4, else 3; restricted overrides this to 1 (n<=2) or
// 2 (n<=4) when n<=4. Mirrors original_source/src/decoder.rs's id_len.
func idLenFor(n uint8, restricted bool) uint8 {
	idLen := uint8(3)
	switch {
	case n > 16:
		idLen = 5
	case n > 8:
		idLen = 4
	}
	if restricted && n <= 4 {
		if n <= 2 {
			idLen = 1
		} else {
			idLen = 2
		}
	}
	return idLen
}

// bytesPerSample returns the on-the-wire byte width of one reconstructed
// sample, mirroring mycophonic-saprobe-alac/internal/alac/format.go's
// BytesPerSample.
func bytesPerSample(n uint8, threeByte bool) int {
	switch {
	case n <= 8:
		return 1
	case n <= 16:
		return 2
	case n <= 24:
		if threeByte {
			return 3
		}
		return 4
	default:
		return 4
	}
}
