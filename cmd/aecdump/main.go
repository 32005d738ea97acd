// aecdump decodes a raw CCSDS 121.0-B-3 AEC payload, such as the data
// portion of a GRIB2 Template 5.42 section, to a flat file of fixed-width
// samples.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccsds-aec/aec"
)

var (
	bitsPerSample int
	blockSize     int
	rsi           int
	ccsdsFlags    int
	useCCSDSFlags bool
	signed        bool
	threeByte     bool
	msbFirst      bool
	preprocess    bool
	restricted    bool
	padRSI        bool
	numSamples    int
	outputPath    string
	inChunk       int
	outChunk      int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aecdump [payload]",
	Short: "Decode a raw CCSDS 121.0-B-3 AEC payload",
	Long: `aecdump - decode a raw AEC bitstream payload.

Examples:
  aecdump --bits 12 --block-size 32 --rsi 128 --use-ccsds-flags --ccsds-flags 0x0e --samples 1038240 payload.bin
  aecdump --bits 16 --block-size 16 --rsi 64 --signed --msb --preprocess --samples 4096 payload.bin -o out.raw
  aecdump --in-chunk 13 --out-chunk 4096 --bits 12 --block-size 32 --rsi 128 --preprocess --msb --samples 1038240 payload.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.Flags().IntVar(&bitsPerSample, "bits", 16, "bits per sample (1..32)")
	rootCmd.Flags().IntVar(&blockSize, "block-size", 32, "block size (8, 16, 32, or 64)")
	rootCmd.Flags().IntVar(&rsi, "rsi", 128, "reference sample interval")
	rootCmd.Flags().IntVar(&ccsdsFlags, "ccsds-flags", 0, "GRIB2 Template 5.42 CCSDS flags octet")
	rootCmd.Flags().BoolVar(&useCCSDSFlags, "use-ccsds-flags", false, "derive flags from --ccsds-flags instead of the individual flag options")
	rootCmd.Flags().BoolVar(&signed, "signed", false, "samples are two's-complement signed")
	rootCmd.Flags().BoolVar(&threeByte, "three-byte", false, "pack 17..24-bit samples into 3 bytes instead of 4")
	rootCmd.Flags().BoolVar(&msbFirst, "msb", false, "samples are MSB-first")
	rootCmd.Flags().BoolVar(&preprocess, "preprocess", false, "bitstream uses predictor+folding preprocessing")
	rootCmd.Flags().BoolVar(&restricted, "restricted", false, "bitstream uses the restricted block-option id table")
	rootCmd.Flags().BoolVar(&padRSI, "pad-rsi", false, "each RSI interval is byte-aligned")
	rootCmd.Flags().IntVar(&numSamples, "samples", 0, "total number of samples to decode")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: hex preview on stdout)")
	rootCmd.Flags().IntVar(&inChunk, "in-chunk", 0, "feed the payload to the streaming decoder this many bytes at a time (0 = whole payload; one-shot if --out-chunk is also 0)")
	rootCmd.Flags().IntVar(&outChunk, "out-chunk", 0, "drain the streaming decoder this many bytes at a time (0 = whole output; one-shot if --in-chunk is also 0)")

	peekIDCmd.Flags().AddFlagSet(rootCmd.Flags())
	rootCmd.AddCommand(peekIDCmd)
}

func paramsFromFlags() aec.Params {
	var flags aec.Flags
	if useCCSDSFlags {
		flags = aec.FlagsFromGRIB2(uint8(ccsdsFlags))
	} else {
		if signed {
			flags |= aec.FlagSigned
		}
		if threeByte {
			flags |= aec.FlagThreeByte
		}
		if msbFirst {
			flags |= aec.FlagMSBFirst
		}
		if preprocess {
			flags |= aec.FlagPreprocess
		}
		if restricted {
			flags |= aec.FlagRestricted
		}
		if padRSI {
			flags |= aec.FlagPadRSI
		}
	}
	return aec.Params{
		BitsPerSample: uint8(bitsPerSample),
		BlockSize:     uint8(blockSize),
		RSI:           uint32(rsi),
		Flags:         flags,
	}
}

func runDecode(cmd *cobra.Command, args []string) error {
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}
	if numSamples <= 0 {
		return fmt.Errorf("--samples must be a positive integer")
	}
	params := paramsFromFlags()

	var out []byte
	if inChunk > 0 || outChunk > 0 {
		out, err = decodeStreaming(payload, params)
	} else {
		out, err = aec.Decode(payload, params, uint64(numSamples))
	}
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, out, 0o644)
	}
	preview := out
	if len(preview) > 64 {
		preview = preview[:64]
	}
	fmt.Printf("decoded %d bytes (%d samples); first %d bytes: %s\n",
		len(out), numSamples, len(preview), hex.EncodeToString(preview))
	return nil
}

func decodeStreaming(payload []byte, params aec.Params) ([]byte, error) {
	dec, err := aec.NewDecoder(params, uint64(numSamples))
	if err != nil {
		return nil, err
	}

	in, o := inChunk, outChunk
	if in <= 0 {
		in = len(payload)
		if in == 0 {
			in = 1
		}
	}
	if o <= 0 {
		o = dec.BytesPerSample() * numSamples
	}

	var out []byte
	pending := make([]byte, o)
	cursor := 0
	for {
		n, status, err := dec.Decode(pending, aec.NoFlush)
		if err != nil {
			return nil, err
		}
		out = append(out, pending[:n]...)
		switch status {
		case aec.StatusFinished:
			fmt.Printf("total_in=%d total_out=%d\n", dec.TotalIn(), dec.TotalOut())
			return out, nil
		case aec.StatusNeedOutput:
			continue
		case aec.StatusNeedInput:
			if cursor >= len(payload) {
				// No more input to push: ask once more with Flush so a
				// genuine shortfall surfaces as an error.
				n, _, err := dec.Decode(pending, aec.Flush)
				out = append(out, pending[:n]...)
				if err != nil {
					return nil, err
				}
				fmt.Printf("total_in=%d total_out=%d\n", dec.TotalIn(), dec.TotalOut())
				return out, nil
			}
			end := cursor + in
			if end > len(payload) {
				end = len(payload)
			}
			dec.PushInput(payload[cursor:end])
			cursor = end
		}
	}
}
