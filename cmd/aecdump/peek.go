package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	aecint "github.com/ccsds-aec/aec/internal/aec"
)

// peekIDCmd reports the leading block-option id of a payload without
// decoding the rest of the block, mirroring a diagnostic the distilled
// specification dropped.
var peekIDCmd = &cobra.Command{
	Use:   "peek-id [payload]",
	Short: "Print the leading block-option id of a payload",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeekID,
}

func runPeekID(cmd *cobra.Command, args []string) error {
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}
	params := paramsFromFlags()

	id, err := aecint.PeekBlockID(params, payload)
	if err != nil {
		return fmt.Errorf("peek-id: %w", err)
	}
	fmt.Println(id)
	return nil
}
