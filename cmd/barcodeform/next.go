package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-barcodeform/pkg/letters"
)

func newNextCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "next LABEL",
		Short: "Print the labels that follow LABEL",
		Example: `  barcodeform next A        # B
  barcodeform next z -n 3   # za zb zc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.New("count must be at least 1")
			}
			label := args[0]
			if !letters.Valid(label) {
				return fmt.Errorf("invalid label %q: use one or more ASCII letters", label)
			}
			for i := 0; i < count; i++ {
				label = letters.Next(label)
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of labels to print")
	return cmd
}
