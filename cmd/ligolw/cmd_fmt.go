package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ligolw"
	"github.com/dhamidi/ligolw/array"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reparse a document and print its canonical serialization",
		Long: `Reparse a document and print its canonical serialization to stdout.

Use -w to rewrite the file in place. A .gz suffix is honored in both
directions: compressed input is decompressed, and -w recompresses.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ligolw.Load(args[0], array.Factory)
			if err != nil {
				return err
			}

			if fmtOverwrite {
				return ligolw.Save(args[0], doc)
			}
			if err := doc.Write(os.Stdout); err != nil {
				return fmt.Errorf("write document: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "rewrite the file in place")

	return cmd
}
