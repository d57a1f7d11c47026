package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/ligolw"
	"github.com/dhamidi/ligolw/array"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "List the arrays in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ligolw.Load(args[0], array.Factory)
			if err != nil {
				return err
			}

			name := color.New(color.FgCyan, color.Bold)
			for _, a := range array.All(doc) {
				shape, err := a.Shape()
				if err != nil {
					return err
				}
				name.Print(array.StripName(a.Name()))
				fmt.Printf(" type=%s dims=%v", a.Type(), array.DimsFromShape(shape))
				if d := a.Data(); d != nil {
					fmt.Printf(" values=%d", d.Len())
				}
				fmt.Println()
			}
			return nil
		},
	}
	return cmd
}
