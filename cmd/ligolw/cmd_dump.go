package main

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dhamidi/ligolw"
	"github.com/dhamidi/ligolw/array"
)

type jsonArray struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Dims   []int  `json:"dims"`
	Values any    `json:"values"`
}

func newDumpCmd() *cobra.Command {
	var dumpName string
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump array values from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ligolw.Load(args[0], array.Factory)
			if err != nil {
				return err
			}

			arrays := array.All(doc)
			if dumpName != "" {
				arrays = nil
				for _, c := range doc.Children() {
					arrays = append(arrays, array.FindByName(c, dumpName)...)
				}
				if len(arrays) == 0 {
					return fmt.Errorf("no array named %q in %s", dumpName, args[0])
				}
			}

			for _, a := range arrays {
				if a.Data() == nil {
					return fmt.Errorf("array %q has no data", a.Name())
				}
				switch dumpFormat {
				case "json":
					if err := dumpJSON(a); err != nil {
						return fmt.Errorf("encode json: %w", err)
					}
				case "text":
					dumpText(a)
				default:
					return fmt.Errorf("unknown format: %s (expected json or text)", dumpFormat)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpName, "name", "n", "", "dump only the array with this name")
	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "output format (json, text)")

	return cmd
}

func dumpJSON(a *array.Array) error {
	shape, err := a.Shape()
	if err != nil {
		return err
	}
	d := a.Data()

	out := jsonArray{
		Name: a.Name(),
		Type: a.Type(),
		Dims: array.DimsFromShape(shape),
	}
	if d.Family() == ligolw.IntegerFamily {
		out.Values = d.Ints()
	} else {
		out.Values = d.Floats()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func dumpText(a *array.Array) {
	d := a.Data()
	fmt.Printf("%s (%s)\n", a.Name(), a.Type())
	var values []string
	if d.Family() == ligolw.IntegerFamily {
		for _, v := range d.Ints() {
			values = append(values, fmt.Sprintf("%d", v))
		}
	} else {
		for _, v := range d.Floats() {
			values = append(values, fmt.Sprintf("%g", v))
		}
	}
	fmt.Println(strings.Join(values, " "))
}
