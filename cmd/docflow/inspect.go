package main

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pdf>",
	Short: "Show page count and structural validity of a rendered PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		pages, err := api.PageCount(f, nil)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		status := "ok"
		if err := api.ValidateFile(path, nil); err != nil {
			status = fmt.Sprintf("invalid: %v", err)
		}

		fmt.Printf("%s\n", path)
		fmt.Printf("  Pages:      %d\n", pages)
		fmt.Printf("  Validation: %s\n", status)
		return nil
	},
}
