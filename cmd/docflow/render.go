package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"

	"github.com/lvillar/docflow"
)

var (
	renderOutput string
	renderVerify bool
)

var renderCmd = &cobra.Command{
	Use:   "render <input>",
	Short: "Render a document description to PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		output := renderOutput
		if output == "" {
			output = outputName(input)
		}

		if err := renderFile(input, output); err != nil {
			return err
		}

		if renderVerify || cfgManager.Get().Output.Verify {
			if err := api.ValidateFile(output, nil); err != nil {
				return fmt.Errorf("rendered PDF failed validation: %w", err)
			}
			logger.Debug("output validated", "path", output)
		}

		logger.Info("rendered", "input", input, "output", output)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output PDF path (default: input name with .pdf)")
	renderCmd.Flags().BoolVar(&renderVerify, "verify", false, "validate the rendered PDF structure")
}

func outputName(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ".pdf"
}

// renderFile renders input to output, writing through a temporary file in the
// same directory so a crashed render never leaves a truncated PDF behind.
func renderFile(input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	cfg := cfgManager.Get()
	opts := []docflow.Option{
		docflow.WithPageSize(cfg.Render.PageSize),
		docflow.WithUnit(cfg.Render.Unit),
		docflow.WithDefaultFont(cfg.Render.FontFamily, cfg.Render.FontSize),
	}

	var buf bytes.Buffer
	if err := docflow.Render(&buf, data, opts...); err != nil {
		return fmt.Errorf("rendering %s: %w", input, err)
	}

	tmp := filepath.Join(filepath.Dir(output), "."+uuid.NewString()+".pdf.tmp")
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, output); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("moving output into place: %w", err)
	}
	return nil
}
