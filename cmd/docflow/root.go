// Command docflow renders declarative document descriptions to PDF.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvillar/docflow/config"
)

var (
	cfgFile string
	verbose bool

	cfgManager *config.Manager
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "docflow",
	Short: "Render document descriptions to paginated PDFs",
	Long: `docflow turns JSON or YAML document descriptions into paginated PDFs.

Documents are flat sequences of content elements (headings, paragraphs,
tables, form fields, admonitions, rules, spacers, barcodes) laid out
sequentially across pages. A cover page, table of contents, repeating
headers/footers, and a watermark can be enabled per document; TOC pages are
inserted after layout so every entry carries the page its heading actually
landed on.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.docflow/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cm.Get().Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfgManager = cm
		return nil
	}

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
