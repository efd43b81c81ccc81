package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvillar/docflow"
	"github.com/lvillar/docflow/config"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for document descriptions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(docflow.Schema())
	},
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "config.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		logger.Info("wrote default config", "path", path)
		return nil
	},
}
