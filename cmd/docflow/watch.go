package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchOutput string

var watchCmd = &cobra.Command{
	Use:   "watch <input>",
	Short: "Re-render a document description whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		output := watchOutput
		if output == "" {
			output = outputName(input)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		defer watcher.Close()

		// Watch the directory, not the file: editors that write via
		// rename replace the inode the file watch was attached to.
		dir := filepath.Dir(input)
		if dir == "" {
			dir = "."
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}

		cfg := cfgManager.Get()
		target, err := filepath.Abs(input)
		if err != nil {
			return err
		}

		if err := renderWithRetry(cmd, input, output, cfg.Watch.MaxRetries); err != nil {
			logger.Error("initial render failed", "error", err)
		}

		logger.Info("watching", "input", input, "output", output)

		var debounce *time.Timer
		pending := make(chan struct{}, 1)

		for {
			select {
			case <-cmd.Context().Done():
				logger.Info("shutting down")
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil || abs != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				// Collapse editor save bursts into one render.
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(cfg.Watch.Debounce, func() {
					select {
					case pending <- struct{}{}:
					default:
					}
				})

			case <-pending:
				if err := renderWithRetry(cmd, input, output, cfg.Watch.MaxRetries); err != nil {
					logger.Error("render failed", "input", input, "error", err)
					continue
				}
				logger.Info("rendered", "input", input, "output", output)

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Error("watch error", "error", werr)
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output PDF path (default: input name with .pdf)")
}

// renderWithRetry retries transient failures. A save event can land while the
// editor is still flushing, so the first read may see a half-written file.
func renderWithRetry(cmd *cobra.Command, input, output string, attempts uint) error {
	if attempts == 0 {
		attempts = 1
	}
	return retry.Do(
		func() error {
			return renderFile(input, output)
		},
		retry.Context(cmd.Context()),
		retry.Attempts(attempts),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
	)
}
