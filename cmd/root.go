package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"file-sorter/core/logger"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "file-sorter",
	Short: "External merge sort for large record files",
	Long: `File Sorter sorts "<number>. <text>" files too large to fit in memory.
The source is split into shards, every shard is sorted in memory and the
sorted shards are merged in rounds until one file is left.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	Run(RootCmd)
}

// Run executes c with a context cancelled on SIGINT or SIGTERM. A failing
// command is logged once, with its immediate cause, and the process exits 1.
func Run(c *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := c.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	// Development config gives ISO8601 timestamps, which read better on a terminal
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr == nil {
		l.Error("command failed", logger.WithCause(err)...)
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

func addConfigFlag(c *cobra.Command) {
	c.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding the .env file")
}

func init() {
	addConfigFlag(RootCmd)
}
