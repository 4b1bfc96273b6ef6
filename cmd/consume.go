package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConsumeCmd(use string) *cobra.Command {
	var (
		path   string
		upload bool
	)

	c := &cobra.Command{
		Use:   use,
		Short: "Sort the next file announced on the queue",
		Long: `Waits for one file path on the queue topic and sorts that file.
With --path the queue is skipped and the given file is sorted directly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer rt.close()

			if path == "" {
				broker, err := rt.broker()
				if err != nil {
					return err
				}
				defer broker.Close()

				rt.log.Info("Waiting for a file path", zap.String("topic", rt.cfg.Queue.Topic))
				path, err = broker.ReadOne(ctx, rt.cfg.Queue.Topic)
				if err != nil {
					return fmt.Errorf("failed to read from %s: %w", rt.cfg.Queue.Topic, err)
				}
				rt.log.Info("Received file path", zap.String("path", path))
			}

			return rt.sortFile(ctx, path, upload)
		},
	}

	c.Flags().StringVar(&path, "path", "", "sort this file instead of reading the queue")
	c.Flags().BoolVar(&upload, "upload", false, "upload the sorted file to object storage")
	return c
}

// NewConsumerCommand returns the standalone consumer.
func NewConsumerCommand() *cobra.Command {
	c := newConsumeCmd("consumer")
	c.SilenceUsage = true
	c.SilenceErrors = true
	addConfigFlag(c)
	return c
}

func init() {
	RootCmd.AddCommand(newConsumeCmd("consume"))
}
