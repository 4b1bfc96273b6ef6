package cmd

import (
	"fmt"

	"file-sorter/core/queue"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newPipelineCmd() *cobra.Command {
	var (
		size   string
		upload bool
	)

	c := &cobra.Command{
		Use:   "pipeline",
		Short: "Generate a file and sort it in one process",
		Long: `Runs the producer and the consumer side by side. The generated path is handed
over through an in-memory queue, so no Redis is needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			cfg := rt.cfg.Generator
			if size != "" {
				cfg.Size = size
			}
			topic := rt.cfg.Queue.Topic

			broker := queue.NewMemory()
			defer broker.Close()

			g, ctx := errgroup.WithContext(cmd.Context())

			g.Go(func() error {
				path, err := broker.ReadOne(ctx, topic)
				if err != nil {
					return fmt.Errorf("failed to read from %s: %w", topic, err)
				}
				rt.log.Info("Received file path", zap.String("path", path))
				return rt.sortFile(ctx, path, upload)
			})

			g.Go(func() error {
				res, err := rt.generateFile(ctx, cfg)
				if err != nil {
					return err
				}
				return broker.Send(ctx, topic, res.Target())
			})

			return g.Wait()
		},
	}

	c.Flags().StringVar(&size, "size", "", "size of the generated file (default from GENERATOR_SIZE)")
	c.Flags().BoolVar(&upload, "upload", false, "upload the sorted file to object storage")
	return c
}

func init() {
	RootCmd.AddCommand(newPipelineCmd())
}
