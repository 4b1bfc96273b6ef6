package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"file-sorter/core/processing"
	"file-sorter/core/utils"
	"file-sorter/feature/generator"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newGenerateCmd builds the generate command. send sets the default of --send.
func newGenerateCmd(use string, send bool) *cobra.Command {
	var (
		path string
		size string
		seed uint64
	)

	c := &cobra.Command{
		Use:   use,
		Short: "Generate a file of random records",
		Long: `Writes random "<number>. <word>" lines until the file reaches the requested size.
With --send the path of the generated file is published to the queue topic.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer rt.close()

			cfg := rt.cfg.Generator
			if path != "" {
				cfg.Path = path
			}
			if size != "" {
				cfg.Size = size
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			res, err := rt.generateFile(ctx, cfg)
			if err != nil {
				return err
			}

			sendNow, _ := cmd.Flags().GetBool("send")
			if !sendNow {
				return nil
			}

			broker, err := rt.broker()
			if err != nil {
				return err
			}
			defer broker.Close()

			if err := broker.Send(ctx, rt.cfg.Queue.Topic, res.Target()); err != nil {
				return fmt.Errorf("failed to publish %s: %w", res.Target(), err)
			}
			rt.log.Info("Sent generated file path", zap.String("topic", rt.cfg.Queue.Topic))
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "target file (default from GENERATOR_PATH)")
	c.Flags().StringVar(&size, "size", "", "target size such as 50MB or 10GiB (default from GENERATOR_SIZE)")
	c.Flags().Uint64Var(&seed, "seed", 0, "random seed; 0 picks a random one")
	c.Flags().Bool("send", send, "publish the generated path to the queue")
	return c
}

// generateFile writes cfg.Path with a progress bar on stderr.
func (rt *runtime) generateFile(ctx context.Context, cfg generator.Config) (processing.Result, error) {
	total, err := cfg.SizeBytes()
	if err != nil {
		return processing.Result{}, err
	}

	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetDescription("Generating "+cfg.Path),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	start := time.Now()
	res, err := rt.generator(cfg).GenerateWithProgress(ctx, cfg.Path, total, func(written int64) {
		_ = bar.Set64(min(written, total))
	})
	_ = bar.Finish()
	if err != nil {
		return res, fmt.Errorf("failed to generate %s: %w", cfg.Path, err)
	}

	rt.log.Info("Was created file",
		zap.String("target", res.Target()),
		zap.String("size", utils.FormatSize(total)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// NewProducerCommand returns the standalone producer: generate, then publish the path.
func NewProducerCommand() *cobra.Command {
	c := newGenerateCmd("producer", true)
	c.SilenceUsage = true
	c.SilenceErrors = true
	addConfigFlag(c)
	return c
}

func init() {
	RootCmd.AddCommand(newGenerateCmd("generate", false))
}
