package cmd

import (
	"fmt"

	"file-sorter/feature/sorter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <path>",
	Short: "Check that a file is sorted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		report, err := sorter.Verify(cmd.Context(), args[0], rt.cfg.Sorter.ReadChunkBytes)
		if err != nil {
			return err
		}
		if !report.Sorted {
			v := report.Violation
			return fmt.Errorf("%s is not sorted: line %d %q follows %q", report.Path, v.Line, v.Current, v.Previous)
		}

		rt.log.Info("File is sorted", zap.String("path", report.Path), zap.Int("records", report.Records))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}
