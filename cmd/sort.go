package cmd

import (
	"github.com/spf13/cobra"
)

func newSortCmd() *cobra.Command {
	var upload bool

	c := &cobra.Command{
		Use:   "sort <path>",
		Short: "Sort a file",
		Long:  `Splits the file into shards, sorts every shard and merges them into one sorted file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			return rt.sortFile(cmd.Context(), args[0], upload)
		},
	}

	c.Flags().BoolVar(&upload, "upload", false, "upload the sorted file to object storage")
	return c
}

func init() {
	RootCmd.AddCommand(newSortCmd())
}
