package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSizeCommand(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Print the total size of every file under the root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := a.service().Index(cmd.Context())
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), page.Bytes)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Folder size: %s\n", page.FolderSize)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the size in bytes")
	return cmd
}
