package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sweets/pkg/sweets"
)

const modulePath = "github.com/mesh-intelligence/sweets"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sweets version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "sweets v%s\nmodule: %s\n", sweets.Version, modulePath)
			return nil
		},
	}
}
