package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sweets/internal/config"
	"github.com/mesh-intelligence/sweets/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and a default config.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := paths.ResolveConfigDir(a.flags.configDir)
			if err != nil {
				return &sysError{fmt.Errorf("resolve config dir: %w", err)}
			}

			written, err := config.WriteDefault(dir)
			if err != nil {
				return &sysError{err}
			}

			out := cmd.OutOrStdout()
			if written {
				fmt.Fprintf(out, "Wrote %s\n", paths.ConfigFile(dir))
			} else {
				fmt.Fprintf(out, "Config already present at %s\n", paths.ConfigFile(dir))
			}
			return nil
		},
	}
}
