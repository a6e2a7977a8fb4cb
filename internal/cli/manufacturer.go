package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newManufacturerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manufacturer",
		Short: "Look up pineapple cake manufacturers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "regions",
		Short: "List regions with known manufacturers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNames(cmd, a.dir.Regions())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list <region>",
		Short: "List the manufacturers of a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNames(cmd, a.dir.AllByRegion(args[0]))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "get <region> <name>",
		Short: "Show a manufacturer and its ranking",
		Long: `Get looks up a manufacturer by region and exact name.

Example:
  sweets manufacturer get taipei 新東陽`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.dir.ByRegionAndName(args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return printJSON(out, m)
			}
			ranking := "unranked"
			if m.Ranking != nil {
				ranking = fmt.Sprintf("ranking %d", *m.Ranking)
			}
			fmt.Fprintf(out, "%s (%s), %s\n", m.Name, m.Region, ranking)
			return nil
		},
	})
	return cmd
}

func (a *app) printNames(cmd *cobra.Command, names []string) error {
	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return printJSON(out, names)
	}
	for _, n := range names {
		fmt.Fprintln(out, n)
	}
	return nil
}
