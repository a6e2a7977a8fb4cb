package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sweets/pkg/catalog"
	"github.com/mesh-intelligence/sweets/pkg/types"
)

type ingredientRow struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

type pineappleRow struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Origin      string `json:"origin,omitempty"`
	Cultivation string `json:"cultivation"`
}

func newIngredientCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingredient",
		Short: "Inspect the basic ingredient catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List basic ingredients and their calories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []ingredientRow
			for _, id := range catalog.BasicIngredients() {
				ing := catalog.Ingredient(id)
				rows = append(rows, ingredientRow{ID: id.String(), Name: ing.Name, Calories: ing.Calories})
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return printJSON(out, rows)
			}
			for _, r := range rows {
				fmt.Fprintf(out, "%-10s %-12s %g\n", r.ID, r.Name, r.Calories)
			}
			return nil
		},
	})
	return cmd
}

func newPineappleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pineapple",
		Short: "Inspect pineapple varieties",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pineapple varieties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []pineappleRow
			for _, kind := range catalog.PineappleTypes() {
				rows = append(rows, newPineappleRow(kind))
			}
			return a.printPineapples(cmd, rows)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <type>",
		Short: "Show a pineapple variety",
		Long: `Show prints one pineapple variety.

Valid types: cayenne, queen, red-spanish, abacaxi`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParsePineappleType(args[0])
			if err != nil {
				return err
			}
			return a.printPineapples(cmd, []pineappleRow{newPineappleRow(kind)})
		},
	})
	return cmd
}

func newPineappleRow(kind catalog.PineappleType) pineappleRow {
	p := catalog.Pineapple(kind)
	return pineappleRow{
		Type:        kind.String(),
		Name:        p.Name,
		Origin:      deref(p.Origin),
		Cultivation: p.Cultivation(),
	}
}

func (a *app) printPineapples(cmd *cobra.Command, rows []pineappleRow) error {
	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return printJSON(out, rows)
	}
	for _, r := range rows {
		fmt.Fprintf(out, "%-12s origin: %-10s grown in: %s\n", r.Name, r.Origin, r.Cultivation)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatIngredient(ing types.Ingredient) string {
	if ing.Quantity != nil {
		return fmt.Sprintf("%s (%g kcal, qty %g)", ing.Name, ing.Calories, *ing.Quantity)
	}
	return fmt.Sprintf("%s (%g kcal)", ing.Name, ing.Calories)
}
