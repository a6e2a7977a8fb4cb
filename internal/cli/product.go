package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/sweets/internal/recipe"
	"github.com/mesh-intelligence/sweets/pkg/currency"
	"github.com/mesh-intelligence/sweets/pkg/types"
)

// productFlags are the flags shared by the bobba and cake commands.
type productFlags struct {
	currency   string
	ingredient string
}

// report is the summary printed for a built product.
type report struct {
	Product       any               `json:"product"`
	TotalCalories float64           `json:"total_calories"`
	MostCaloric   *types.Ingredient `json:"most_caloric,omitempty"`
	Price         float64           `json:"price"`
	Currency      string            `json:"currency"`
	Lookup        *lookup           `json:"lookup,omitempty"`
}

type lookup struct {
	Name       string            `json:"name"`
	Found      bool              `json:"found"`
	Ingredient *types.Ingredient `json:"ingredient,omitempty"`
}

func newBobbaCmd(a *app) *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "bobba <recipe.yaml>",
		Short: "Build a bubble tea from a recipe and summarize it",
		Long: `Bobba builds a bubble tea drink from a YAML recipe and prints its
ingredients, total calories, most caloric ingredient and price.

Example:
  sweets bobba green-milk-tea.yaml --currency euro --ingredient milk`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := recipe.Load(args[0])
			if err != nil {
				return err
			}
			p, err := rec.Bobba()
			if err != nil {
				return err
			}
			a.log.Debug("bobba built", zap.String("id", p.ID()), zap.Int("ingredients", len(p.Ingredients())))
			return a.report(cmd, f, p, p, nil)
		},
	}
	addProductFlags(cmd, &f)
	return cmd
}

func newCakeCmd(a *app) *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "cake <recipe.yaml>",
		Short: "Build a pineapple cake from a recipe and summarize it",
		Long: `Cake builds a pineapple cake from a YAML recipe. Every cake starts with
butter, egg yolk and flour; the recipe's ingredients are added after them.
The recipe must name a pineapple variety and a manufacturer.

Example:
  sweets cake queen-cake.yaml --currency yen`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := recipe.Load(args[0])
			if err != nil {
				return err
			}
			c, err := rec.Cake(a.dir)
			if err != nil {
				return err
			}
			a.log.Debug("cake built",
				zap.String("id", c.ID()),
				zap.String("pineapple", c.Pineapple().Name),
				zap.String("manufacturer", c.Manufacturer().Name),
			)
			return a.report(cmd, f, c.Product, c, func(w io.Writer) {
				m := c.Manufacturer()
				fmt.Fprintf(w, "pineapple:    %s (grown in %s)\n", c.Pineapple().Name, c.Pineapple().Cultivation())
				fmt.Fprintf(w, "manufacturer: %s, %s\n", m.Name, m.Region)
			})
		},
	}
	addProductFlags(cmd, &f)
	return cmd
}

func addProductFlags(cmd *cobra.Command, f *productFlags) {
	cmd.Flags().StringVar(&f.currency, "currency", "", "currency to show the price in (default: config currency.display)")
	cmd.Flags().StringVar(&f.ingredient, "ingredient", "", "look up an ingredient by name")
}

// report prints the summary of p. view is what --json marshals as the
// product; extra adds text lines specific to the product kind.
func (a *app) report(cmd *cobra.Command, f productFlags, p *types.Product, view any, extra func(io.Writer)) error {
	target := f.currency
	if target == "" {
		target = a.cfg.Currency.Display
	}

	a.warnUnknownCurrency(p.PriceInfo().Currency, target)
	price, err := p.PriceIn(a.rates, target)
	if err != nil {
		return err
	}

	r := report{
		Product:       view,
		TotalCalories: p.TotalCalories(),
		Price:         price,
		Currency:      target,
	}
	if most, ok := p.MostCaloricIngredient(); ok {
		r.MostCaloric = &most
	}
	if f.ingredient != "" {
		r.Lookup = &lookup{Name: f.ingredient}
		if ing, ok := p.IngredientByName(f.ingredient); ok {
			r.Lookup.Found = true
			r.Lookup.Ingredient = &ing
		}
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return printJSON(out, r)
	}

	pkg := p.Packaging()
	fmt.Fprintf(out, "id:           %s\n", p.ID())
	fmt.Fprintf(out, "packaging:    %s [%s] size %d\n", pkg.Name, pkg.Tag, pkg.Size)
	if extra != nil {
		extra(out)
	}
	fmt.Fprintln(out, "ingredients:")
	for _, ing := range p.Ingredients() {
		fmt.Fprintf(out, "  - %s\n", formatIngredient(ing))
	}
	fmt.Fprintf(out, "calories:     %g\n", r.TotalCalories)
	if r.MostCaloric != nil {
		fmt.Fprintf(out, "most caloric: %s\n", r.MostCaloric.Name)
	}
	info := p.PriceInfo()
	fmt.Fprintf(out, "price:        %s (from %s, %s)\n",
		currency.Format(price, target), currency.Format(info.Price, info.Currency), info.Vendor)
	if r.Lookup != nil {
		if r.Lookup.Found {
			fmt.Fprintf(out, "lookup:       %s\n", formatIngredient(*r.Lookup.Ingredient))
		} else {
			fmt.Fprintf(out, "lookup:       %s not in recipe\n", r.Lookup.Name)
		}
	}
	return nil
}
