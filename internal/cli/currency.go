package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sweets/pkg/currency"
)

type rateRow struct {
	Code      string  `json:"code"`
	Rate      float64 `json:"rate"`
	Reference bool    `json:"reference"`
}

type conversion struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Result float64 `json:"result"`
}

func newCurrencyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Inspect currency rates and convert amounts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List supported currencies and their rate to the reference currency",
		Args:  cobra.NoArgs,
		RunE:  a.runCurrencyList,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount between currencies",
		Long: `Convert multiplies the amount by the source rate and then by the target rate,
pivoting through the reference currency (dollar).

Example:
  sweets currency convert 20 ntd euro`,
		Args: cobra.ExactArgs(3),
		RunE: a.runCurrencyConvert,
	})
	return cmd
}

func (a *app) runCurrencyList(cmd *cobra.Command, args []string) error {
	rows := make([]rateRow, 0, len(a.rates.Codes()))
	for _, code := range a.rates.Codes() {
		rows = append(rows, rateRow{
			Code:      code,
			Rate:      a.rates.Rate(code),
			Reference: code == a.rates.Reference(),
		})
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return printJSON(out, rows)
	}
	for _, r := range rows {
		marker := ""
		if r.Reference {
			marker = " (reference)"
		}
		fmt.Fprintf(out, "%-8s %g%s\n", r.Code, r.Rate, marker)
	}
	return nil
}

func (a *app) runCurrencyConvert(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}
	if err := currency.CheckAmount(amount); err != nil {
		return err
	}
	from, to := args[1], args[2]

	a.warnUnknownCurrency(from, to)
	result, err := a.rates.Convert(amount, from, to)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return printJSON(out, conversion{Amount: amount, From: from, To: to, Result: result})
	}
	fmt.Fprintf(out, "%s = %s\n", currency.Format(amount, from), currency.Format(result, to))
	return nil
}
