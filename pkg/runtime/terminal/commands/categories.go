package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// forecastCategories are the detail rows a forecast is built from, in
// report order.
var forecastCategories = []string{
	"Sales Orders (Submitted)",
	"Sales Orders (Billed)",
	"Sales Orders (Scheduled)",
	"Sales Invoices",
	"Purchase Orders (Submitted)",
	"Purchase Orders (Billed)",
	"Purchase Orders (Scheduled)",
	"Purchase Invoices",
	"Salaries",
	"Expense Claims",
}

func NewCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the cash flow categories a forecast reports on",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(forecastCategories, "\n"))
			return nil
		},
	}
	return cmd
}
