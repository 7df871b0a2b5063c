/*
Copyright © 2024 pando
*/
package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"

	"github.com/pandodao/safe-ledger/handler/api"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "list users and their balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		var users []api.User
		if err := do(cmd, http.MethodGet, "/users", nil, &users); err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "USER\tNAME\tCURRENCY\tBALANCE\tLIMIT")
		for _, u := range users {
			for _, b := range u.Balances {
				limit := "-"
				if b.MaxTransactionAmount != nil {
					limit = formatAmount(*b.MaxTransactionAmount)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, b.Currency.Label(), formatAmount(b.Balance), limit)
			}
		}

		return w.Flush()
	},
}

var userOpt struct {
	transactions bool
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "show a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if userOpt.transactions {
			var transactions []api.Transaction
			if err := do(cmd, http.MethodGet, "/users/"+url.PathEscape(args[0])+"/transactions", nil, &transactions); err != nil {
				return err
			}

			return printJson(cmd, transactions)
		}

		var user api.User
		if err := do(cmd, http.MethodGet, "/users/"+url.PathEscape(args[0]), nil, &user); err != nil {
			return err
		}

		return printJson(cmd, user)
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(userCmd)

	userCmd.Flags().BoolVar(&userOpt.transactions, "transactions", false, "list transactions involving the user")
}

func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).String()
}
