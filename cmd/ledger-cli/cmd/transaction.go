/*
Copyright © 2024 pando
*/
package cmd

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/pandodao/safe-ledger/core"
	"github.com/pandodao/safe-ledger/handler/api"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var transactionsOpt struct {
	state string
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "list transactions, or show one by id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			var tx api.Transaction
			if err := do(cmd, http.MethodGet, "/transactions/"+url.PathEscape(args[0]), nil, &tx); err != nil {
				return err
			}

			return printJson(cmd, tx)
		}

		path := "/transactions"
		if transactionsOpt.state != "" {
			path += "?state=" + url.QueryEscape(transactionsOpt.state)
		}

		var transactions []api.Transaction
		if err := do(cmd, http.MethodGet, path, nil, &transactions); err != nil {
			return err
		}

		return printJson(cmd, transactions)
	},
}

var transferOpt struct {
	id       string
	from     string
	to       string
	amount   string
	currency string
}

// transferCmd represents the transfer command
var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "submit a pending transfer",
	RunE: func(cmd *cobra.Command, args []string) error {
		currency := core.Currency(transferOpt.currency)
		if !currency.IsValid() {
			return fmt.Errorf("unknown currency %q", transferOpt.currency)
		}

		amount, err := decimal.NewFromString(transferOpt.amount)
		if err != nil {
			return err
		}

		req := &api.CreateTransactionRequest{
			ID:           transferOpt.id,
			Amount:       amount.InexactFloat64(),
			Currency:     currency,
			SourceUserID: transferOpt.from,
			TargetUserID: transferOpt.to,
		}

		var tx api.Transaction
		if err := do(cmd, http.MethodPost, "/transactions", req, &tx); err != nil {
			return err
		}

		return printJson(cmd, tx)
	},
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(transferCmd)

	transactionsCmd.Flags().StringVar(&transactionsOpt.state, "state", "", "filter by state (pending, processed, invalid)")

	transferCmd.Flags().StringVar(&transferOpt.id, "id", "", "transaction id (optional)")
	transferCmd.Flags().StringVar(&transferOpt.from, "from", "", "source user id")
	transferCmd.Flags().StringVar(&transferOpt.to, "to", "", "target user id")
	transferCmd.Flags().StringVar(&transferOpt.amount, "amount", "0", "amount")
	transferCmd.Flags().StringVar(&transferOpt.currency, "currency", string(core.CurrencyBitcoin), "currency (bitcoin, ethereum)")
	_ = transferCmd.MarkFlagRequired("from")
	_ = transferCmd.MarkFlagRequired("to")
}
