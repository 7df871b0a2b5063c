/*
Copyright © 2024 pando
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ledger-cli",
	Short: "api cmd for safe-ledger service",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("endpoint", "l", "http://localhost:8080", "api endpoint")
	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
}

type apiError struct {
	Error string `json:"error"`
}

func getClient() *resty.Client {
	return resty.New().
		SetBaseURL(viper.GetString("endpoint") + "/api").
		SetHeader("Accept", "application/json")
}

func do(cmd *cobra.Command, method, path string, body, result any) error {
	var e apiError

	r := getClient().R().
		SetContext(cmd.Context()).
		SetResult(result).
		SetError(&e)

	if body != nil {
		r.SetBody(body)
	}

	resp, err := r.Execute(method, path)
	if err != nil {
		return err
	}

	if resp.IsError() {
		if e.Error == "" {
			e.Error = resp.String()
		}

		return fmt.Errorf("%s: %s", resp.Status(), e.Error)
	}

	return nil
}

func printJson(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	cmd.Println(string(b))
	return nil
}
