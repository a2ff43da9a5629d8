package main

import (
	"context"
	"fmt"

	"payment-registry/internal/config"
	"payment-registry/internal/infra/database"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			table, err := database.NewJSONStore(cfg.DataPath).LoadAll(context.Background())
			if err != nil {
				return err
			}
			out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(table, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
