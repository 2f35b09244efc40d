package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luminexhq/luminex-cli/internal/client"
	"github.com/luminexhq/luminex-cli/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change client settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the configured backend base URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			url := viper.GetString("api.base_url")
			if url == "" {
				url = client.DefaultBaseURL
			}
			cmd.Println(url)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <base-url>",
		Short: "Persist the backend base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("api.base_url", args[0])

			path := viper.ConfigFileUsed()
			if path == "" {
				var err error
				path, err = config.File()
				if err != nil {
					return fmt.Errorf("failed to create config directory: %w", err)
				}
			}

			if err := viper.WriteConfigAs(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			cmd.Printf("Saved api.base_url = %s\n", args[0])
			return nil
		},
	})

	return cmd
}
