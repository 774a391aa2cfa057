package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"imd/internal/config"
)

func newInitConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Create a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := config.GetDefaultConfigPath()

			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(out, "Config file already exists at: %s\n", path)
				fmt.Fprintln(out, "Delete it first if you want to recreate it.")
				return nil
			}

			if err := config.SaveConfigFile(config.DefaultConfig(), path); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}

			fmt.Fprintf(out, "Created default config file at: %s\n", path)
			fmt.Fprintln(out, "Available options:")
			fmt.Fprintln(out, "  debug: true/false (enable detailed logging)")
			fmt.Fprintln(out, "  write: true/false (apply the fixed tags to the file)")
			fmt.Fprintln(out, "  search_url: iTunes Search API endpoint")
			fmt.Fprintln(out, "  request_timeout: e.g. 10s")
			fmt.Fprintln(out, "  duration_tolerance: e.g. 10s")
			fmt.Fprintln(out, "  top_matches: number of candidates shown in the report")
			fmt.Fprintln(out, "  weights: title, artist, title_artist, duration")
			fmt.Fprintln(out, "  log_file: path of an optional log file")
			return nil
		},
	}
}
