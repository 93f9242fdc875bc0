package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/college-admin-api/internal/models"
)

func getSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create missing tables and print per-table results",
		Long: `setup creates Department, Teacher, Course, Enrolled, Payment, Book,
Authors, Emails and Phones when they do not exist. The Student table must
already exist. Each table is attempted independently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cfg, logr)
			if err != nil {
				return fmt.Errorf("init app: %w", err)
			}
			defer a.Close()

			result := a.services.Setup.Run(cmd.Context())
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			for _, r := range result.Results {
				if r.Status == models.TableStatusError {
					return fmt.Errorf("table %s: %s", r.Table, r.Error)
				}
			}
			return nil
		},
	}
}
