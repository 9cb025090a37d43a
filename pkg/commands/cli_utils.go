package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/county-directory/console/modules"
)

// NewUtilityCommands creates all utility commands (check_tr_keys, check_tr_usage, api-ping)
func NewUtilityCommands() []*cobra.Command {
	return []*cobra.Command{
		newCheckTrKeysCmd(),
		newCheckTrUsageCmd(),
		newAPIPingCmd(),
	}
}

func newCheckTrKeysCmd() *cobra.Command {
	var locales []string
	cmd := &cobra.Command{
		Use:   "check_tr_keys",
		Short: "Check translation key consistency across all locales",
		Long:  `Validates that all translation keys are present across all configured locales and reports any missing translations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return CheckTrKeys(locales, modules.BuiltInModules...)
		},
	}
	cmd.Flags().StringSliceVar(&locales, "locales", nil, "locales to compare (default en,zh)")
	return cmd
}

func newCheckTrUsageCmd() *cobra.Command {
	var locales []string
	cmd := &cobra.Command{
		Use:   "check_tr_usage",
		Short: "Check that every translation key used in code exists",
		Long:  `Scans Go sources under the working directory for literal translation keys and reports those missing from the allowed locales.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return CheckTrUsage(locales, modules.BuiltInModules...)
		},
	}
	cmd.Flags().StringSliceVar(&locales, "locales", nil, "locales to check (default en,zh)")
	return cmd
}

func newAPIPingCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "api-ping",
		Short: "Call GET /counties on the configured contacts API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApplication()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return APIPing(ctx, app.API(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "overall deadline")
	return cmd
}
