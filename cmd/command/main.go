package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/county-directory/console/pkg/commands"
	"github.com/county-directory/console/pkg/configuration"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "command",
		Short:         "Maintenance commands for the county console",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(commands.NewUtilityCommands()...)
	return cmd
}

func main() {
	err := newRootCmd().Execute()
	configuration.Use().Unload()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
