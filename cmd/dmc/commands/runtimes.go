package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewRuntimesCommand creates the runtime environments command group.
func NewRuntimesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "runtimes",
		Aliases: []string{"runtime-environments", "re"},
		Short:   "Inspect runtime environments",
	}

	cmd.AddCommand(newRuntimesListCommand())
	cmd.AddCommand(newRuntimesGetCommand())

	return cmd
}

func newRuntimesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List runtime environments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			runtimes, err := client.GetRuntimeEnvironments(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list runtime environments: %w", err)
			}

			return outputRecords(runtimes, "runtime environments", "id", "name", "isShared", "federatedId")
		},
	}
}

func newRuntimesGetCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get [ID]",
		Short: "Get a runtime environment by id or name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := idOrName(args, name); err != nil {
				return err
			}

			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			return getByIDOrName(args, name, "runtime environment",
				client.GetRuntimeEnvironmentByID, client.GetRuntimeEnvironmentByName)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "runtime environment name")

	return cmd
}
