package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewConnectionsCommand creates the connections command group.
func NewConnectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connections",
		Aliases: []string{"connection", "conn"},
		Short:   "Inspect and test connections",
	}

	cmd.AddCommand(newConnectionsListCommand())
	cmd.AddCommand(newConnectionsGetCommand())
	cmd.AddCommand(newConnectionsTestCommand())

	return cmd
}

func newConnectionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			connections, err := client.ListConnections(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list connections: %w", err)
			}

			return outputRecords(connections, "connections", "id", "name", "type", "runtimeEnvironmentId")
		},
	}
}

func newConnectionsGetCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get [ID]",
		Short: "Get a connection by id or name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := idOrName(args, name); err != nil {
				return err
			}

			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			return getByIDOrName(args, name, "connection", client.GetConnection, client.GetConnectionByName)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "connection name")

	return cmd
}

func newConnectionsTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test ID",
		Short: "Test a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			result, err := client.TestConnection(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to test connection: %w", err)
			}

			return outputRecord(result)
		},
	}
}
