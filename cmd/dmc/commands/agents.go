package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewAgentsCommand creates the secure agents command group.
func NewAgentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agents",
		Aliases: []string{"agent"},
		Short:   "Inspect secure agents",
	}

	cmd.AddCommand(newAgentsListCommand())
	cmd.AddCommand(newAgentsGetCommand())
	cmd.AddCommand(newAgentsDetailsCommand())

	return cmd
}

func newAgentsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List secure agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			agents, err := client.ListSecureAgents(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list secure agents: %w", err)
			}

			return outputRecords(agents, "secure agents", "id", "name", "active", "readyToRun", "platform", "agentVersion")
		},
	}
}

func newAgentsGetCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get [ID]",
		Short: "Get a secure agent by id or name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := idOrName(args, name); err != nil {
				return err
			}

			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			return getByIDOrName(args, name, "secure agent", client.GetAgentByID, client.GetAgentByName)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "secure agent name")

	return cmd
}

func newAgentsDetailsCommand() *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "details ID",
		Short: "Show the service details of a secure agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			details, err := client.GetAgentDetails(context.Background(), args[0], statusOnly)
			if err != nil {
				return fmt.Errorf("failed to get secure agent details: %w", err)
			}

			return outputRecord(details)
		},
	}

	cmd.Flags().BoolVar(&statusOnly, "status-only", false, "only return status information")

	return cmd
}
