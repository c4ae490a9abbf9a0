package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organizations", "org"},
		Short:   "Inspect organizations",
		Long:    "Show the current organization or look one up by id or name",
	}

	cmd.AddCommand(newOrgsCurrentCommand())
	cmd.AddCommand(newOrgsGetCommand())

	return cmd
}

func newOrgsCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the current organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			org, err := client.GetOrgDetails(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get organization: %w", err)
			}

			return outputRecord(org)
		},
	}
}

func newOrgsGetCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get [ID]",
		Short: "Get an organization by id or name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := idOrName(args, name); err != nil {
				return err
			}

			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			return getByIDOrName(args, name, "organization", client.GetOrgByID, client.GetOrgByName)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "organization name")

	return cmd
}
