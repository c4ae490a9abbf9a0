package commands

import (
	"context"
	"fmt"

	"github.com/iics-tools/dmc/internal/constants"
	"github.com/spf13/cobra"
)

// NewSAMLCommand creates the SAML mapping command group.
func NewSAMLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saml",
		Short: "Manage SAML role and group mappings",
	}

	cmd.AddCommand(newSAMLListCommand("role-mappings", "List SAML role mappings", "SAML role mappings", false))
	cmd.AddCommand(newSAMLListCommand("group-mappings", "List SAML group mappings", "SAML group mappings", true))
	cmd.AddCommand(newSAMLAddGroupMappingsCommand())
	cmd.AddCommand(newSAMLRemoveGroupMappingsCommand())

	return cmd
}

func newSAMLListCommand(use, short, noun string, groups bool) *cobra.Command {
	var limit, skip int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			list := client.ListSAMLRoleMappings
			if groups {
				list = client.ListSAMLGroupMappings
			}

			mappings, err := list(context.Background(), limit, skip)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", noun, err)
			}

			return outputRecords(mappings, noun, "roleName", "samlGroupName", "samlRoleName")
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultSAMLPageSize, "maximum number of mappings")
	cmd.Flags().IntVar(&skip, "skip", constants.DefaultSkip, "number of mappings to skip")

	return cmd
}

func newSAMLAddGroupMappingsCommand() *cobra.Command {
	var reuseGroup bool

	cmd := &cobra.Command{
		Use:   "add-group-mappings ROLE=GROUP[,GROUP...]...",
		Short: "Map SAML groups to roles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mappings, err := parseMappings(args)
			if err != nil {
				return err
			}

			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			ok, err := client.AddSAMLGroupMappings(context.Background(), mappings, reuseGroup)
			if err != nil {
				return fmt.Errorf("failed to add SAML group mappings: %w", err)
			}

			return outputResult("Add SAML group mappings", ok)
		},
	}

	cmd.Flags().BoolVar(&reuseGroup, "reuse-group", true, "reuse existing groups with the same name")

	return cmd
}

func newSAMLRemoveGroupMappingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-group-mappings ROLE=GROUP[,GROUP...]...",
		Short: "Remove SAML group to role mappings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mappings, err := parseMappings(args)
			if err != nil {
				return err
			}

			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			ok, err := client.RemoveSAMLGroupMappings(context.Background(), mappings)
			if err != nil {
				return fmt.Errorf("failed to remove SAML group mappings: %w", err)
			}

			return outputResult("Remove SAML group mappings", ok)
		},
	}
}
