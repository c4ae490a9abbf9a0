package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewPrivilegesCommand creates the privileges command group.
func NewPrivilegesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "privileges",
		Short: "Inspect privileges",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the privileges available to roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			privileges, err := client.ListPrivileges(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list privileges: %w", err)
			}

			return outputRecords(privileges, "privileges", "id", "name", "service", "status")
		},
	})

	return cmd
}

// NewRolesCommand creates the roles command group.
func NewRolesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roles",
		Aliases: []string{"role"},
		Short:   "Manage roles",
		Long:    "List, inspect, create, update and delete custom roles",
	}

	cmd.AddCommand(newRolesListCommand())
	cmd.AddCommand(newRolesGetCommand())
	cmd.AddCommand(newRolesCreateCommand())
	cmd.AddCommand(newRolesPrivilegesCommand("add-privileges", true))
	cmd.AddCommand(newRolesPrivilegesCommand("remove-privileges", false))
	cmd.AddCommand(newRolesDeleteCommand())

	return cmd
}

func newRolesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			roles, err := client.ListRoles(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list roles: %w", err)
			}

			return outputRecords(roles, "roles", "id", "roleName", "description", "status", "systemRole")
		},
	}
}

func newRolesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Get a role with its privileges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			roles, err := client.GetRoleDetails(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get role: %w", err)
			}

			return outputRecords(roles, "roles", "id", "roleName", "description", "privileges")
		},
	}
}

func newRolesCreateCommand() *cobra.Command {
	var (
		description string
		privileges  []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			role, err := client.CreateRole(context.Background(), args[0], description, privileges)
			if err != nil {
				return fmt.Errorf("failed to create role: %w", err)
			}

			return outputRecord(role)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "role description")
	cmd.Flags().StringSliceVar(&privileges, "privilege", nil, "privilege id (repeatable)")

	return cmd
}

func newRolesPrivilegesCommand(use string, add bool) *cobra.Command {
	var (
		byName     bool
		privileges []string
	)

	short := "Remove privileges from a role"
	if add {
		short = "Add privileges to a role"
	}

	cmd := &cobra.Command{
		Use:   use + " ROLE",
		Short: short,
		Long:  short + ". ROLE is a role id, or a role name with --by-name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			update := client.RemoveRolePrivileges
			switch {
			case add && byName:
				update = client.AddRolePrivilegesByName
			case add:
				update = client.AddRolePrivileges
			case byName:
				update = client.RemoveRolePrivilegesByName
			}

			ok, err := update(context.Background(), args[0], privileges)
			if err != nil {
				return fmt.Errorf("failed to update role privileges: %w", err)
			}

			return outputResult(short, ok)
		},
	}

	cmd.Flags().BoolVar(&byName, "by-name", false, "treat ROLE as a role name")
	cmd.Flags().StringSliceVar(&privileges, "privilege", nil, "privilege id or name (repeatable)")

	return cmd
}

func newRolesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			ok, err := client.DeleteRole(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete role: %w", err)
			}

			return outputResult("Delete role "+args[0], ok)
		},
	}
}
