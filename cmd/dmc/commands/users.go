package commands

import (
	"context"
	"fmt"

	"github.com/iics-tools/dmc/internal/constants"
	"github.com/spf13/cobra"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Inspect users",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var limit, skip int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			users, err := client.ListUsers(context.Background(), limit, skip)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return outputRecords(users, "users", "id", "userName", "firstName", "lastName", "email", "state")
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultUserPageSize, "maximum number of users")
	cmd.Flags().IntVar(&skip, "skip", constants.DefaultSkip, "number of users to skip")

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get [ID]",
		Short: "Get a user by id or user name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := idOrName(args, name); err != nil {
				return err
			}

			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			return getByIDOrName(args, name, "user", client.GetUserByID, client.GetUserByName)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "user name")

	return cmd
}

// NewGroupsCommand creates the user groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"user-groups", "group"},
		Short:   "Inspect user groups",
	}

	cmd.AddCommand(newGroupsListCommand())
	cmd.AddCommand(newGroupsGetCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	var limit, skip int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List user groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			groups, err := client.ListUserGroups(context.Background(), limit, skip)
			if err != nil {
				return fmt.Errorf("failed to list user groups: %w", err)
			}

			return outputRecords(groups, "user groups", "id", "userGroupName", "description")
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultUserPageSize, "maximum number of user groups")
	cmd.Flags().IntVar(&skip, "skip", constants.DefaultSkip, "number of user groups to skip")

	return cmd
}

func newGroupsGetCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get [ID]",
		Short: "Get a user group by id or name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := idOrName(args, name); err != nil {
				return err
			}

			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			return getByIDOrName(args, name, "user group", client.GetUserGroupByID, client.GetUserGroupByName)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "user group name")

	return cmd
}
