package commands_test

import (
	"testing"

	"github.com/iics-tools/dmc/cmd/dmc/commands"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func TestCommandGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cmd         *cobra.Command
		subcommands []string
	}{
		{"documents", commands.NewDocumentsCommand(), []string{"list"}},
		{"orgs", commands.NewOrgsCommand(), []string{"current", "get"}},
		{"runtimes", commands.NewRuntimesCommand(), []string{"list", "get"}},
		{"agents", commands.NewAgentsCommand(), []string{"list", "get", "details"}},
		{"connections", commands.NewConnectionsCommand(), []string{"list", "get", "test"}},
		{"privileges", commands.NewPrivilegesCommand(), []string{"list"}},
		{"roles", commands.NewRolesCommand(), []string{"list", "get", "create", "add-privileges", "remove-privileges", "delete"}},
		{"users", commands.NewUsersCommand(), []string{"list", "get"}},
		{"groups", commands.NewGroupsCommand(), []string{"list", "get"}},
		{"saml", commands.NewSAMLCommand(), []string{"role-mappings", "group-mappings", "add-group-mappings", "remove-group-mappings"}},
		{"schedules", commands.NewSchedulesCommand(), []string{"list"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.name, tt.cmd.Name())

			for _, name := range tt.subcommands {
				sub := findSubcommand(tt.cmd, name)
				require.NotNil(t, sub, name)
				assert.NotNil(t, sub.RunE, name)
			}
		})
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	documents := findSubcommand(commands.NewDocumentsCommand(), "list")
	require.NotNil(t, documents)
	assert.NotNil(t, documents.Flags().Lookup("type"))

	users := findSubcommand(commands.NewUsersCommand(), "list")
	require.NotNil(t, users)
	assert.Equal(t, "100", users.Flags().Lookup("limit").DefValue)
	assert.Equal(t, "0", users.Flags().Lookup("skip").DefValue)

	saml := findSubcommand(commands.NewSAMLCommand(), "role-mappings")
	require.NotNil(t, saml)
	assert.Equal(t, "200", saml.Flags().Lookup("limit").DefValue)

	add := findSubcommand(commands.NewRolesCommand(), "add-privileges")
	require.NotNil(t, add)
	assert.NotNil(t, add.Flags().Lookup("by-name"))
	assert.NotNil(t, add.Flags().Lookup("privilege"))

	details := findSubcommand(commands.NewAgentsCommand(), "details")
	require.NotNil(t, details)
	assert.NotNil(t, details.Flags().Lookup("status-only"))
}

func TestDocumentsListRequiresType(t *testing.T) {
	t.Parallel()

	list := findSubcommand(commands.NewDocumentsCommand(), "list")
	require.NotNil(t, list)

	err := list.RunE(list, nil)
	assert.EqualError(t, err, "--type flag is required")
}

func TestGetRequiresIDOrName(t *testing.T) {
	t.Parallel()

	get := findSubcommand(commands.NewUsersCommand(), "get")
	require.NotNil(t, get)

	err := get.RunE(get, nil)
	assert.EqualError(t, err, "either an id argument or --name is required")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewVersionCommand("1.2.3", "abc", "today")
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}
