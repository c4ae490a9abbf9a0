package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewServerTimeCommand creates the server-time command.
func NewServerTimeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "server-time",
		Short: "Show the server time",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			serverTime, err := client.GetServerTime(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get server time: %w", err)
			}

			return outputRecord(serverTime)
		},
	}
}

// NewTrustedIPsCommand creates the trusted-ips command.
func NewTrustedIPsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trusted-ips",
		Short: "Show the trusted IP ranges of the organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			ranges, err := client.RetrieveTrustedIPs(context.Background())
			if err != nil {
				return fmt.Errorf("failed to retrieve trusted IP ranges: %w", err)
			}

			return outputRecord(ranges)
		},
	}
}

// NewSchedulesCommand creates the schedules command group.
func NewSchedulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedules",
		Aliases: []string{"schedule"},
		Short:   "Inspect schedules",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			schedules, err := client.ListSchedules(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list schedules: %w", err)
			}

			return outputRecords(schedules, "schedules", "id", "name", "status", "interval", "startTime")
		},
	})

	return cmd
}
