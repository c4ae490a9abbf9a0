package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/iics-tools/dmc/pkg/dmc"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SessionInfo is the printable view of a session. The token is masked.
type SessionInfo struct {
	Version  string `json:"version" yaml:"version"`
	BaseURL  string `json:"base_url" yaml:"base_url"`
	OrgID    string `json:"org_id" yaml:"org_id"`
	OrgName  string `json:"org_name,omitempty" yaml:"org_name,omitempty"`
	Token    string `json:"token" yaml:"token"`
	IssuedAt string `json:"issued_at" yaml:"issued_at"`
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the sessions of the configured user",
		Long:  "Log in to every API generation and show the resulting sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err != nil {
				return err
			}

			sessions := []SessionInfo{
				newSessionInfo(client.V1().Session()),
				newSessionInfo(client.V2().Session()),
				newSessionInfo(client.V3().Session()),
			}

			return outputSessions(sessions)
		},
	}
}

func newSessionInfo(session dmc.Session) SessionInfo {
	return SessionInfo{
		Version:  string(session.Version),
		BaseURL:  session.BaseURL,
		OrgID:    session.OrgID,
		OrgName:  session.OrgName,
		Token:    maskSecret(session.Token),
		IssuedAt: session.IssuedAt.Format(time.RFC3339),
	}
}

func outputSessions(sessions []SessionInfo) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(sessions)
	case OutputFormatYAML:
		return StandardYAMLRenderer(sessions)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Version", "Base URL", "Org", "Token", "Issued")

		for _, session := range sessions {
			org := session.OrgID
			if session.OrgName != "" {
				org = session.OrgName
			}

			_ = table.Append(session.Version, session.BaseURL, org, session.Token, session.IssuedAt)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
