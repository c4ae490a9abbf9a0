package commands

import (
	"context"
	"fmt"

	"github.com/iics-tools/dmc/internal/constants"
	"github.com/spf13/cobra"
)

// NewDocumentsCommand creates the documents command group.
func NewDocumentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   "Browse repository documents",
		Long:    "List Data Integration documents such as mapping tasks and taskflows",
	}

	cmd.AddCommand(newDocumentsListCommand())

	return cmd
}

func newDocumentsListCommand() *cobra.Command {
	var documentType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents of one type",
		Long:  "List the documents of a document type, for example MTT or TASKFLOW",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocumentsListCommand(documentType)
		},
	}

	cmd.Flags().StringVarP(&documentType, "type", "t", "", "document type (required)")

	return cmd
}

func runDocumentsListCommand(documentType string) error {
	if documentType == "" {
		return constants.ErrDocumentTypeRequired
	}

	client, err := CreateClient(context.Background())
	if err != nil {
		return err
	}

	documents, err := client.GetDocuments(context.Background(), documentType)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	return outputRecords(documents, "documents", "id", "name", "documentType", "lastUpdatedTime")
}
