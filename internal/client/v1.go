package client

import (
	"context"
	"fmt"

	"github.com/iics-tools/dmc/internal/auth"
	"github.com/iics-tools/dmc/pkg/dmc"
)

// V1Client implements dmc.V1Client.
type V1Client struct {
	*Transport
}

// NewV1Client logs in and returns a v1 client. Requests always go to
// config.V1ServerURL, or the default v1 server, regardless of the login
// response.
func NewV1Client(ctx context.Context, config *dmc.Config, opts ...TransportOption) (*V1Client, error) {
	var serverURL string
	if config != nil {
		serverURL = config.V1ServerURL
	}

	transport, err := NewTransport(ctx, config, auth.V1Descriptor(serverURL), opts...)
	if err != nil {
		return nil, err
	}

	return &V1Client{Transport: transport}, nil
}

// GetDocuments implements dmc.DocumentsClient.GetDocuments.
func (c *V1Client) GetDocuments(ctx context.Context, documentType string) (dmc.Records, error) {
	filter := fmt.Sprintf("(documentType eq '%s')", documentType)

	records, err := c.getRecords(ctx, "/frs/api/v1/Documents", "documents", WithParam("filter", filter))
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	return records, nil
}
