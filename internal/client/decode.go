package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/iics-tools/dmc/internal/constants"
	"github.com/iics-tools/dmc/pkg/dmc"
)

// Static errors for err113 compliance.
var (
	ErrUnexpectedListShape = errors.New("response is not a list of objects")
)

// getRecord performs a GET and decodes a JSON object.
func (t *Transport) getRecord(ctx context.Context, path string, opts ...RequestOption) (dmc.Record, error) {
	return t.sendRecord(ctx, http.MethodGet, path, opts...)
}

// sendRecord performs a request and decodes a JSON object.
func (t *Transport) sendRecord(ctx context.Context, method, path string, opts ...RequestOption) (dmc.Record, error) {
	resp, err := t.Dispatch(ctx, method, path, opts...)
	if err != nil {
		return nil, err
	}

	record := dmc.Record{}

	err = resp.Decode(&record)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// getRecords performs a GET and decodes a JSON array of objects. When the
// body is an object instead, the array stored under envelope is used.
func (t *Transport) getRecords(ctx context.Context, path, envelope string, opts ...RequestOption) (dmc.Records, error) {
	resp, err := t.Dispatch(ctx, http.MethodGet, path, opts...)
	if err != nil {
		return nil, err
	}

	return decodeRecords(resp.Body, envelope)
}

// mutate performs a request whose only result is whether the server answered
// 204 No Content.
func (t *Transport) mutate(ctx context.Context, method, path string, body interface{}) (bool, error) {
	opts := []RequestOption{}
	if body != nil {
		opts = append(opts, WithBody(body))
	}

	resp, err := t.Dispatch(ctx, method, path, opts...)
	if err != nil {
		return false, err
	}

	return resp.StatusCode == constants.HTTPStatusNoContent, nil
}

// findOne returns the single record of a filtered lookup, or a NotFoundError
// naming the current organization.
func (t *Transport) findOne(records dmc.Records, resource, key, value string) (dmc.Record, error) {
	if len(records) == 0 {
		return nil, &dmc.NotFoundError{
			Resource: resource,
			Key:      key,
			Value:    value,
			Org:      t.session.Org(),
		}
	}

	return records[0], nil
}

func decodeRecords(body []byte, envelope string) (dmc.Records, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return dmc.Records{}, nil
	}

	if trimmed[0] == '{' && envelope != "" {
		var wrapped map[string]json.RawMessage

		err := json.Unmarshal(trimmed, &wrapped)
		if err != nil {
			return nil, fmt.Errorf("failed to decode response body: %w", err)
		}

		inner, ok := wrapped[envelope]
		if !ok {
			return nil, fmt.Errorf("%w: no %q field", ErrUnexpectedListShape, envelope)
		}

		return decodeRecords(inner, "")
	}

	records := dmc.Records{}

	err := json.Unmarshal(trimmed, &records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedListShape, err)
	}

	return records, nil
}
