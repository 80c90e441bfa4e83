// Package sheets fetches the raw table from a Google Sheets worksheet using a
// service account. Credentials resolve from the environment: full JSON content
// first (cloud deployments), then a key file path (local runs).
package sheets

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/trontec/extras-atlas/pkg/models/store"
)

const (
	envCredentialsJSON = "GOOGLE_CREDENTIALS_JSON"
	envCredentialsFile = "GOOGLE_SERVICE_ACCOUNT_JSON"
)

type Client struct {
	svc *sheets.Service
}

// NewClient builds a read-only Sheets client. credentialsFile is the
// configured fallback path; the environment overrides take precedence.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}

	if content := os.Getenv(envCredentialsJSON); content != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(content)))
	} else {
		path := os.Getenv(envCredentialsFile)
		if path == "" {
			path = credentialsFile
		}
		if path == "" {
			return nil, fmt.Errorf("no service account credentials configured")
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("credentials file %q: %w", path, err)
		}
		opts = append(opts, option.WithCredentialsFile(path))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Fetch reads every cell of one worksheet and returns it as a raw table with
// cleaned headers. An entirely empty worksheet is an error, since the caller
// needs at least a header row to work with.
func (c *Client) Fetch(ctx context.Context, spreadsheetID, worksheet string) (store.Table, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, worksheet).Context(ctx).Do()
	if err != nil {
		return store.Table{}, fmt.Errorf("fetch worksheet %q: %w", worksheet, err)
	}
	if len(resp.Values) == 0 {
		return store.Table{}, fmt.Errorf("worksheet %q is empty", worksheet)
	}

	headers := make([]string, 0, len(resp.Values[0]))
	for _, v := range resp.Values[0] {
		headers = append(headers, fmt.Sprint(v))
	}

	t := store.Table{Columns: store.CleanHeaders(headers)}
	for _, raw := range resp.Values[1:] {
		row := make([]string, 0, len(raw))
		for _, v := range raw {
			row = append(row, fmt.Sprint(v))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
