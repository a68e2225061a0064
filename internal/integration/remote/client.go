// Package remote talks to the dashboard's REST API and watches
// connectivity to it.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finance-dashboard/agent/internal/application/adapter"
	"github.com/finance-dashboard/agent/internal/domain/entity"
	domainerror "github.com/finance-dashboard/agent/internal/domain/error"
)

// endpoints maps each collection to its REST path.
var endpoints = map[entity.Collection]string{
	entity.CollectionAssets:        "/api/assets",
	entity.CollectionLiabilities:   "/api/liabilities",
	entity.CollectionExpenses:      "/api/budget/expenses",
	entity.CollectionIncome:        "/api/budget/income",
	entity.CollectionDailyExpenses: "/api/daily-expenses",
	entity.CollectionTransactions:  "/api/transactions",
}

// Client implements adapter.RemoteAPI against the dashboard backend.
// Success is any 2xx status; response bodies are drained and discarded.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a REST client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Push POSTs a record payload to the endpoint for its collection.
func (c *Client) Push(ctx context.Context, collection entity.Collection, payload json.RawMessage) error {
	path, ok := endpoints[collection]
	if !ok {
		return domainerror.NewSyncError(
			domainerror.ErrCodeNoEndpoint,
			"no endpoint for collection "+string(collection),
			domainerror.ErrNoEndpoint,
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodeDelivery,
			"failed to build request",
			err,
		)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domainerror.NewSyncError(
			domainerror.ErrCodeDelivery,
			"request to "+path+" failed",
			err,
		)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domainerror.NewSyncError(
			domainerror.ErrCodeDelivery,
			fmt.Sprintf("server answered %d for %s", resp.StatusCode, path),
			domainerror.ErrDelivery,
		)
	}
	return nil
}

var _ adapter.RemoteAPI = (*Client)(nil)
