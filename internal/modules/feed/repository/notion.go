package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/samber/oops"
)

// Notion queries databases through the Notion REST API
type Notion struct {
	baseURL string
	token   string
	version string
	client  *http.Client
}

// NewNotion creates a Notion-backed repository
func NewNotion(baseURL, token, version string) *Notion {
	return &Notion{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		version: version,
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (n *Notion) Query(ctx context.Context, q domain.Query) ([]domain.Record, error) {
	body, err := json.Marshal(newQueryRequest(q))
	if err != nil {
		return nil, oops.With("database_id", q.DatabaseID, "context", "failed to marshal query").Wrap(err)
	}

	url := fmt.Sprintf("%s/databases/%s/query", n.baseURL, q.DatabaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, oops.With("database_id", q.DatabaseID).Wrap(err)
	}
	req.Header.Set("Authorization", "Bearer "+n.token)
	req.Header.Set("Notion-Version", n.version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, oops.With("database_id", q.DatabaseID, "context", "notion request failed").Wrap(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, oops.With("database_id", q.DatabaseID, "context", "failed to read notion response").Wrap(err)
	}

	if resp.StatusCode >= 300 {
		var apiErr apiError
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Message != "" {
			return nil, oops.
				With("database_id", q.DatabaseID, "status", resp.StatusCode, "code", apiErr.Code).
				New(apiErr.Message)
		}
		return nil, oops.
			With("database_id", q.DatabaseID, "status", resp.StatusCode).
			Errorf("notion returned %s", resp.Status)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, oops.With("database_id", q.DatabaseID, "context", "failed to decode notion response").Wrap(err)
	}
	return records, nil
}
