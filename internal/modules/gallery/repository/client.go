package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	feedDomain "github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/modules/gallery/domain"
	"github.com/samber/oops"
)

// Client reads the canonical feed from a gallery feed server
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a feed client for the server at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

// Fetch requests one page of the feed. Non-2xx responses become errors
// carrying the server's error message.
func (c *Client) Fetch(ctx context.Context, q domain.Query) ([]feedDomain.Item, error) {
	if q.DatabaseID == "" {
		return nil, oops.In("gallery").New("Missing ?database_id=")
	}

	endpoint, err := feedURL(c.baseURL, q)
	if err != nil {
		return nil, oops.With("base_url", c.baseURL).Wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, oops.With("url", endpoint).Wrap(err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, oops.With("url", endpoint, "context", "feed request failed").Wrap(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, oops.With("url", endpoint, "context", "failed to read feed").Wrap(err)
	}

	if resp.StatusCode >= 300 {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
			return nil, oops.With("status", resp.StatusCode).New(body.Error)
		}
		return nil, oops.With("status", resp.StatusCode).Errorf("feed server returned %s", resp.Status)
	}

	wire, err := DecodeFeed(data)
	if err != nil {
		return nil, oops.With("url", endpoint, "context", "failed to decode feed").Wrap(err)
	}
	return feedDomain.FromWire(wire), nil
}

// DecodeFeed accepts both response shapes: a bare array of items or an
// object with an items field. Anything else decodes to an empty list.
func DecodeFeed(data []byte) ([]feedDomain.WireItem, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []feedDomain.WireItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var resp feedDomain.FeedResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		return []feedDomain.WireItem{}, nil
	}
	return resp.Items, nil
}

func feedURL(base string, q domain.Query) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	u = u.JoinPath("api", "feed")

	values := url.Values{}
	values.Set("database_id", q.DatabaseID)
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}
