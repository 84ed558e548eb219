package repository

import (
	"bytes"
	"encoding/json"
	"log/slog"

	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/samber/lo"
)

type queryRequest struct {
	PageSize int          `json:"page_size,omitempty"`
	Sorts    []sortObject `json:"sorts,omitempty"`
	Filter   any          `json:"filter,omitempty"`
}

type sortObject struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type queryResponse struct {
	Results []json.RawMessage `json:"results"`
}

type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newQueryRequest(q domain.Query) queryRequest {
	req := queryRequest{PageSize: q.PageSize}
	if q.SortBy != "" {
		req.Sorts = []sortObject{{Property: q.SortBy, Direction: "descending"}}
	}
	if q.Filter != nil {
		req.Filter = filterBody(*q.Filter)
	}
	return req
}

// filterBody renders {and:[{property, <operator>:{equals}}]}.
func filterBody(f domain.Filter) map[string]any {
	return map[string]any{
		"and": []map[string]any{{
			"property":           f.Property,
			f.Operator.String(): map[string]string{"equals": f.Equals},
		}},
	}
}

// decodeRecords accepts both {"results":[...]} and a bare array of pages.
// Pages are decoded one by one; a malformed page is skipped, not fatal.
func decodeRecords(data []byte) ([]domain.Record, error) {
	var raw []json.RawMessage

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, err
		}
	} else {
		var resp queryResponse
		if err := json.Unmarshal(trimmed, &resp); err != nil {
			return nil, err
		}
		raw = resp.Results
	}

	records := lo.FilterMap(raw, func(page json.RawMessage, i int) (domain.Record, bool) {
		var r domain.Record
		if err := json.Unmarshal(page, &r); err != nil {
			slog.Debug("Skipping malformed record", "index", i, "error", err)
			return domain.Record{}, false
		}
		return r, true
	})
	return records, nil
}
