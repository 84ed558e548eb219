package repository

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/shared/errors"
)

func testStorage(t *testing.T, files map[string]string) Repository {
	t.Helper()
	dir := t.TempDir()
	repo, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("creating storage: %v", err)
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, "databases", name+".json"), []byte(body), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return repo
}

const fixture = `[
	{"id": "old", "properties": {"Date": {"type": "date", "date": {"start": "2023-01-01"}}, "Status": {"type": "status", "status": {"name": "Live"}}}},
	{"id": "none", "properties": {"Status": {"type": "status", "status": {"name": "Live"}}}},
	{"id": "new", "properties": {"Date": {"type": "date", "date": {"start": "2024-03-01T10:00:00Z"}}, "Status": {"type": "status", "status": {"name": "Draft"}}}},
	{"id": "mid", "properties": {"Date": {"type": "date", "date": {"start": "2023-06-01"}}, "Status": {"type": "status", "status": {"name": "Live"}}}}
]`

func ids(records []domain.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFileStorageSortAndLimit(t *testing.T) {
	repo := testStorage(t, map[string]string{"abc": fixture})

	records, err := repo.Query(context.Background(), domain.Query{DatabaseID: "a-b-c", SortBy: "Date"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	want := []string{"new", "mid", "old", "none"}
	got := ids(records)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	records, err = repo.Query(context.Background(), domain.Query{DatabaseID: "abc", SortBy: "Date", PageSize: 2})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if got := ids(records); len(got) != 2 || got[0] != "new" || got[1] != "mid" {
		t.Errorf("limited query = %v", got)
	}
}

func TestFileStorageSortUnparseableDates(t *testing.T) {
	dated := func(id, start string) string {
		return `{"id": "` + id + `", "properties": {"Date": {"type": "date", "date": {"start": "` + start + `"}}}}`
	}
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "garbage between valid dates",
			body: "[" + dated("may", "2024-05-01") + "," + dated("junk", "not a date") + "," + dated("june", "2024-06-01") + "]",
			want: []string{"june", "may", "junk"},
		},
		{
			name: "garbage and empty keep input order",
			body: "[" + dated("zzz", "zzz") + "," + dated("empty", "") + "," + dated("jan", "2024-01-01") + "," + dated("aaa", "aaa") + "]",
			want: []string{"jan", "zzz", "empty", "aaa"},
		},
	}
	for _, tt := range tests {
		repo := testStorage(t, map[string]string{"abc": tt.body})
		records, err := repo.Query(context.Background(), domain.Query{DatabaseID: "abc", SortBy: "Date"})
		if err != nil {
			t.Fatalf("%s: Query: %v", tt.name, err)
		}
		if got := ids(records); !slices.Equal(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFileStorageFilter(t *testing.T) {
	repo := testStorage(t, map[string]string{"abc": fixture})

	records, err := repo.Query(context.Background(), domain.Query{
		DatabaseID: "abc",
		SortBy:     "Date",
		Filter:     &domain.Filter{Property: "Status", Operator: domain.FilterOperatorStatus, Equals: "Live"},
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if got := ids(records); len(got) != 3 || got[0] != "mid" {
		t.Errorf("filtered = %v", got)
	}

	_, err = repo.Query(context.Background(), domain.Query{
		DatabaseID: "abc",
		Filter:     &domain.Filter{Property: "Status", Operator: domain.FilterOperatorSelect, Equals: "Live"},
	})
	if err == nil {
		t.Error("expected a select filter on a status property to fail")
	}
}

func TestFileStorageNotFound(t *testing.T) {
	repo := testStorage(t, nil)

	for _, id := range []string{"missing", "../etc/passwd"} {
		_, err := repo.Query(context.Background(), domain.Query{DatabaseID: id})
		if !errors.Is(err, errors.ErrDatabaseNotFound) {
			t.Errorf("Query(%q): expected not found, got %v", id, err)
		}
	}
}
