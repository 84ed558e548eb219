package repository

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements Repository over JSON fixtures, one file per
// database: <base>/databases/<id>.json
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based record repository
func NewFileStorage(basePath string) (Repository, error) {
	dbPath := filepath.Join(basePath, "databases")
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create databases directory").Wrap(err)
	}

	return &FileStorage{basePath: dbPath}, nil
}

func (s *FileStorage) Query(ctx context.Context, q domain.Query) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := s.load(q.DatabaseID)
	if err != nil {
		return nil, err
	}

	if q.Filter != nil {
		f := *q.Filter
		if err := checkFilterType(records, f); err != nil {
			return nil, err
		}
		records = lo.Filter(records, func(r domain.Record, _ int) bool {
			return statusLabel(r, f) == f.Equals
		})
	}

	if q.SortBy != "" {
		records = sortByDateDesc(records, q.SortBy)
	}

	if q.PageSize > 0 && len(records) > q.PageSize {
		records = records[:q.PageSize]
	}
	return records, nil
}

func (s *FileStorage) load(databaseID string) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := strings.ReplaceAll(databaseID, "-", "")
	if name == "" || strings.ContainsAny(name, `/\.`) {
		return nil, oops.With("database_id", databaseID).Wrap(errors.ErrDatabaseNotFound)
	}

	path := filepath.Join(s.basePath, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oops.With("database_id", databaseID).Wrap(errors.ErrDatabaseNotFound)
		}
		return nil, oops.With("database_id", databaseID, "context", "failed to read database file").Wrap(err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, oops.With("database_id", databaseID, "context", "failed to unmarshal database file").Wrap(err)
	}
	return records, nil
}

// checkFilterType rejects an operator that does not match the property type,
// the way the live API answers a filter written for another schema.
func checkFilterType(records []domain.Record, f domain.Filter) error {
	found := len(records) == 0
	for _, r := range records {
		p, ok := r.Property(f.Property)
		if !ok {
			continue
		}
		found = true
		if p.Type != "" && p.Type != f.Operator.String() {
			return oops.
				With("property", f.Property, "operator", f.Operator).
				Errorf("database property %s does not match filter %s", p.Type, f.Operator)
		}
	}
	if !found {
		return oops.With("property", f.Property).Errorf("Could not find property with name or id: %s", f.Property)
	}
	return nil
}

func statusLabel(r domain.Record, f domain.Filter) string {
	p, ok := r.Property(f.Property)
	if !ok {
		return ""
	}
	opt := p.Status
	if f.Operator == domain.FilterOperatorSelect {
		opt = p.Select
	}
	if opt == nil {
		return ""
	}
	return opt.Name
}

type datedRecord struct {
	record domain.Record
	date   time.Time
	ok     bool
}

// sortByDateDesc orders newest first. Records whose date is missing or does
// not parse sort last and keep their relative order.
func sortByDateDesc(records []domain.Record, property string) []domain.Record {
	dated := lo.Map(records, func(r domain.Record, _ int) datedRecord {
		t, ok := dateOf(r, property)
		return datedRecord{record: r, date: t, ok: ok}
	})

	slices.SortStableFunc(dated, func(a, b datedRecord) int {
		switch {
		case a.ok && b.ok:
			return b.date.Compare(a.date)
		case a.ok:
			return -1
		case b.ok:
			return 1
		}
		return 0
	})

	return lo.Map(dated, func(d datedRecord, _ int) domain.Record {
		return d.record
	})
}

func dateOf(r domain.Record, property string) (time.Time, bool) {
	p, ok := r.Property(property)
	if !ok || p.Date == nil || p.Date.Start == "" {
		return time.Time{}, false
	}
	t, err := parseDate(p.Date.Start)
	return t, err == nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
