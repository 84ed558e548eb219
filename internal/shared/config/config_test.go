package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/shared/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
notion_token: tok
source: file
default_limit: 500
allowed_database_ids:
  - abc-1
  - " def "
title_properties: "Headline, Name"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.NotionToken != "tok" || cfg.Source != SourceKindFile {
		t.Errorf("token = %q, source = %v", cfg.NotionToken, cfg.Source)
	}
	if cfg.DefaultLimit != DefaultLimit {
		t.Errorf("out of range default_limit should reset, got %d", cfg.DefaultLimit)
	}
	if cfg.HTTPPort != "8080" || cfg.NotionVersion != "2022-06-28" {
		t.Errorf("defaults not applied: port=%q version=%q", cfg.HTTPPort, cfg.NotionVersion)
	}
	if !reflect.DeepEqual(cfg.AllowedDatabaseIDs, []string{"abc-1", "def"}) || cfg.AllowedRaw != "abc-1,def" {
		t.Errorf("allow-list = %q (raw %q)", cfg.AllowedDatabaseIDs, cfg.AllowedRaw)
	}
	if !reflect.DeepEqual(cfg.Schema.Title, []string{"Headline", "Name"}) {
		t.Errorf("title properties = %q", cfg.Schema.Title)
	}
	if !reflect.DeepEqual(cfg.Schema.Media, domain.DefaultSchema().Media) {
		t.Errorf("media properties should default, got %q", cfg.Schema.Media)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "config.json", `{"http_port": "8081", "allowed_database_ids": "a"}`)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ALLOWED_DATABASE_IDS", " * ")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("POLL_INTERVAL", "0")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("port = %q", cfg.HTTPPort)
	}
	if cfg.AllowedRaw != " * " || !reflect.DeepEqual(cfg.AllowedDatabaseIDs, []string{"*"}) {
		t.Errorf("allow-list = %q (raw %q)", cfg.AllowedDatabaseIDs, cfg.AllowedRaw)
	}
	if cfg.AppEnv != AppEnvTesting {
		t.Errorf("app env = %v", cfg.AppEnv)
	}
	if cfg.PollInterval != 60 || cfg.PollDuration().Seconds() != 60 {
		t.Errorf("poll interval = %d", cfg.PollInterval)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(writeConfig(t, "config.ini", "x=1")); err == nil {
		t.Error("expected error for unsupported extension")
	}

	t.Setenv("SOURCE", "sqlite")
	if _, err := Load(writeConfig(t, "config.yaml", "notion_token: tok")); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Source: SourceKindNotion}
	if err := cfg.Validate(); !errors.Is(err, errors.ErrMissingNotionToken) {
		t.Errorf("expected missing token, got %v", err)
	}

	cfg.Source = SourceKindFile
	if err := cfg.Validate(); err != nil {
		t.Errorf("file source needs no token, got %v", err)
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{" a , ,b ", []string{"a", "b"}},
		{",,", []string{}},
	}
	for _, tt := range tests {
		if got := ParseList(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseList(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
