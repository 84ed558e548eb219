package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	DefaultLimit = 30
	MaxLimit     = 100
)

type Config struct {
	NotionToken   string     `koanf:"notion_token"`
	NotionAPIURL  string     `koanf:"notion_api_url"`
	NotionVersion string     `koanf:"notion_version"`
	Source        SourceKind `koanf:"-"`
	StoragePath   string     `koanf:"storage_path"`
	HTTPPort      string     `koanf:"http_port"`
	DefaultLimit  int        `koanf:"default_limit"`
	PollInterval  int        `koanf:"poll_interval"`
	FeedURL       string     `koanf:"feed_url"`
	AppEnv        AppEnv     `koanf:"-"`

	// AllowedRaw is the allow-list exactly as configured, kept for diagnostics.
	AllowedRaw         string   `koanf:"-"`
	AllowedDatabaseIDs []string `koanf:"-"`

	Schema domain.Schema `koanf:"-"`
}

// PollDuration returns the client refresh interval.
func (c *Config) PollDuration() time.Duration {
	return time.Duration(c.PollInterval) * time.Second
}

// Validate checks settings the feed server cannot run without.
func (c *Config) Validate() error {
	if c.Source == SourceKindNotion && c.NotionToken == "" {
		return errors.ErrMissingNotionToken
	}
	return nil
}

// Load reads configuration from path (when given), otherwise from the first
// config file found in the working directory or the XDG config dirs, and
// then applies environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	configFile, found := path, path != ""
	if !found {
		configFile, found = findConfigFile()
	}

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	setDefault(k, "notion_api_url", "https://api.notion.com/v1")
	setDefault(k, "notion_version", "2022-06-28")
	setDefault(k, "storage_path", "./data")
	setDefault(k, "http_port", "8080")
	setDefault(k, "default_limit", DefaultLimit)
	setDefault(k, "poll_interval", 60)
	setDefault(k, "feed_url", "http://localhost:8080")

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	cfg.AppEnv = AppEnvProduction
	if s := k.String("app_env"); s != "" {
		if v, err := ParseAppEnv(s); err == nil {
			cfg.AppEnv = v
		}
	}

	cfg.Source = SourceKindNotion
	if s := k.String("source"); s != "" {
		v, err := ParseSourceKind(s)
		if err != nil {
			return nil, oops.With("source", s).Wrap(err)
		}
		cfg.Source = v
	}

	cfg.AllowedRaw, cfg.AllowedDatabaseIDs = listValue(k, "allowed_database_ids")

	defaults := domain.DefaultSchema()
	cfg.Schema = domain.Schema{
		Title:   listOrDefault(k, "title_properties", defaults.Title),
		Caption: listOrDefault(k, "caption_properties", defaults.Caption),
		Status:  listOrDefault(k, "status_properties", defaults.Status),
		Date:    listOrDefault(k, "date_properties", defaults.Date),
		Media:   listOrDefault(k, "media_properties", defaults.Media),
	}

	if cfg.DefaultLimit < 1 || cfg.DefaultLimit > MaxLimit {
		cfg.DefaultLimit = DefaultLimit
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 60
	}

	return &cfg, nil
}

func findConfigFile() (string, bool) {
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})
	if found {
		return configFile, true
	}

	if p, err := xdg.SearchConfigFile(filepath.Join("gallery-feed", "config.yaml")); err == nil {
		return p, true
	}
	return "", false
}

func setDefault(k *koanf.Koanf, key string, value any) {
	if !k.Exists(key) {
		k.Set(key, value)
	}
}

// listValue reads a key that may hold either a comma-separated string or a
// list, returning the raw form alongside the parsed entries.
func listValue(k *koanf.Koanf, key string) (string, []string) {
	switch v := k.Get(key).(type) {
	case string:
		return v, ParseList(v)
	case []interface{}:
		items := lo.FilterMap(v, func(item interface{}, _ int) (string, bool) {
			s := strings.TrimSpace(fmt.Sprint(item))
			return s, s != ""
		})
		return strings.Join(items, ","), items
	default:
		return "", []string{}
	}
}

func listOrDefault(k *koanf.Koanf, key string, def []string) []string {
	if _, items := listValue(k, key); len(items) > 0 {
		return items
	}
	return def
}

// ParseList parses a comma-separated string into trimmed, non-empty entries
func ParseList(s string) []string {
	if s == "" {
		return []string{}
	}
	return lo.FilterMap(strings.Split(s, ","), func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part, part != ""
	})
}
