package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Fetch   FetchConfig   `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`
	Display DisplayConfig `yaml:"display" json:"display" jsonschema:"description=Display configuration"`
	Preview PreviewConfig `yaml:"preview" json:"preview" jsonschema:"description=Article preview extraction configuration"`

	Sources []Source `yaml:"sources" json:"sources" jsonschema:"description=Publisher feeds. The built-in list is used when empty"`
}

// Source describes one configured publisher feed
type Source struct {
	ID   string `yaml:"id" json:"id" jsonschema:"required,description=Short source identifier"`
	Name string `yaml:"name" json:"name" jsonschema:"required,description=Display name"`
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
}

// FetchConfig holds feed fetching settings
type FetchConfig struct {
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=HTTP timeout per proxy request"`
	Attempts   int           `yaml:"attempts" json:"attempts" jsonschema:"default=1,minimum=1,description=HTTP attempts per proxy strategy before falling back"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newsdeck/1.0,description=User agent for proxy requests"`
	JSONProxy  string        `yaml:"json_proxy" json:"json_proxy" jsonschema:"description=JSON-wrapping proxy endpoint template with %s for the url-encoded feed URL"`
	XMLProxy   string        `yaml:"xml_proxy" json:"xml_proxy" jsonschema:"description=Raw-XML passthrough proxy endpoint template with %s for the url-encoded feed URL"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Maximum concurrent source fetches"`
}

// DisplayConfig holds presentation settings
type DisplayConfig struct {
	SummaryLength int `yaml:"summary_length" json:"summary_length" jsonschema:"default=160,description=Maximum summary length in characters"`
}

// PreviewConfig holds article preview extraction settings
type PreviewConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable server-side preview extraction"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 (compatible; Newsdeck/1.0),description=User agent for article requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum extracted text length to consider valid"`
}

// defaultSources is the built-in publisher list, used when the config file
// does not define any sources
var defaultSources = []Source{
	{ID: "bbc", Name: "BBC News", URL: "https://feeds.bbci.co.uk/news/world/rss.xml"},
	{ID: "guardian", Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
	{ID: "verge", Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml"},
	{ID: "wired", Name: "Wired", URL: "https://www.wired.com/feed/rss"},
}

// default proxy endpoints, both take the url-encoded feed URL as a query parameter
const (
	defaultJSONProxy = "https://api.rss2json.com/v1/api.json?rss_url=%s"
	defaultXMLProxy  = "https://api.allorigins.win/raw?url=%s"
)

// Load reads configuration from a YAML file. An empty path yields the
// built-in defaults, which is enough to run without any config file.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills in zero-valued fields
func setDefaults(cfg *Config) {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for fetch
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 15 * time.Second
	}
	if cfg.Fetch.Attempts == 0 {
		cfg.Fetch.Attempts = 1
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "Newsdeck/1.0"
	}
	if cfg.Fetch.JSONProxy == "" {
		cfg.Fetch.JSONProxy = defaultJSONProxy
	}
	if cfg.Fetch.XMLProxy == "" {
		cfg.Fetch.XMLProxy = defaultXMLProxy
	}
	if cfg.Fetch.MaxWorkers == 0 {
		cfg.Fetch.MaxWorkers = 4
	}

	// set defaults for display
	if cfg.Display.SummaryLength == 0 {
		cfg.Display.SummaryLength = 160
	}

	// set defaults for preview
	if cfg.Preview.Timeout == 0 {
		cfg.Preview.Timeout = 30 * time.Second
	}
	if cfg.Preview.UserAgent == "" {
		cfg.Preview.UserAgent = "Mozilla/5.0 (compatible; Newsdeck/1.0)"
	}
	if cfg.Preview.MinTextLength == 0 {
		cfg.Preview.MinTextLength = 100
	}

	// fall back to the built-in publishers
	if len(cfg.Sources) == 0 {
		cfg.Sources = append([]Source(nil), defaultSources...)
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate fetch config
	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}
	if cfg.Fetch.Attempts < 1 {
		return fmt.Errorf("fetch attempts must be at least 1")
	}
	if !strings.Contains(cfg.Fetch.JSONProxy, "%s") {
		return fmt.Errorf("fetch json_proxy must contain a %%s placeholder for the feed URL")
	}
	if !strings.Contains(cfg.Fetch.XMLProxy, "%s") {
		return fmt.Errorf("fetch xml_proxy must contain a %%s placeholder for the feed URL")
	}
	if cfg.Fetch.MaxWorkers < 1 {
		return fmt.Errorf("fetch max_workers must be at least 1")
	}

	// validate display config
	if cfg.Display.SummaryLength < 10 {
		return fmt.Errorf("display summary_length must be at least 10")
	}

	// validate sources, ids must be unique since they prefix item identities
	seen := make(map[string]bool, len(cfg.Sources))
	for i, src := range cfg.Sources {
		if src.ID == "" {
			return fmt.Errorf("source %d: id is required", i)
		}
		if src.Name == "" {
			return fmt.Errorf("source %q: name is required", src.ID)
		}
		if src.URL == "" {
			return fmt.Errorf("source %q: url is required", src.ID)
		}
		if seen[src.ID] {
			return fmt.Errorf("source %q: duplicate id", src.ID)
		}
		seen[src.ID] = true
	}

	// validate preview config
	if cfg.Preview.Enabled {
		if cfg.Preview.Timeout < time.Second {
			return fmt.Errorf("preview timeout must be at least 1 second")
		}
		if cfg.Preview.MinTextLength < 0 {
			return fmt.Errorf("preview min_text_length must be non-negative")
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFetchConfig returns feed fetching configuration
func (c *Config) GetFetchConfig() FetchConfig {
	return c.Fetch
}

// GetPreviewConfig returns preview extraction configuration
func (c *Config) GetPreviewConfig() PreviewConfig {
	return c.Preview
}

// GetSources returns the configured publisher feeds
func (c *Config) GetSources() []Source {
	return c.Sources
}
