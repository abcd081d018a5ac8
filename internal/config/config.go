package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config contains runtime settings for the aggregation server
type Config struct {
	LogLevel string
	Host     string
	Port     string

	// Sources holds the enabled source families, or ["all"].
	Sources []string

	Adzuna struct {
		AppID    string
		AppKey   string
		Country  string
		Location string
	}

	// GreenhouseBoards and LeverBoards list ATS board tokens; each token
	// becomes its own fetch unit.
	GreenhouseBoards []string
	LeverBoards      []string

	CacheTTL      time.Duration
	SourceTimeout time.Duration
	FetchWorkers  int

	Neo4j struct {
		URI      string
		Username string
		Password string
	}

	Sheets struct {
		CredentialsPath string
	}
}

const (
	defaultCacheTTLSeconds      = 120
	defaultSourceTimeoutSeconds = 20
	defaultFetchWorkers         = 8
)

// Load populates config from environment variables. Nothing is strictly
// required: missing provider credentials disable that provider rather than
// failing startup.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MCP_HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("SOURCES", "all")
	v.SetDefault("ADZUNA_COUNTRY", "us")
	v.SetDefault("CACHE_TTL_SECONDS", defaultCacheTTLSeconds)
	v.SetDefault("SOURCE_TIMEOUT_SECONDS", defaultSourceTimeoutSeconds)
	v.SetDefault("FETCH_WORKERS", defaultFetchWorkers)

	cfg := Config{
		LogLevel: v.GetString("LOG_LEVEL"),
		Host:     v.GetString("MCP_HOST"),
		Port:     v.GetString("PORT"),

		Sources:          splitList(v.GetString("SOURCES")),
		GreenhouseBoards: splitList(v.GetString("GREENHOUSE_BOARDS")),
		LeverBoards:      splitList(v.GetString("LEVER_BOARDS")),

		CacheTTL:      time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		SourceTimeout: time.Duration(v.GetInt("SOURCE_TIMEOUT_SECONDS")) * time.Second,
		FetchWorkers:  v.GetInt("FETCH_WORKERS"),
	}

	cfg.Adzuna.AppID = v.GetString("ADZUNA_APP_ID")
	cfg.Adzuna.AppKey = v.GetString("ADZUNA_APP_KEY")
	cfg.Adzuna.Country = v.GetString("ADZUNA_COUNTRY")
	cfg.Adzuna.Location = v.GetString("ADZUNA_LOCATION")

	cfg.Neo4j.URI = v.GetString("NEO4J_URI")
	cfg.Neo4j.Username = v.GetString("NEO4J_USERNAME")
	cfg.Neo4j.Password = v.GetString("NEO4J_PASSWORD")

	cfg.Sheets.CredentialsPath = v.GetString("SHEETS_CREDENTIALS_FILE")

	return cfg, nil
}

// SourceEnabled reports whether a source family is in the enabled set.
func (c Config) SourceEnabled(name string) bool {
	for _, s := range c.Sources {
		if s == "all" || strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// Neo4jConfigured reports whether persistence settings are present.
func (c Config) Neo4jConfigured() bool {
	return c.Neo4j.URI != "" && c.Neo4j.Username != "" && c.Neo4j.Password != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
