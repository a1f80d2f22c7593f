package config

import (
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"harulog/internal/util"
)

// API holds day-session API client configuration.
type API struct {
	URL   string `envconfig:"HARULOG_API_URL" default:"http://localhost:8787"`
	Token string `envconfig:"HARULOG_API_TOKEN"`
}

// Client holds configuration for the CLI and TUI.
type Client struct {
	API        API
	CachePath  string `envconfig:"HARULOG_CACHE_PATH"`
	DebounceMS int    `envconfig:"HARULOG_SYNC_DEBOUNCE_MS" default:"1000"`
}

// Server holds configuration for the day-session API server.
type Server struct {
	Addr      string `envconfig:"HARULOG_SERVER_ADDR" default:":8787"`
	DBPath    string `envconfig:"HARULOG_SERVER_DB_PATH"`
	AuthToken string `envconfig:"HARULOG_API_TOKEN"`
}

// LoadClient loads client configuration from environment variables.
func LoadClient() (*Client, error) {
	var cfg Client
	if err := envconfig.Process("", &cfg.API); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.CachePath == "" {
		dataDir, err := util.GetXDGDataDir()
		if err != nil {
			return nil, err
		}
		cfg.CachePath = filepath.Join(dataDir, "cache.db")
	}
	return &cfg, nil
}

// LoadServer loads server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DBPath == "" {
		dataDir, err := util.GetXDGDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = filepath.Join(dataDir, "server.db")
	}
	return &cfg, nil
}
