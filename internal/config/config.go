// Package config loads catalogsync settings from flags, environment and file
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys
const (
	KeyProjectID   = "project_id"
	KeyLocation    = "location"
	KeyEndpoint    = "endpoint"
	KeyLogLevel    = "log.level"
	KeyLogPretty   = "log.pretty"
	KeyMetricsPort = "metrics.port"
	KeySyncQPS     = "sync.qps"
)

// EnvPrefix prefixes every environment override, e.g. CATALOGSYNC_LOG_LEVEL
const EnvPrefix = "CATALOGSYNC"

// Config holds resolved settings
type Config struct {
	ProjectID   string
	Location    string
	Endpoint    string
	LogLevel    string
	LogPretty   bool
	MetricsPort int
	SyncQPS     float64
}

// ErrMissingProject is returned by Validate when no project id is configured
var ErrMissingProject = errors.New("project id is required")

// NewViper returns a viper instance with defaults and environment binding
func NewViper() *viper.Viper {
	vp := viper.New()
	vp.SetDefault(KeyLocation, "us-central1")
	vp.SetDefault(KeyLogLevel, "info")
	vp.SetDefault(KeyLogPretty, false)
	vp.SetDefault(KeyMetricsPort, 0)
	vp.SetDefault(KeySyncQPS, 0)

	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()
	return vp
}

// Load reads the optional config file and resolves every key
func Load(vp *viper.Viper, path string) (*Config, error) {
	if path != "" {
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return &Config{
		ProjectID:   vp.GetString(KeyProjectID),
		Location:    vp.GetString(KeyLocation),
		Endpoint:    vp.GetString(KeyEndpoint),
		LogLevel:    vp.GetString(KeyLogLevel),
		LogPretty:   vp.GetBool(KeyLogPretty),
		MetricsPort: vp.GetInt(KeyMetricsPort),
		SyncQPS:     vp.GetFloat64(KeySyncQPS),
	}, nil
}

// Validate checks settings every command needs
func (c *Config) Validate() error {
	if c.ProjectID == "" {
		return ErrMissingProject
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port %d", c.MetricsPort)
	}
	if c.SyncQPS < 0 {
		return fmt.Errorf("invalid sync qps %v", c.SyncQPS)
	}
	return nil
}
