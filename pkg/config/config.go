package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/alleslabs/aldus-api/internal/common"
	"github.com/alleslabs/aldus-api/internal/logger"
)

const (
	DefaultModuleChain  = "initia"
	DefaultAssetBaseURL = "https://raw.githubusercontent.com/alleslabs/aldus/main"
	DefaultBasePath     = "/v1"
)

// Config represents the complete configuration for the Aldus API.
type Config struct {
	// Data describes where the datasets live and how they are interpreted
	Data DataConfig `yaml:"data" json:"data" toml:"data"`

	// API contains the HTTP server configuration
	API APIConfig `yaml:"api" json:"api" toml:"api"`

	// Logging contains logging configuration
	Logging *LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty" toml:"logging,omitempty"`

	// Metrics contains Prometheus metrics configuration
	Metrics *MetricsConfig `yaml:"metrics,omitempty" json:"metrics,omitempty" toml:"metrics,omitempty"`
}

// DataConfig locates the dataset tree and holds the deployment specific constants
// used when resolving and aggregating records.
type DataConfig struct {
	// Root is the directory holding {chain}/{network}/*.json plus the global datasets
	Root string `yaml:"root" json:"root" toml:"root"`

	// ModuleChain is the only chain family that serves modules
	ModuleChain string `yaml:"module_chain" json:"module_chain" toml:"module_chain"`

	// AssetBaseURL prefixes entity logos: {asset_base_url}/assets/entities/{logo}
	AssetBaseURL string `yaml:"asset_base_url" json:"asset_base_url" toml:"asset_base_url"`
}

// ApplyDefaults sets default values for optional data configuration fields.
func (d *DataConfig) ApplyDefaults() {
	if d.ModuleChain == "" {
		d.ModuleChain = DefaultModuleChain
	}
	if d.AssetBaseURL == "" {
		d.AssetBaseURL = DefaultAssetBaseURL
	}
	d.AssetBaseURL = strings.TrimRight(d.AssetBaseURL, "/")
}

// Validate checks if the data configuration is valid.
func (d *DataConfig) Validate() error {
	if d.Root == "" {
		return fmt.Errorf("data.root is required")
	}

	u, err := url.Parse(d.AssetBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("data.asset_base_url must be an absolute URL")
	}

	return nil
}

// APIConfig configures the HTTP API server.
type APIConfig struct {
	// ListenAddress is the address to bind the API server to
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// BasePath prefixes every dataset route (e.g. "/v1"); "/" mounts them at the root
	BasePath string `yaml:"base_path" json:"base_path" toml:"base_path"`

	// SwaggerURL is where the swagger UI fetches the generated document from
	SwaggerURL string `yaml:"swagger_url" json:"swagger_url" toml:"swagger_url"`

	ReadTimeout  common.Duration `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout"`
	WriteTimeout common.Duration `yaml:"write_timeout" json:"write_timeout" toml:"write_timeout"`
	IdleTimeout  common.Duration `yaml:"idle_timeout" json:"idle_timeout" toml:"idle_timeout"`

	// CORS contains cross-origin settings
	CORS CORSConfig `yaml:"cors" json:"cors" toml:"cors"`
}

// CORSConfig configures cross-origin resource sharing. CORS is on unless enabled is
// explicitly set to false.
type CORSConfig struct {
	Enabled        *bool    `yaml:"enabled,omitempty" json:"enabled,omitempty" toml:"enabled,omitempty"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins" toml:"allowed_origins"`
}

// IsEnabled reports whether the CORS middleware should be installed.
func (c CORSConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// ApplyDefaults sets default values for optional API configuration fields.
func (a *APIConfig) ApplyDefaults() {
	if a.ListenAddress == "" {
		a.ListenAddress = ":8080"
	}
	if a.BasePath == "" {
		a.BasePath = DefaultBasePath
	}
	if trimmed := strings.TrimRight(a.BasePath, "/"); trimmed != "" {
		a.BasePath = trimmed
	} else {
		a.BasePath = "/"
	}
	if a.SwaggerURL == "" {
		a.SwaggerURL = "/swagger/doc.json"
	}
	if a.ReadTimeout.Duration == 0 {
		a.ReadTimeout = common.NewDuration(10 * time.Second) //nolint:mnd
	}
	if a.WriteTimeout.Duration == 0 {
		a.WriteTimeout = common.NewDuration(10 * time.Second) //nolint:mnd
	}
	if a.IdleTimeout.Duration == 0 {
		a.IdleTimeout = common.NewDuration(60 * time.Second) //nolint:mnd
	}
	if a.CORS.Enabled == nil {
		enabled := true
		a.CORS.Enabled = &enabled
	}
	if *a.CORS.Enabled && len(a.CORS.AllowedOrigins) == 0 {
		a.CORS.AllowedOrigins = []string{"*"}
	}
}

// RoutePrefix is the base path as prepended to route patterns: "" for a root mount.
func (a *APIConfig) RoutePrefix() string {
	return strings.TrimRight(a.BasePath, "/")
}

// Validate checks if the API configuration is valid.
func (a *APIConfig) Validate() error {
	if a.ListenAddress == "" {
		return fmt.Errorf("api.listen_address is required")
	}
	if a.BasePath != "" && a.BasePath[0] != '/' {
		return fmt.Errorf("api.base_path must start with '/'")
	}
	return nil
}

// LoggingConfig configures logging behavior with per-component log levels.
// All getters are safe to call on a nil receiver.
type LoggingConfig struct {
	// DefaultLevel is the default log level for all components
	// Options: "debug", "info", "warn", "error"
	DefaultLevel string `yaml:"default_level" json:"default_level" toml:"default_level"`

	// Development enables development mode (stack traces, console encoder)
	Development bool `yaml:"development" json:"development" toml:"development"`

	// ComponentLevels sets log levels for specific components
	// Available components:
	//   - api: HTTP handlers and middleware
	//   - dataset: dataset resolution and loading
	//   - aggregator: entity aggregation
	//   - validator: the validate command
	//   - metrics: metrics server
	ComponentLevels map[string]string `yaml:"component_levels,omitempty" json:"component_levels,omitempty" toml:"component_levels,omitempty"` //nolint:lll
}

// ApplyDefaults sets default values for optional logging configuration fields.
func (l *LoggingConfig) ApplyDefaults() {
	if l.DefaultLevel == "" {
		l.DefaultLevel = "info"
	}
	if l.ComponentLevels == nil {
		l.ComponentLevels = make(map[string]string)
	}
}

// Validate checks if the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	if l.DefaultLevel != "" {
		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(l.DefaultLevel)]; !valid {
			return fmt.Errorf("logging.default_level: must be one of: debug, info, warn, error")
		}
	}

	for component, level := range l.ComponentLevels {
		if _, validComponent := common.AllComponents[common.ToLowerWithTrim(component)]; !validComponent {
			return fmt.Errorf("logging.component_levels: unknown component '%s'", component)
		}

		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(level)]; !valid {
			return fmt.Errorf("logging.component_levels[%s]: must be one of: debug, info, warn, error", component)
		}
	}

	return nil
}

// GetComponentLevel returns the log level for a specific component.
// Falls back to DefaultLevel if no component-specific level is set.
func (l *LoggingConfig) GetComponentLevel(component string) string {
	if l == nil {
		return "info"
	}
	if level, ok := l.ComponentLevels[component]; ok {
		return common.ToLowerWithTrim(level)
	}
	return l.GetDefaultLevel()
}

// GetDefaultLevel returns the default log level.
func (l *LoggingConfig) GetDefaultLevel() string {
	if l == nil || l.DefaultLevel == "" {
		return "info"
	}
	return common.ToLowerWithTrim(l.DefaultLevel)
}

// IsDevelopment returns whether development mode is enabled.
func (l *LoggingConfig) IsDevelopment() bool {
	return l != nil && l.Development
}

// MetricsConfig configures Prometheus metrics exposition.
type MetricsConfig struct {
	// Enabled controls whether metrics collection and HTTP endpoint are active
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address to bind the metrics HTTP server to
	// Format: "host:port" or ":port"
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// Path is the HTTP path where metrics are exposed
	Path string `yaml:"path" json:"path" toml:"path"`
}

// ApplyDefaults sets default values for optional metrics configuration fields.
func (m *MetricsConfig) ApplyDefaults() {
	if m.ListenAddress == "" {
		m.ListenAddress = ":9090"
	}
	if m.Path == "" {
		m.Path = "/metrics"
	}
}

// Validate checks if the metrics configuration is valid.
func (m *MetricsConfig) Validate() error {
	if m.Enabled {
		if m.ListenAddress == "" {
			return fmt.Errorf("listen_address is required when metrics are enabled")
		}
		if m.Path == "" {
			return fmt.Errorf("path is required when metrics are enabled")
		}
		if m.Path[0] != '/' {
			return fmt.Errorf("path must start with '/'")
		}
	}
	return nil
}

// ApplyDefaults sets default values for optional configuration fields.
func (c *Config) ApplyDefaults() {
	c.Data.ApplyDefaults()
	c.API.ApplyDefaults()

	if c.Logging != nil {
		c.Logging.ApplyDefaults()
	}

	if c.Metrics != nil {
		c.Metrics.ApplyDefaults()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Data.Validate(); err != nil {
		return err
	}

	if err := c.API.Validate(); err != nil {
		return err
	}

	if c.Logging != nil {
		if err := c.Logging.Validate(); err != nil {
			return err
		}
	}

	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	return nil
}
