package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	pkgconfig "github.com/alleslabs/aldus-api/pkg/config"
)

type decodeFunc func(data []byte, v any) error

// decoders maps a config file extension to its format.
var decoders = map[string]decodeFunc{
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".json": json.Unmarshal,
	".toml": toml.Unmarshal,
}

// Option adjusts how Load assembles a configuration.
type Option func(*loadOptions)

type loadOptions struct {
	envFile string
}

// WithEnvFile layers ALDUS_* values from a dotenv file under the process environment.
// An empty path or an absent file is ignored.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) {
		o.envFile = path
	}
}

// Load builds the configuration in layers: the file at path (format picked by its
// extension), then ALDUS_* overrides, then defaults. The result is validated.
func Load(path string, opts ...Option) (*pkgconfig.Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	env, err := newEnvironment(o.envFile)
	if err != nil {
		return nil, err
	}
	env.apply(cfg)

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return cfg, nil
}

func decodeFile(path string) (*pkgconfig.Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format %q for %s (use .yaml, .yml, .json or .toml)", ext, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &pkgconfig.Config{}
	if err := decode(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}
