package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	pkgconfig "github.com/alleslabs/aldus-api/pkg/config"
)

// Environment variables that override file configuration.
const (
	EnvDataRoot      = "ALDUS_DATA_ROOT"
	EnvListenAddress = "ALDUS_LISTEN_ADDRESS"
	EnvAssetBaseURL  = "ALDUS_ASSET_BASE_URL"
	EnvLogLevel      = "ALDUS_LOG_LEVEL"
)

// environment resolves ALDUS_* values. The process environment wins over the dotenv
// file, which is read without being exported.
type environment struct {
	file map[string]string
}

func newEnvironment(envFile string) (*environment, error) {
	env := &environment{}
	if envFile == "" {
		return env, nil
	}

	values, err := godotenv.Read(envFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return env, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}

	env.file = values
	return env, nil
}

func (e *environment) lookup(key string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return strings.TrimSpace(e.file[key])
}

// apply runs before defaults so an override is still normalised.
func (e *environment) apply(cfg *pkgconfig.Config) {
	if v := e.lookup(EnvDataRoot); v != "" {
		cfg.Data.Root = v
	}
	if v := e.lookup(EnvListenAddress); v != "" {
		cfg.API.ListenAddress = v
	}
	if v := e.lookup(EnvAssetBaseURL); v != "" {
		cfg.Data.AssetBaseURL = v
	}
	if v := e.lookup(EnvLogLevel); v != "" {
		if cfg.Logging == nil {
			cfg.Logging = &pkgconfig.LoggingConfig{}
		}
		cfg.Logging.DefaultLevel = v
	}
}
