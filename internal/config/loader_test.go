package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alleslabs/aldus-api/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExampleFiles(t *testing.T) {
	for _, path := range []string{
		"../../config.example.yaml",
		"../../config.example.json",
		"../../config.example.toml",
	} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			cfg, err := Load(path)
			require.NoError(t, err)
			validateConfig(t, cfg, path)
		})
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load("config.txt")
	require.ErrorContains(t, err, "unsupported config file format")
	require.ErrorContains(t, err, "config.txt")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr []string
	}{
		{
			name:    "missing data root",
			path:    writeFile(t, dir, "missing-root.yaml", "api:\n  listen_address: \":8080\"\n"),
			wantErr: []string{"data.root is required", "missing-root.yaml"},
		},
		{
			name:    "unknown log level",
			path:    writeFile(t, dir, "bad-level.yaml", "data:\n  root: ./data\nlogging:\n  default_level: loud\n"),
			wantErr: []string{"logging.default_level"},
		},
		{
			name:    "malformed json",
			path:    writeFile(t, dir, "broken.json", `{"data": `),
			wantErr: []string{"failed to parse", "broken.json"},
		},
		{
			name:    "malformed toml",
			path:    writeFile(t, dir, "broken.toml", "[data\nroot = 1"),
			wantErr: []string{"failed to parse", "broken.toml"},
		},
		{
			name:    "absent file",
			path:    filepath.Join(dir, "absent.yaml"),
			wantErr: []string{"failed to read config file", "absent.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			for _, want := range tt.wantErr {
				require.ErrorContains(t, err, want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDataRoot, "/srv/aldus/data")
	t.Setenv(EnvListenAddress, "127.0.0.1:9999")
	t.Setenv(EnvAssetBaseURL, "https://cdn.example.com/")

	cfg, err := Load("../../config.example.yaml")
	require.NoError(t, err)

	require.Equal(t, "/srv/aldus/data", cfg.Data.Root)
	require.Equal(t, "127.0.0.1:9999", cfg.API.ListenAddress)
	require.Equal(t, "https://cdn.example.com", cfg.Data.AssetBaseURL, "trailing slash is trimmed")
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "ALDUS_DATA_ROOT=/from/dotenv\nALDUS_LOG_LEVEL=debug\n")
	path := writeFile(t, dir, "config.yaml", "data:\n  root: ./data\n")

	t.Run("fills unset variables", func(t *testing.T) {
		cfg, err := Load(path, WithEnvFile(envFile))
		require.NoError(t, err)

		require.Equal(t, "/from/dotenv", cfg.Data.Root)
		require.Equal(t, "debug", cfg.Logging.GetDefaultLevel())
		_, exported := os.LookupEnv(EnvLogLevel)
		require.False(t, exported, "dotenv values stay out of the process environment")
	})

	t.Run("process environment wins", func(t *testing.T) {
		t.Setenv(EnvDataRoot, "/from/process")

		cfg, err := Load(path, WithEnvFile(envFile))
		require.NoError(t, err)
		require.Equal(t, "/from/process", cfg.Data.Root)
	})

	t.Run("absent file is ignored", func(t *testing.T) {
		cfg, err := Load(path, WithEnvFile(filepath.Join(dir, "nope.env")))
		require.NoError(t, err)
		require.Equal(t, "./data", cfg.Data.Root)
	})
}

func TestLoad_MinimalFileDefaults(t *testing.T) {
	for name, content := range map[string]string{
		"minimal.yaml": "data:\n  root: ./data\n",
		"minimal.json": `{"data": {"root": "./data"}}`,
		"minimal.toml": "[data]\nroot = \"./data\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, t.TempDir(), name, content))
			require.NoError(t, err)

			require.True(t, cfg.API.CORS.IsEnabled(), "CORS is on without a cors section")
			require.Equal(t, []string{"*"}, cfg.API.CORS.AllowedOrigins)
			require.Equal(t, config.DefaultBasePath, cfg.API.BasePath)
		})
	}
}

func TestLoad_CORSDisabled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "data:\n  root: ./data\napi:\n  cors:\n    enabled: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.False(t, cfg.API.CORS.IsEnabled())
	require.Empty(t, cfg.API.CORS.AllowedOrigins)
}

// validateConfig checks that the loaded config has expected values
func validateConfig(t *testing.T, cfg *config.Config, format string) {
	t.Helper()

	require.Equal(t, "./data", cfg.Data.Root, "[%s] data.root", format)
	require.Equal(t, "initia", cfg.Data.ModuleChain, "[%s] data.module_chain", format)
	require.Equal(t, config.DefaultAssetBaseURL, cfg.Data.AssetBaseURL, "[%s] data.asset_base_url", format)

	require.Equal(t, ":8080", cfg.API.ListenAddress, "[%s] api.listen_address", format)
	require.Equal(t, "/v1", cfg.API.BasePath, "[%s] api.base_path", format)
	require.Equal(t, 10*time.Second, cfg.API.ReadTimeout.Duration, "[%s] api.read_timeout", format)
	require.Equal(t, 60*time.Second, cfg.API.IdleTimeout.Duration, "[%s] api.idle_timeout", format)
	require.True(t, cfg.API.CORS.IsEnabled(), "[%s] api.cors.enabled", format)
	require.Equal(t, []string{"*"}, cfg.API.CORS.AllowedOrigins, "[%s] api.cors.allowed_origins", format)

	require.NotNil(t, cfg.Logging, "[%s] logging", format)
	require.Equal(t, "info", cfg.Logging.GetDefaultLevel(), "[%s] logging.default_level", format)
	require.Equal(t, "warn", cfg.Logging.GetComponentLevel("dataset"), "[%s] dataset level", format)
	require.Equal(t, "info", cfg.Logging.GetComponentLevel("api"), "[%s] api level", format)

	require.NotNil(t, cfg.Metrics, "[%s] metrics", format)
	require.True(t, cfg.Metrics.Enabled, "[%s] metrics.enabled", format)
	require.Equal(t, "/metrics", cfg.Metrics.Path, "[%s] metrics.path", format)
}

func TestConfigDefaults(t *testing.T) {
	cfg := &config.Config{
		Data: config.DataConfig{Root: "./data"},
	}

	cfg.ApplyDefaults()

	require.Equal(t, config.DefaultModuleChain, cfg.Data.ModuleChain)
	require.Equal(t, config.DefaultAssetBaseURL, cfg.Data.AssetBaseURL)
	require.Equal(t, ":8080", cfg.API.ListenAddress)
	require.Equal(t, config.DefaultBasePath, cfg.API.BasePath)
	require.Equal(t, "/swagger/doc.json", cfg.API.SwaggerURL)
	require.Equal(t, 10*time.Second, cfg.API.WriteTimeout.Duration)
	require.True(t, cfg.API.CORS.IsEnabled())
	require.Equal(t, []string{"*"}, cfg.API.CORS.AllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestAPIConfig_BasePathDefaults(t *testing.T) {
	tests := []struct {
		basePath   string
		wantPath   string
		wantPrefix string
	}{
		{basePath: "", wantPath: "/v1", wantPrefix: "/v1"},
		{basePath: "/", wantPath: "/", wantPrefix: ""},
		{basePath: "//", wantPath: "/", wantPrefix: ""},
		{basePath: "/api/", wantPath: "/api", wantPrefix: "/api"},
	}

	for _, tt := range tests {
		t.Run(tt.basePath, func(t *testing.T) {
			api := config.APIConfig{BasePath: tt.basePath}
			api.ApplyDefaults()
			api.ApplyDefaults()

			require.Equal(t, tt.wantPath, api.BasePath)
			require.Equal(t, tt.wantPrefix, api.RoutePrefix())
			require.NoError(t, api.Validate())
		})
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{
			name: "valid config",
			cfg:  &config.Config{Data: config.DataConfig{Root: "./data"}},
		},
		{
			name:    "missing data root",
			cfg:     &config.Config{},
			wantErr: "data.root is required",
		},
		{
			name: "relative asset base url",
			cfg: &config.Config{Data: config.DataConfig{
				Root:         "./data",
				AssetBaseURL: "assets.example.com",
			}},
			wantErr: "data.asset_base_url",
		},
		{
			name: "base path without leading slash",
			cfg: &config.Config{
				Data: config.DataConfig{Root: "./data"},
				API:  config.APIConfig{BasePath: "v1"},
			},
			wantErr: "api.base_path",
		},
		{
			name: "unknown logging component",
			cfg: &config.Config{
				Data:    config.DataConfig{Root: "./data"},
				Logging: &config.LoggingConfig{ComponentLevels: map[string]string{"downloader": "debug"}},
			},
			wantErr: "unknown component",
		},
		{
			name: "metrics path without slash",
			cfg: &config.Config{
				Data:    config.DataConfig{Root: "./data"},
				Metrics: &config.MetricsConfig{Enabled: true, Path: "metrics"},
			},
			wantErr: "path must start with '/'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.ApplyDefaults()
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoggingConfig_NilReceiver(t *testing.T) {
	var l *config.LoggingConfig

	require.Equal(t, "info", l.GetDefaultLevel())
	require.Equal(t, "info", l.GetComponentLevel("api"))
	require.False(t, l.IsDevelopment())
}
