package config

import (
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	AdminPassword             string        `koanf:"admin_password"`
	CoverCacheDir             string        `koanf:"cover_cache_dir"`
	DatabaseBusyTimeout       time.Duration `koanf:"-"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count"`
	DatabaseConnectRetryDelay time.Duration `koanf:"-"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseFilePath          string        `koanf:"database_file_path"`
	DatabaseMaxRetries        int           `koanf:"database_max_retries"`
	FrontendURL               string        `koanf:"frontend_url"`
	Hostname                  string        `koanf:"-"`
	JWTSecret                 string        `koanf:"jwt_secret"`
	OpenLibraryCoversURL      string        `koanf:"openlibrary_covers_url"`
	OpenLibraryURL            string        `koanf:"openlibrary_url"`
	ServerHost                string        `koanf:"server_host"`
	ServerPort                int           `koanf:"server_port"`
}

const configFileENV = "CONFIG_FILE"

// New loads configuration in three layers: defaults, then an optional yaml
// file (CONFIG_FILE, default ./config.yaml), then environment variables.
// Later layers override earlier ones.
func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		CoverCacheDir:             "./tmp/covers",
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseMaxRetries:        3,
		FrontendURL:               "http://localhost:6006",
		Hostname:                  hostname,
		OpenLibraryCoversURL:      "https://covers.openlibrary.org",
		OpenLibraryURL:            "https://openlibrary.org",
		ServerHost:                "0.0.0.0",
		ServerPort:                4567,
	}

	k := koanf.New(".")

	configFilePath := os.Getenv(configFileENV)
	if configFilePath == "" {
		configFilePath = "./config.yaml"
	}
	if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
		// A missing config file is fine; everything can come from the
		// environment.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to load config file %s", configFilePath)
		}
	}

	// Empty environment variables are skipped so they can't blank out
	// values that came from the config file.
	err = k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns a config suitable for unit tests: in-memory database,
// loopback host, fixed secrets.
func NewForTest() *Config {
	return &Config{
		AdminPassword:             "test-admin-password",
		CoverCacheDir:             os.TempDir(),
		DatabaseBusyTimeout:       time.Second,
		DatabaseConnectRetryCount: 1,
		DatabaseConnectRetryDelay: 10 * time.Millisecond,
		DatabaseFilePath:          ":memory:",
		DatabaseMaxRetries:        1,
		FrontendURL:               "http://localhost:6006",
		Hostname:                  "test",
		JWTSecret:                 "test-secret",
		OpenLibraryCoversURL:      "https://covers.openlibrary.org",
		OpenLibraryURL:            "https://openlibrary.org",
		ServerHost:                "127.0.0.1",
		ServerPort:                0,
	}
}

func (cfg *Config) validate() error {
	missing := []string{}
	if cfg.DatabaseFilePath == "" {
		missing = append(missing, "DATABASE_FILE_PATH (database_file_path)")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET (jwt_secret)")
	}
	if cfg.AdminPassword == "" {
		missing = append(missing, "ADMIN_PASSWORD (admin_password)")
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}
