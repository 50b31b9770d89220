package config

import (
	"os"
	"strings"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// Convenient in development; in production the deployment platform sets real variables.
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// configFileEnv names the environment variable pointing at an optional YAML config file.
const configFileEnv = "CONFIG_FILE"

// envKeys is the set of environment variables the loader picks up.
// Everything else in the environment (PATH, HOME, ...) is ignored.
var envKeys = map[string]bool{
	"PORT":          true,
	"DATABASE_URL":  true,
	"DATABASE_NAME": true,
	"ENV":           true,
	"LOG_LEVEL":     true,
	"PROBE_TIMEOUT": true,
}

// Load reads configuration from defaults, an optional YAML file and the environment,
// and returns a validated Config.
func Load() (*Config, error) {
	// Attempt to load a .env file from the current working directory.
	// The error is intentionally ignored: a missing .env is normal outside local development.
	_ = godotenv.Load()

	k := koanf.New(".")

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Map PORT -> port, DATABASE_URL -> database_url, ...
	// Empty values are skipped so that "PORT=" behaves like an unset PORT.
	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if !envKeys[key] || value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal on top of the defaults so absent keys keep their default value.
	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
