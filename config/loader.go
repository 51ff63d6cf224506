package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderConfig controls how configuration is loaded.
type LoaderConfig struct {
	// EnvFile is an optional .env file loaded before reading the config.
	EnvFile string
	// EnvPrefix namespaces environment overrides, e.g. APIKIT_BASE_URL.
	// Defaults to "APIKIT".
	EnvPrefix string
}

// Load reads the config file at path, overlays environment variables, and
// validates the result.
func Load(path string, opts LoaderConfig) (*File, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", opts.EnvFile, err)
		}
	}

	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = "APIKIT"
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind the known keys so env-only overrides survive Unmarshal.
	for _, key := range []string{
		"base_url", "timeout",
		"auth.type", "auth.token", "auth.parameter", "auth.realm",
		"auth.username", "auth.password", "auth.secret", "auth.issuer",
		"logging.level", "logging.format",
	} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}

	f.ApplyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}
