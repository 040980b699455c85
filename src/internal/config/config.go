// Package config resolves runtime settings from flags, LIB_* environment
// variables, an optional config file and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"library/src/internal/store"
	"library/src/internal/stringsx"
)

// EnvPrefix is prepended to every environment variable the tool reads.
const EnvPrefix = "LIB"

// Keys shared by flags, environment variables and config files.
const (
	KeyConfig    = "config"
	KeyFile      = "file"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyNoColor   = "no-color"
)

// Config holds the resolved settings.
type Config struct {
	File       string
	LogLevel   string
	LogFormat  string
	NoColor    bool
	ConfigFile string
}

// Load resolves settings. Precedence: changed flag, environment, config file,
// flag default. envFile is loaded first if it exists; a missing one is ignored.
func Load(flags *pflag.FlagSet, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyFile, store.DefaultPath)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "auto")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return &Config{
		File:       stringsx.FirstNonEmpty(v.GetString(KeyFile), store.DefaultPath),
		LogLevel:   stringsx.FirstNonEmpty(v.GetString(KeyLogLevel), "warn"),
		LogFormat:  stringsx.FirstNonEmpty(v.GetString(KeyLogFormat), "auto"),
		NoColor:    v.GetBool(KeyNoColor) || os.Getenv("NO_COLOR") != "",
		ConfigFile: v.ConfigFileUsed(),
	}, nil
}

// RegisterFlags adds the persistent flags Load understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyFile, "f", store.DefaultPath, "catalog file (.json, .yaml or .yml)")
	fs.String(KeyConfig, "", "config file (yaml, json or toml)")
	fs.String(KeyLogLevel, "warn", "log level (debug, info, warn, error, off)")
	fs.String(KeyLogFormat, "auto", "log format (auto, console, json)")
	fs.Bool(KeyNoColor, false, "disable colored output")
}
