package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/llcheck/internal/errors"
	"github.com/thoreinstein/llcheck/internal/paths"
)

// EnvPrefix prefixes environment variables that override settings.
const EnvPrefix = "LLCHECK"

// Setting keys.
const (
	KeyVersion     = "version"
	KeyFormat      = "format"
	KeyInputFormat = "input_format"
	KeyLogFormat   = "log_format"
)

// Config represents llcheck's settings.
type Config struct {
	Version     int    `mapstructure:"version" yaml:"version" validate:"eq=1"`
	Format      string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
	InputFormat string `mapstructure:"input_format" yaml:"input_format" validate:"oneof=auto yaml toml"`
	LogFormat   string `mapstructure:"log_format" yaml:"log_format" validate:"oneof=text json"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Version:     1,
		Format:      "text",
		InputFormat: "auto",
		LogFormat:   "text",
	}
}

// Init resets Viper and registers search paths, environment binding and
// defaults. Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths, in order of precedence.
	viper.AddConfigPath(filepath.Join(".", "."+paths.AppName))
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault(KeyVersion, def.Version)
	viper.SetDefault(KeyFormat, def.Format)
	viper.SetDefault(KeyInputFormat, def.InputFormat)
	viper.SetDefault(KeyLogFormat, def.LogFormat)
}

// Load reads the settings file.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, the search paths are tried and defaults
// are used when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		expanded, err := paths.ExpandHome(path)
		if err != nil {
			return nil, err
		}
		viper.SetConfigFile(expanded)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file: defaults apply.
		case errors.As(err, &notFound) || os.IsNotExist(err):
			return nil, errors.Mark(errors.Wrapf(err, "settings file not found at %s", path), errors.ErrNotFound)
		default:
			return nil, errors.Mark(errors.Wrap(err, "reading settings file"), errors.ErrInvalidConfig)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "unmarshaling settings"), errors.ErrInvalidConfig)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating settings"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// UsedFile returns the settings file that was read, or "" if none.
func UsedFile() string {
	return viper.ConfigFileUsed()
}
