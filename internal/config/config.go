package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cedi-search/addtarget/internal/branding"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	keyLogLevel  = "log_level"
	keyLogFormat = "log_format"
)

// Defaults applied when neither the config file nor the environment sets a key.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the resolved settings.
type Config struct {
	LogLevel  string
	LogFormat string
}

// Dir returns the config directory: $ADDTARGET_HOME when set, otherwise
// ~/.addtarget/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.addtarget/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads the config file at path from fsys, if it exists, and overlays
// environment variables. A missing file or an empty path is not an error.
func Load(fsys afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault(keyLogFormat, DefaultLogFormat)

	var (
		data []byte
		err  error
	)
	if path == "" {
		err = fs.ErrNotExist
	} else {
		data, err = afero.ReadFile(fsys, path)
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		result, err := Validate(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
		if !result.Valid {
			return nil, &ValidationError{Source: path, Issues: result.Issues}
		}
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	cfg := &Config{
		LogLevel:  strings.ToLower(v.GetString(keyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(keyLogFormat)),
	}

	// Environment overrides bypass the file check, so validate the merged view.
	result, err := validateValue(map[string]interface{}{
		keyLogLevel:  cfg.LogLevel,
		keyLogFormat: cfg.LogFormat,
	})
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &ValidationError{Source: "environment", Issues: result.Issues}
	}

	return cfg, nil
}
