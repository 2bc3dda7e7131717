// Package config loads yokai settings from defaults, a TOML file, the
// environment, and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const (
	appName   = "yokai"
	envPrefix = "YOKAI"
)

// Keys understood by the config file and environment.
const (
	KeySound        = "sound"
	KeyDataDir      = "data_dir"
	KeyQuizPerAxis  = "quiz.per_axis"
	KeyQuizStrict   = "quiz.strict"
	KeyQuizSeed     = "quiz.seed"
	KeyPacingLock   = "pacing.lock"
	KeyPacingReveal = "pacing.reveal"
	KeyLogFile      = "log.file"
	KeyLogLevel     = "log.level"
)

// Config is the effective configuration.
type Config struct {
	Sound   bool   `mapstructure:"sound"`
	DataDir string `mapstructure:"data_dir"`
	Quiz    Quiz   `mapstructure:"quiz"`
	Pacing  Pacing `mapstructure:"pacing"`
	Log     Log    `mapstructure:"log"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Quiz controls question selection.
type Quiz struct {
	PerAxis int    `mapstructure:"per_axis"`
	Strict  bool   `mapstructure:"strict"`
	Seed    uint64 `mapstructure:"seed"` // 0 seeds from the clock
}

// Pacing controls the quiz screen's timed transitions.
type Pacing struct {
	Lock   time.Duration `mapstructure:"lock"`   // pause between choosing and advancing
	Reveal time.Duration `mapstructure:"reveal"` // pause before showing the result
}

// Log controls the file logger.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Dir returns the directory searched for config.toml.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// DefaultLogFile returns the log path used when log.file is unset.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// New returns a viper instance with defaults and environment binding set up.
// Flags may be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeySound, false)
	v.SetDefault(KeyDataDir, "")
	v.SetDefault(KeyQuizPerAxis, 3)
	v.SetDefault(KeyQuizStrict, true)
	v.SetDefault(KeyQuizSeed, 0)
	v.SetDefault(KeyPacingLock, "400ms")
	v.SetDefault(KeyPacingReveal, "1800ms")
	v.SetDefault(KeyLogFile, DefaultLogFile())
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and unmarshals the merged settings.
// An explicit file must exist; the default location is optional.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(Dir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []string
	if c.Quiz.PerAxis < 1 {
		errs = append(errs, fmt.Sprintf("%s must be >= 1, got %d", KeyQuizPerAxis, c.Quiz.PerAxis))
	}
	if c.Pacing.Lock < 0 {
		errs = append(errs, fmt.Sprintf("%s must not be negative, got %s", KeyPacingLock, c.Pacing.Lock))
	}
	if c.Pacing.Reveal < 0 {
		errs = append(errs, fmt.Sprintf("%s must not be negative, got %s", KeyPacingReveal, c.Pacing.Reveal))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Settings returns every key and its effective value, sorted by key.
func Settings(v *viper.Viper) []Setting {
	keys := v.AllKeys()
	sort.Strings(keys)
	out := make([]Setting, 0, len(keys))
	for _, k := range keys {
		out = append(out, Setting{Key: k, Value: v.Get(k)})
	}
	return out
}

// Setting is one key/value pair.
type Setting struct {
	Key   string
	Value any
}
