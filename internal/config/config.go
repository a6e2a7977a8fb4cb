// Package config loads the sweets configuration file with Viper.
//
// The file lives at <config-dir>/config.yaml. A missing file is not an error;
// every key has a default. Keys can be overridden from the environment with
// the SWEETS_ prefix, for example SWEETS_LOG_LEVEL=debug or
// SWEETS_CURRENCY_STRICT=true.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/sweets/internal/paths"
	"github.com/mesh-intelligence/sweets/pkg/currency"
	"github.com/mesh-intelligence/sweets/pkg/directory"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "SWEETS"

	keyCurrencyStrict  = "currency.strict"
	keyCurrencyDisplay = "currency.display"
	keyLogLevel        = "log.level"

	defaultLogLevel = "info"
)

// Config validation errors.
var (
	ErrInvalidLogLevel        = errors.New("invalid log level")
	ErrUnknownDisplayCurrency = errors.New("unknown display currency")
	ErrInvalidRanking         = errors.New("ranking needs a region and a name")
)

// ErrUnreadable reports a config file that exists but could not be read.
var ErrUnreadable = errors.New("config file unreadable")

// newViper is replaced in tests to read from an in-memory filesystem.
var newViper = viper.New

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config is the decoded configuration.
type Config struct {
	Currency CurrencyConfig `mapstructure:"currency" yaml:"currency"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`

	// Manufacturers are appended to the built-in directory, keyed by region.
	Manufacturers map[string][]string `mapstructure:"manufacturers" yaml:"manufacturers,omitempty"`

	// Rankings are applied after Manufacturers.
	Rankings []Ranking `mapstructure:"rankings" yaml:"rankings,omitempty"`
}

// CurrencyConfig selects the currency table behaviour.
type CurrencyConfig struct {
	// Strict rejects unknown currency codes instead of using the reference rate.
	Strict bool `mapstructure:"strict" yaml:"strict"`
	// Display is the currency prices are shown in when no --currency flag is given.
	Display string `mapstructure:"display" yaml:"display"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Ranking assigns a rank to a manufacturer of a region.
type Ranking struct {
	Region string `mapstructure:"region" yaml:"region"`
	Name   string `mapstructure:"name" yaml:"name"`
	Rank   int    `mapstructure:"rank" yaml:"rank"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Currency: CurrencyConfig{Strict: false, Display: currency.Reference},
		Log:      LogConfig{Level: defaultLogLevel},
	}
}

// Load reads config.yaml from configDir, applies SWEETS_* environment
// overrides, and validates the result. A missing config.yaml yields the
// defaults.
func Load(configDir string) (*Config, error) {
	v := newViper()
	def := Default()
	v.SetDefault(keyCurrencyStrict, def.Currency.Strict)
	v.SetDefault(keyCurrencyDisplay, def.Currency.Display)
	v.SetDefault(keyLogLevel, def.Log.Level)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var parseErr viper.ConfigParseError
		switch {
		case errors.As(err, &notFound):
		case errors.As(err, &parseErr):
			return nil, fmt.Errorf("read config: %w", err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the Config is well-formed.
func (c *Config) Validate() error {
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	if _, ok := currency.New().Lookup(c.Currency.Display); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDisplayCurrency, c.Currency.Display)
	}
	for i, r := range c.Rankings {
		if r.Region == "" || r.Name == "" {
			return fmt.Errorf("%w (entry %d)", ErrInvalidRanking, i)
		}
	}
	return nil
}

// CurrencyTable returns a currency table honouring the strict setting.
func (c *Config) CurrencyTable() *currency.Table {
	if c.Currency.Strict {
		return currency.New(currency.WithStrict())
	}
	return currency.New()
}

// Directory returns the built-in manufacturer directory extended with the
// configured manufacturers and rankings.
func (c *Config) Directory() *directory.Directory {
	d := directory.NewSeeded()
	for region, names := range c.Manufacturers {
		for _, name := range names {
			d.AddManufacturer(region, name)
		}
	}
	for _, r := range c.Rankings {
		d.SetRanking(r.Region, r.Name, r.Rank)
	}
	return d
}

// defaultHeader is written above the generated defaults.
const defaultHeader = `# sweets configuration
#
# manufacturers:      extra manufacturers per region, appended to the built-in list
#   tainan: [安平]
# rankings:           manufacturer rankings, keyed by region and name
#   - {region: tainan, name: 安平, rank: 5}

`

// WriteDefault creates configDir and writes a default config.yaml into it
// unless one already exists. It reports whether a file was written.
func WriteDefault(configDir string) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	path := paths.ConfigFile(configDir)
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(defaultHeader), data...), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
