// Package config loads the settings of the dsa command from defaults, an
// optional YAML file and DSA_ environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/Aldrin-Shanty/DSA/BTrees"
)

// Sentinel validation errors.
var (
	ErrInvalidLevel    = errors.New("log level must be debug, info, warn or error")
	ErrInvalidFormat   = errors.New("output format must be table, yaml or json")
	ErrInvalidExpected = errors.New("bloom expected count must be positive")
	ErrInvalidFP       = errors.New("bloom false positive rate must be in (0, 1)")
	ErrInvalidMaxLevel = errors.New("skip list max level must be in [1, 64]")
	ErrInvalidP        = errors.New("skip list p must be in (0, 1)")
	ErrInvalidDegree   = fmt.Errorf("btree: %w", BTrees.ErrInvalidDegree)
	ErrInvalidOrder    = fmt.Errorf("bplustree: %w", BTrees.ErrInvalidOrder)
)

// Default configuration values.
const (
	DefaultLevel         = "info"
	DefaultFormat        = "table"
	DefaultColor         = true
	DefaultSeed          = 1
	DefaultBloomExpected = 1000
	DefaultBloomFP       = 0.01
	DefaultMaxLevel      = 16
	DefaultP             = 0.5
	DefaultDegree        = 3
	DefaultOrder         = 4
	maxSkipLevel         = 64
)

var (
	levels  = []string{"debug", "info", "warn", "error"}
	formats = []string{"table", "yaml", "json"}
)

// Config holds all configuration for the dsa command.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Output    OutputConfig    `mapstructure:"output"`
	Random    RandomConfig    `mapstructure:"random"`
	Bloom     BloomConfig     `mapstructure:"bloom"`
	SkipList  SkipListConfig  `mapstructure:"skiplist"`
	BTree     BTreeConfig     `mapstructure:"btree"`
	BPlusTree BPlusTreeConfig `mapstructure:"bplustree"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// RandomConfig seeds the generators behind random demo input and skip list
// levels.
type RandomConfig struct {
	Seed int64 `mapstructure:"seed"`
}

type BloomConfig struct {
	Expected uint    `mapstructure:"expected"`
	FP       float64 `mapstructure:"fp"`
}

type SkipListConfig struct {
	MaxLevel int     `mapstructure:"max_level"`
	P        float64 `mapstructure:"p"`
}

type BTreeConfig struct {
	Degree int `mapstructure:"degree"`
}

type BPlusTreeConfig struct {
	Order int `mapstructure:"order"`
}

// LoadConfig loads configuration from file and environment variables. An
// empty configPath searches for dsa.yaml in the working directory and
// ./config, and a missing file there isn't an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("dsa")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
	}

	viperCfg.SetEnvPrefix("DSA")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("log.level", DefaultLevel)

	viperCfg.SetDefault("output.format", DefaultFormat)
	viperCfg.SetDefault("output.color", DefaultColor)

	viperCfg.SetDefault("random.seed", DefaultSeed)

	viperCfg.SetDefault("bloom.expected", DefaultBloomExpected)
	viperCfg.SetDefault("bloom.fp", DefaultBloomFP)

	viperCfg.SetDefault("skiplist.max_level", DefaultMaxLevel)
	viperCfg.SetDefault("skiplist.p", DefaultP)

	viperCfg.SetDefault("btree.degree", DefaultDegree)
	viperCfg.SetDefault("bplustree.order", DefaultOrder)
}

// Validate checks every setting, returning the first failure wrapped around
// its sentinel error.
func (config *Config) Validate() error {
	if !slices.Contains(levels, config.Log.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, config.Log.Level)
	}

	if !slices.Contains(formats, config.Output.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Output.Format)
	}

	if config.Bloom.Expected == 0 {
		return ErrInvalidExpected
	}

	if config.Bloom.FP <= 0 || config.Bloom.FP >= 1 {
		return fmt.Errorf("%w: %g", ErrInvalidFP, config.Bloom.FP)
	}

	if config.SkipList.MaxLevel < 1 || config.SkipList.MaxLevel > maxSkipLevel {
		return fmt.Errorf("%w: %d", ErrInvalidMaxLevel, config.SkipList.MaxLevel)
	}

	if config.SkipList.P <= 0 || config.SkipList.P >= 1 {
		return fmt.Errorf("%w: %g", ErrInvalidP, config.SkipList.P)
	}

	if config.BTree.Degree < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidDegree, config.BTree.Degree)
	}

	if config.BPlusTree.Order < 3 {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, config.BPlusTree.Order)
	}

	return nil
}
