package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBars     = 50
	DefaultMin      = 10
	DefaultMax      = 650
	DefaultDelayMS  = 20
	DefaultHeight   = 20
	DefaultTheme    = "cyberpunk"
	DefaultLogLevel = "info"

	// MaxBars caps the array at a size the terminal can show.
	MaxBars = 120
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Bars      int    `yaml:"bars"`
	MinValue  int    `yaml:"min_value"`
	MaxValue  int    `yaml:"max_value"`
	DelayMS   int    `yaml:"delay_ms"`
	FlashMS   int    `yaml:"flash_ms"`
	SettleMS  int    `yaml:"settle_ms"`
	Height    int    `yaml:"height"`
	Seed      int64  `yaml:"seed"`
	Algorithm string `yaml:"algorithm"`
	Theme     string `yaml:"theme"`
	LogFile   string `yaml:"log_file"`
	LogLevel  string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Bars:     DefaultBars,
		MinValue: DefaultMin,
		MaxValue: DefaultMax,
		DelayMS:  DefaultDelayMS,
		Height:   DefaultHeight,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Bars < 1 || c.Bars > MaxBars {
		return fmt.Errorf("%w: bars must be in 1..%d, got %d", ErrInvalid, MaxBars, c.Bars)
	}
	if c.MinValue <= 0 || c.MinValue > c.MaxValue {
		return fmt.Errorf("%w: value range [%d, %d]", ErrInvalid, c.MinValue, c.MaxValue)
	}
	if c.DelayMS <= 0 {
		return fmt.Errorf("%w: delay_ms must be positive, got %d", ErrInvalid, c.DelayMS)
	}
	if c.FlashMS < 0 || c.SettleMS < 0 {
		return fmt.Errorf("%w: flash_ms and settle_ms must not be negative", ErrInvalid)
	}
	if c.Height < 1 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalid, c.Height)
	}
	return nil
}

func (c *Config) Delay() time.Duration  { return time.Duration(c.DelayMS) * time.Millisecond }
func (c *Config) Flash() time.Duration  { return time.Duration(c.FlashMS) * time.Millisecond }
func (c *Config) Settle() time.Duration { return time.Duration(c.SettleMS) * time.Millisecond }

// ApplyEnv overrides fields from SORTVIZ_* variables. Values in envFile, if it
// exists, are loaded first without replacing variables already set.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	ints := map[string]*int{
		"SORTVIZ_BARS":      &c.Bars,
		"SORTVIZ_MIN_VALUE": &c.MinValue,
		"SORTVIZ_MAX_VALUE": &c.MaxValue,
		"SORTVIZ_DELAY_MS":  &c.DelayMS,
		"SORTVIZ_FLASH_MS":  &c.FlashMS,
		"SORTVIZ_SETTLE_MS": &c.SettleMS,
		"SORTVIZ_HEIGHT":    &c.Height,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
		}
		*dst = n
	}

	if v, ok := os.LookupEnv("SORTVIZ_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SORTVIZ_SEED=%q", ErrInvalid, v)
		}
		c.Seed = n
	}

	strs := map[string]*string{
		"SORTVIZ_ALGORITHM": &c.Algorithm,
		"SORTVIZ_THEME":     &c.Theme,
		"SORTVIZ_LOG_FILE":  &c.LogFile,
		"SORTVIZ_LOG_LEVEL": &c.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	return nil
}
