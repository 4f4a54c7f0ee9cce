// Package configlib loads the word cloud settings with viper.
// A missing config file is fine, every key has a default.
package configlib

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"goWordCloud/cloudlib"
)

// Bounds of the user adjustable parameters
const (
	MinMaxWords  = 50
	MaxMaxWords  = 500
	MinMinLength = 1
	MaxMinLength = 5
)

// Config holds every setting of one run
type Config struct {
	FontPath    string        `mapstructure:"fontPath"`
	Width       int           `mapstructure:"width"`
	Height      int           `mapstructure:"height"`
	Background  string        `mapstructure:"background"`
	MaxWords    int           `mapstructure:"maxWords"`
	MinLength   int           `mapstructure:"minLength"`
	Palette     string        `mapstructure:"palette"`
	TopN        int           `mapstructure:"topN"`
	DisplayRows int           `mapstructure:"displayRows"`
	Analyzer    string        `mapstructure:"analyzer"`
	CacheTTL    time.Duration `mapstructure:"cacheTTL"`
}

// SetDefaults registers the default of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("fontPath", "malgun.ttf")
	v.SetDefault("width", 1000)
	v.SetDefault("height", 600)
	v.SetDefault("background", "white")
	v.SetDefault("maxWords", 100)
	v.SetDefault("minLength", 2)
	v.SetDefault("palette", "Set3")
	v.SetDefault("topN", 10)
	v.SetDefault("displayRows", 50)
	v.SetDefault("analyzer", "kagome")
	v.SetDefault("cacheTTL", 10*time.Minute)
}

// Load reads <name>.{yaml,json,toml,...} from the first path holding it, then validates.
// Flags bound to v before the call take precedence over the file.
func Load(v *viper.Viper, name string, paths ...string) (*Config, error) {
	SetDefaults(v)

	v.SetConfigName(name) // name of config file (without extension)
	if len(paths) == 0 {
		paths = []string{"."} // look for config in the working directory
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}

	return decode(v)
}

// decode validates the settings already present in v
func decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate enforces the ranges offered by the interface
func (c *Config) Validate() error {
	if c.MaxWords < MinMaxWords || c.MaxWords > MaxMaxWords {
		return fmt.Errorf("maxWords %d out of range [%d, %d]", c.MaxWords, MinMaxWords, MaxMaxWords)
	}
	if c.MinLength < MinMinLength || c.MinLength > MaxMinLength {
		return fmt.Errorf("minLength %d out of range [%d, %d]", c.MinLength, MinMinLength, MaxMinLength)
	}
	if !cloudlib.IsPalette(c.Palette) {
		return fmt.Errorf("unknown palette %q", c.Palette)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	if _, err := cloudlib.ParseColor(c.Background); err != nil {
		return err
	}
	if c.TopN < 1 || c.DisplayRows < 1 {
		return fmt.Errorf("topN and displayRows must be positive, got %d and %d", c.TopN, c.DisplayRows)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("negative cacheTTL %s", c.CacheTTL)
	}

	return nil
}

// CloudOptions converts the config into rendering options
func (c *Config) CloudOptions() cloudlib.Options {
	return cloudlib.Options{
		Width:      c.Width,
		Height:     c.Height,
		MaxWords:   c.MaxWords,
		Palette:    c.Palette,
		Background: c.Background,
		FontPath:   c.FontPath,
	}
}
