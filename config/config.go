// Package config provides binding configuration loading using TOML.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/eugenmihailescu/myinputmask/binding"
)

// Field is the mask configuration for one selector. Strict is a pointer so
// an explicit `strict = false` in the file survives merging; absent means
// the default, true.
type Field struct {
	Mask    string `toml:"mask"`
	Pattern string `toml:"pattern"`
	Strict  *bool  `toml:"strict"`
}

// Config is the main configuration struct.
type Config struct {
	Fill     string           `toml:"fill"`     // placeholder symbol, single character
	AutoInit *bool            `toml:"autoinit"` // bind on startup; absent means true
	Fields   map[string]Field `toml:"fields"`   // keyed by selector
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Fill:   "_",
		Fields: make(map[string]Field),
	}
}

// Autoinit reports whether bindings should be initialized automatically.
func (c *Config) Autoinit() bool {
	return c.AutoInit == nil || *c.AutoInit
}

// FillByte returns the fill symbol as a byte.
func (c *Config) FillByte() byte {
	if c.Fill == "" {
		return '_'
	}
	return c.Fill[0]
}

// Load loads configuration, layering the user's file on top of defaults.
// Returns the defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	user, err := loadFromTOML(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return merge(cfg, user), nil
}

// loadFromTOML loads a TOML config file and returns the config.
func loadFromTOML(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	return &cfg, nil
}

// merge layers user config on top of defaults. Pointer-typed booleans carry
// explicit false through; only nil falls back.
func merge(defaults, user *Config) *Config {
	result := *defaults
	if user.Fill != "" {
		result.Fill = user.Fill
	}
	if user.AutoInit != nil {
		result.AutoInit = user.AutoInit
	}
	if len(user.Fields) > 0 {
		result.Fields = user.Fields
	}
	return &result
}

// Options converts the loaded configuration into registry options over the
// given locator.
func (c *Config) Options(loc binding.Locator) binding.Options {
	fields := make(map[string]binding.FieldConfig, len(c.Fields))
	for selector, f := range c.Fields {
		fields[selector] = binding.FieldConfig{
			Mask:    f.Mask,
			Pattern: f.Pattern,
			Strict:  f.Strict,
		}
	}
	return binding.Options{
		Fill:    c.FillByte(),
		Fields:  fields,
		Locator: loc,
	}
}

// DefaultTOML returns the default configuration as a TOML string, for
// generating a starter config file.
func DefaultTOML() string {
	return `# Masked input configuration
# Only include settings you want to change from defaults

fill = "_"       # placeholder symbol used in mask templates
autoinit = true  # bind configured fields on startup

# One [fields."<selector>"] table per field. Omitted mask/pattern fall back
# to the field's placeholder and pattern attributes.
[fields."input[name=phone]"]
mask = "(___) ___-____"
pattern = "[0-9]"
strict = true
`
}
