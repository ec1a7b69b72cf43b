// Package config holds the lcs command configuration: built-in defaults,
// an optional TOML file and validation.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/seqlath/tokenize"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Tokenize configures how input text becomes token sequences.
type Tokenize struct {
	Mode      string `toml:"mode"`
	Normalize string `toml:"normalize,omitempty"`
	Fold      bool   `toml:"fold,omitempty"`
	Charset   string `toml:"charset,omitempty"`
}

// Output configures result rendering.
type Output struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color,omitempty"`

	// Limit caps the number of solutions printed by "all"; 0 means no cap.
	Limit int `toml:"limit,omitempty"`
}

// Log configures the logger.
type Log struct {
	Level string `toml:"level"`
}

// Config is the full command configuration.
type Config struct {
	Tokenize Tokenize `toml:"tokenize"`
	Output   Output   `toml:"output"`
	Log      Log      `toml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tokenize: Tokenize{Mode: "graphemes", Normalize: "nfc"},
		Output:   Output{Format: "text", Color: true},
		Log:      Log{Level: "warning"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Environment variables in the file ($VAR, ${VAR}) are expanded when
// expandEnv is set.
func Load(path string, expandEnv bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	text := string(data)
	if expandEnv {
		text = os.ExpandEnv(text)
	}
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

var (
	formats = []string{"text", "json", "yaml"}
	levels  = []string{"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"}
)

// Validate checks every enumerated field.
func (c Config) Validate() error {
	if _, err := tokenize.ParseMode(c.Tokenize.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := tokenize.ParseForm(c.Tokenize.Normalize); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !oneOf(c.Output.Format, formats) {
		return fmt.Errorf("%w: output format %q", ErrInvalidConfig, c.Output.Format)
	}
	if c.Output.Limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalidConfig, c.Output.Limit)
	}
	if !oneOf(c.Log.Level, levels) {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// TokenizeOptions converts the tokenize section. Call Validate first.
func (c Config) TokenizeOptions() tokenize.Options {
	mode, _ := tokenize.ParseMode(c.Tokenize.Mode)
	form, _ := tokenize.ParseForm(c.Tokenize.Normalize)
	return tokenize.Options{Mode: mode, Normalize: form, Fold: c.Tokenize.Fold}
}

// Encode writes c as TOML, e.g. to seed a config file.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
