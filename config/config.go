// Package config holds statewords settings and resolves them from defaults,
// an optional YAML file, STATEWORDS_* environment variables, and command-line
// flags, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statewords/loader"
	"github.com/katalvlaran/statewords/vocab"
)

// EnvPrefix prefixes every environment override, e.g. STATEWORDS_WALKS_FROM.
const EnvPrefix = "STATEWORDS"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Range is an inclusive sweep of step counts, run from From toward To.
type Range struct {
	From int `yaml:"from" mapstructure:"from" validate:"gte=1"`
	To   int `yaml:"to"   mapstructure:"to"   validate:"gte=1"`
}

// Config is the resolved configuration.
type Config struct {
	// Adjacency is the adjacency table source: "embedded", a URL, or a path.
	Adjacency string `yaml:"adjacency" mapstructure:"adjacency" validate:"required"`

	// Vocabulary is the word list source: a URL or a path.
	Vocabulary string `yaml:"vocabulary" mapstructure:"vocabulary" validate:"required"`

	// Symmetric mirrors every adjacency edge.
	Symmetric bool `yaml:"symmetric" mapstructure:"symmetric"`

	// MinWordLength keeps only words longer than this.
	MinWordLength int `yaml:"min_word_length" mapstructure:"min_word_length" validate:"gte=0"`

	// Walks and Tours are the step sweeps for the anagram reports.
	Walks Range `yaml:"walks" mapstructure:"walks"`
	Tours Range `yaml:"tours" mapstructure:"tours"`

	// MaxSteps guards enumeration against runaway k.
	MaxSteps int `yaml:"max_steps" mapstructure:"max_steps" validate:"gte=1,lte=12"`

	Format   string `yaml:"format"    mapstructure:"format"    validate:"oneof=text json yaml"`
	Color    string `yaml:"color"     mapstructure:"color"     validate:"oneof=auto always never"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the classic puzzle settings: the bundled state map,
// the SOWPODS word list, walks of 7 down to 3 steps and tours of 6 down to 3.
func Default() Config {
	return Config{
		Adjacency:     loader.Embedded,
		Vocabulary:    loader.DefaultVocabularyURL,
		MinWordLength: vocab.DefaultMinLength,
		Walks:         Range{From: 7, To: 3},
		Tours:         Range{From: 6, To: 3},
		MaxSteps:      8,
		Format:        "text",
		Color:         "auto",
		LogLevel:      "warn",
	}
}

// keys lists every viper key with the value it takes from c.
func keys(c Config) map[string]any {
	return map[string]any{
		"adjacency":       c.Adjacency,
		"vocabulary":      c.Vocabulary,
		"symmetric":       c.Symmetric,
		"min_word_length": c.MinWordLength,
		"walks.from":      c.Walks.From,
		"walks.to":        c.Walks.To,
		"tours.from":      c.Tours.From,
		"tours.to":        c.Tours.To,
		"max_steps":       c.MaxSteps,
		"format":          c.Format,
		"color":           c.Color,
		"log_level":       c.LogLevel,
	}
}

// NewViper returns a viper instance wired for STATEWORDS_* environment overrides.
// Bind command-line flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load resolves the configuration. path may be empty for no file. The file is
// decoded strictly: unknown keys are an error.
func Load(v *viper.Viper, path string) (Config, error) {
	// 1) Defaults, then the file
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
		if err = decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	// 2) File values become viper defaults so env and flags win over them
	for k, val := range keys(cfg) {
		v.SetDefault(k, val)
	}

	// 3) Merge
	var out Config
	if err := v.Unmarshal(&out); err != nil {
		return Config{}, fmt.Errorf("config: merge: %w", err)
	}
	out.Format = strings.ToLower(out.Format)
	out.Color = strings.ToLower(out.Color)
	out.LogLevel = strings.ToLower(out.LogLevel)

	// 4) Validate
	if err := out.Validate(); err != nil {
		return Config{}, err
	}

	return out, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level; unknown values map to Warn.
func (c Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}

	return l
}
