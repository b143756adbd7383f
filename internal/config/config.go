// Package config provides Viper-based configuration loading for the protocols demo.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is the zap sink the logger writes to. Stdout is reserved for the
	// demonstration text, so this defaults to "stderr".
	Output string `mapstructure:"output"`
}

// TelemetryConfig holds OpenTelemetry tracing settings.
type TelemetryConfig struct {
	// Enabled turns on the OTLP HTTP trace exporter.
	Enabled bool `mapstructure:"enabled"`
	// Endpoint overrides OTEL_EXPORTER_OTLP_ENDPOINT when non-empty.
	Endpoint string `mapstructure:"endpoint"`
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `mapstructure:"service_name"`
}

// GeneratorConfig selects and parameterises the pseudo-random generator.
type GeneratorConfig struct {
	// Kind is "lcg" (deterministic) or "crypto".
	Kind       string  `mapstructure:"kind"`
	Seed       float64 `mapstructure:"seed"`
	Multiplier float64 `mapstructure:"multiplier"`
	Increment  float64 `mapstructure:"increment"`
	Modulus    float64 `mapstructure:"modulus"`
}

// GameConfig holds Snakes and Ladders settings.
type GameConfig struct {
	// Dice is a single-die expression such as "d6".
	Dice string `mapstructure:"dice"`
	// BoardFile is a YAML board layout; empty selects the built-in board.
	BoardFile string `mapstructure:"board_file"`
	// MaxTurns caps the number of turns; 0 means unlimited.
	MaxTurns int `mapstructure:"max_turns"`
}

// ScriptingConfig holds Lua counter-source settings.
type ScriptingConfig struct {
	// Dir holds one sub-directory of *.lua files per scripted counter source.
	// Empty disables scripted sources.
	Dir string `mapstructure:"dir"`
	// InstructionLimit is the per-call Lua opcode budget; 0 uses the default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Game      GameConfig      `mapstructure:"game"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateTelemetry(c.Telemetry); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGenerator(c.Generator); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateScripting(c.Scripting); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return errors.New("logging.output must not be empty")
	}
	return nil
}

func validateTelemetry(t TelemetryConfig) error {
	if t.Enabled && t.ServiceName == "" {
		return errors.New("telemetry.service_name must not be empty when telemetry is enabled")
	}
	return nil
}

func validateGenerator(g GeneratorConfig) error {
	var errs []string
	switch g.Kind {
	case "lcg":
		for _, c := range []struct {
			key   string
			value float64
		}{
			{"seed", g.Seed},
			{"multiplier", g.Multiplier},
			{"increment", g.Increment},
			{"modulus", g.Modulus},
		} {
			if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
				errs = append(errs, fmt.Sprintf("generator.%s must be finite, got %v", c.key, c.value))
			}
		}
		if g.Modulus <= 0 {
			errs = append(errs, fmt.Sprintf("generator.modulus must be > 0, got %v", g.Modulus))
		}
		if g.Multiplier < 0 {
			errs = append(errs, fmt.Sprintf("generator.multiplier must be >= 0, got %v", g.Multiplier))
		}
		if g.Increment < 0 {
			errs = append(errs, fmt.Sprintf("generator.increment must be >= 0, got %v", g.Increment))
		}
		if g.Seed < 0 {
			errs = append(errs, fmt.Sprintf("generator.seed must be >= 0, got %v", g.Seed))
		}
		if len(errs) == 0 && math.IsInf(math.Max(g.Seed, g.Modulus)*g.Multiplier+g.Increment, 0) {
			errs = append(errs, "generator constants overflow float64")
		}
	case "crypto":
	default:
		errs = append(errs, fmt.Sprintf("generator.kind must be one of [lcg, crypto], got %q", g.Kind))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.Dice == "" {
		errs = append(errs, "game.dice must not be empty")
	}
	if g.MaxTurns < 0 {
		errs = append(errs, fmt.Sprintf("game.max_turns must be >= 0, got %d", g.MaxTurns))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateScripting(s ScriptingConfig) error {
	if s.InstructionLimit < 0 {
		return fmt.Errorf("scripting.instruction_limit must be >= 0, got %d", s.InstructionLimit)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with PROTOCOLS_ prefix
	v.SetEnvPrefix("PROTOCOLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.service_name", "protocols")

	v.SetDefault("generator.kind", "lcg")
	v.SetDefault("generator.seed", 42.0)
	v.SetDefault("generator.multiplier", 3877.0)
	v.SetDefault("generator.increment", 29573.0)
	v.SetDefault("generator.modulus", 139968.0)

	v.SetDefault("game.dice", "d6")
	v.SetDefault("game.board_file", "")
	v.SetDefault("game.max_turns", 0)

	v.SetDefault("scripting.dir", "")
	v.SetDefault("scripting.instruction_limit", 0)
}
