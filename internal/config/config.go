// Package config loads kestrel settings from kestrel.yaml in the workspace
// root and from KESTREL_* environment variables.
//
// Environment variables win over the file. Nested keys use underscores:
// KESTREL_FORMATTER_COMMAND overrides formatter.command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	fileName  = "kestrel"
	fileType  = "yaml"
	envPrefix = "KESTREL"
)

// Config holds every kestrel setting
type Config struct {
	LogLevel  string          `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error silent"`
	Formatter FormatterConfig `mapstructure:"formatter" yaml:"formatter"`
	Docs      DocsConfig      `mapstructure:"docs" yaml:"docs"`
	Generate  GenerateConfig  `mapstructure:"generate" yaml:"generate"`
}

// FormatterConfig configures the post-generation formatter
type FormatterConfig struct {
	Command    string   `mapstructure:"command" yaml:"command"`
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
}

// DocsConfig configures command reference generation
type DocsConfig struct {
	Output     string   `mapstructure:"output" yaml:"output" validate:"required"`
	Frameworks []string `mapstructure:"frameworks" yaml:"frameworks" validate:"min=1,dive,required"`
}

// GenerateConfig holds workspace-wide defaults for generator flags
type GenerateConfig struct {
	Style          string `mapstructure:"style" yaml:"style"`
	Linter         string `mapstructure:"linter" yaml:"linter" validate:"omitempty,oneof=eslint tslint"`
	UnitTestRunner string `mapstructure:"unit_test_runner" yaml:"unit_test_runner" validate:"omitempty,oneof=jest none"`
	E2ETestRunner  string `mapstructure:"e2e_test_runner" yaml:"e2e_test_runner" validate:"omitempty,oneof=cypress none"`
	Conflict       string `mapstructure:"conflict" yaml:"conflict" validate:"omitempty,oneof=prompt force skip fail"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Formatter: FormatterConfig{
			Command:    "npx prettier --write",
			Extensions: []string{".ts", ".tsx", ".js", ".jsx", ".json", ".css", ".scss", ".less", ".md", ".html"},
		},
		Docs: DocsConfig{
			Output:     "docs",
			Frameworks: []string{"web", "angular", "react"},
		},
		Generate: GenerateConfig{
			Style:          "css",
			Linter:         "eslint",
			UnitTestRunner: "jest",
			E2ETestRunner:  "cypress",
		},
	}
}

// Load reads kestrel.yaml from dir (if present) and the environment.
// A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading %s.%s: %w", fileName, fileType, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("formatter.command", d.Formatter.Command)
	v.SetDefault("formatter.extensions", d.Formatter.Extensions)
	v.SetDefault("docs.output", d.Docs.Output)
	v.SetDefault("docs.frameworks", d.Docs.Frameworks)
	v.SetDefault("generate.style", d.Generate.Style)
	v.SetDefault("generate.linter", d.Generate.Linter)
	v.SetDefault("generate.unit_test_runner", d.Generate.UnitTestRunner)
	v.SetDefault("generate.e2e_test_runner", d.Generate.E2ETestRunner)
	v.SetDefault("generate.conflict", d.Generate.Conflict)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config value for %s: %q (%s %s)", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// YAML renders the effective configuration
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}
