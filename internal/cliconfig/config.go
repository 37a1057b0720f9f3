// Package cliconfig holds the settings shared by the barcodeform commands.
// Values come from flags, BARCODEFORM_* environment variables, and an
// optional barcodeform.yaml, in that order of precedence.
package cliconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// BARCODEFORM_SERVER_ADDR.
const EnvPrefix = "BARCODEFORM"

// Keys bound to flags by the commands.
const (
	KeyLogLevel       = "log.level"
	KeyLogJSON        = "log.json"
	KeyServerAddr     = "server.addr"
	KeyServerGrace    = "server.grace"
	KeyRenderer       = "render.renderer"
	KeyLiteralClasses = "render.literal-classes"
	KeyStylesheet     = "render.stylesheet"
	KeyEngine         = "render.engine"
	KeyMismatches     = "config.mismatches"
)

// Template engines the vanilla renderer can run on.
const (
	EnginePongo2     = "pongo2"
	EngineGoTemplate = "go-template"
)

// LogConfig controls the hclog logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr  string        `mapstructure:"addr"`
	Grace time.Duration `mapstructure:"grace"`
}

// RenderConfig controls how forms are rendered.
type RenderConfig struct {
	// Renderer is the registry name used when a command does not pick one.
	Renderer string `mapstructure:"renderer"`
	// LiteralClasses reproduces the legacy class lists.
	LiteralClasses bool   `mapstructure:"literal-classes"`
	Stylesheet     string `mapstructure:"stylesheet"`
	// Engine selects the template engine behind the vanilla renderer.
	Engine string `mapstructure:"engine"`
}

// BarcodesConfig controls the exported barcodes file.
type BarcodesConfig struct {
	Mismatches int `mapstructure:"mismatches"`
}

// Config is the root settings struct.
type Config struct {
	Log    LogConfig      `mapstructure:"log"`
	Server ServerConfig   `mapstructure:"server"`
	Render RenderConfig   `mapstructure:"render"`
	Config BarcodesConfig `mapstructure:"config"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyServerGrace, 5*time.Second)
	v.SetDefault(KeyRenderer, "vanilla")
	v.SetDefault(KeyLiteralClasses, false)
	v.SetDefault(KeyStylesheet, "")
	v.SetDefault(KeyEngine, EnginePongo2)
	v.SetDefault(KeyMismatches, 0)
}

// Load reads file when given, or barcodeform.yaml from the working directory
// when present, and decodes the merged settings.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("barcodeform")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("cliconfig: read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("cliconfig: decode config: %w", err)
	}
	if cfg.Config.Mismatches < 0 {
		return Config{}, fmt.Errorf("cliconfig: %s must not be negative", KeyMismatches)
	}
	switch cfg.Render.Engine {
	case EnginePongo2, EngineGoTemplate:
	default:
		return Config{}, fmt.Errorf("cliconfig: unknown %s %q", KeyEngine, cfg.Render.Engine)
	}
	return cfg, nil
}
