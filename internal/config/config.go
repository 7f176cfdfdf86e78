// Package config loads inkqr settings from an optional YAML file, a .env
// file, INKQR_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rook-computer/inkqr/internal/render"
)

const (
	EnvPrefix     = "INKQR"
	EnvListenAddr = "INKQR_LISTEN"
	EnvDevMode    = "INKQR_DEV"

	DefaultListenAddr = ":8080"
	DefaultDevice     = "/dev/fb0"
	DefaultTimeout    = 10 * time.Second
)

// Config holds every setting the binary reads.
type Config struct {
	ListenAddr string        `mapstructure:"listen"`
	DevMode    bool          `mapstructure:"dev"`
	StaticDir  string        `mapstructure:"static_dir"`
	Render     RenderConfig  `mapstructure:"render"`
	Log        LogConfig     `mapstructure:"log"`
	Display    DisplayConfig `mapstructure:"display"`
}

type RenderConfig struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	FontBackend   string        `mapstructure:"font_backend"`
	DefaultAccent string        `mapstructure:"default_accent"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	File  string `mapstructure:"file"`

	// Stdio, when set, receives stdout and stderr including panics. Used
	// by show, where the console is in graphics mode.
	Stdio string `mapstructure:"stdio"`
}

type DisplayConfig struct {
	Device string `mapstructure:"device"`
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"listen":       "listen",
	"dev":          "dev",
	"static-dir":   "static_dir",
	"timeout":      "render.timeout",
	"font-backend": "render.font_backend",
	"debug":        "log.debug",
	"log-file":     "log.file",
	"stdio-log":    "log.stdio",
	"device":       "display.device",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", DefaultListenAddr)
	v.SetDefault("dev", false)
	v.SetDefault("static_dir", "")
	v.SetDefault("render.timeout", DefaultTimeout)
	v.SetDefault("render.font_backend", string(render.BackendOpenType))
	v.SetDefault("render.default_accent", render.HexColor(render.DefaultAccent))
	v.SetDefault("log.debug", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.stdio", "")
	v.SetDefault("display.device", DefaultDevice)
}

// Load reads configuration. path may be empty, in which case inkqr.yaml in
// the working directory is used when present. flags may be nil; only flags
// that were set on the command line override other sources.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("inkqr")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	// viper casts unparsable booleans to false.
	if raw := os.Getenv(EnvDevMode); raw != "" {
		if _, err := strconv.ParseBool(raw); err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at first use.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen address is empty")
	}
	if c.Render.Timeout <= 0 {
		return fmt.Errorf("render.timeout must be positive (got %s)", c.Render.Timeout)
	}
	if _, err := render.ParseFontBackend(c.Render.FontBackend); err != nil {
		return fmt.Errorf("render.font_backend: %w", err)
	}
	if _, err := render.ParseHexColor(c.Render.DefaultAccent); err != nil {
		return fmt.Errorf("render.default_accent: %w", err)
	}
	return nil
}

// FontBackend returns the validated backend.
func (c Config) FontBackend() render.FontBackend {
	b, _ := render.ParseFontBackend(c.Render.FontBackend)
	return b
}

// DefaultAccent returns the validated default accent colour.
func (c Config) DefaultAccent() color.RGBA {
	accent, err := render.ParseHexColor(c.Render.DefaultAccent)
	if err != nil {
		return render.DefaultAccent
	}
	return accent
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
