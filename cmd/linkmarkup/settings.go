package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/riverfjs/linkmarkup-go"
)

const defaultConfigFile = "linkmarkup.toml"

// settings 是 TOML 配置与命令行参数合并后的结果
type settings struct {
	Mnemonics   bool   `toml:"mnemonics"`
	Normalize   bool   `toml:"normalize"`
	LogDiscards bool   `toml:"log_discards"`
	EntityType  string `toml:"entity_type"`
	MaxLength   int    `toml:"max_length"`
	Color       string `toml:"color"`
	Jobs        int    `toml:"jobs"`
}

func defaultSettings() settings {
	return settings{
		EntityType: linkmarkup.EntityTextLink,
		Color:      "auto",
		Jobs:       4,
	}
}

// loadSettings decodes path over the defaults. A missing default config
// file is not an error; a missing explicit one is.
func loadSettings(path string, explicit bool) (settings, error) {
	cfg := defaultSettings()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultSettings(), nil
		}
		return settings{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (s settings) validate() error {
	switch s.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid color %q (want auto|on|off)", s.Color)
	}
	if s.MaxLength < 0 {
		return fmt.Errorf("max_length must not be negative, got %d", s.MaxLength)
	}
	if s.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", s.Jobs)
	}
	return nil
}

// resolveSettings loads the config file and applies explicitly set flags.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	cfg, err := loadSettings(path, explicit)
	if err != nil {
		return settings{}, err
	}

	if flags.Changed("color") {
		if cfg.Color, err = flags.GetString("color"); err != nil {
			return settings{}, err
		}
	}
	if flags.Changed("mnemonics") {
		if cfg.Mnemonics, err = flags.GetBool("mnemonics"); err != nil {
			return settings{}, err
		}
	}
	if flags.Changed("normalize") {
		if cfg.Normalize, err = flags.GetBool("normalize"); err != nil {
			return settings{}, err
		}
	}
	if flags.Changed("log-discards") {
		if cfg.LogDiscards, err = flags.GetBool("log-discards"); err != nil {
			return settings{}, err
		}
	}
	if flags.Lookup("max-length") != nil && flags.Changed("max-length") {
		if cfg.MaxLength, err = flags.GetInt("max-length"); err != nil {
			return settings{}, err
		}
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return settings{}, err
		}
	}
	cfg.Color = strings.ToLower(cfg.Color)
	if err := cfg.validate(); err != nil {
		return settings{}, err
	}
	return cfg, nil
}

func (s settings) useColor(f *os.File) bool {
	return s.Color == "on" || (s.Color == "auto" && isTerminal(f))
}

// options converts settings to library options.
func (s settings) options() []linkmarkup.Option {
	config := linkmarkup.DefaultConfig().Clone()
	config.Mnemonics = s.Mnemonics
	config.Normalize = s.Normalize
	config.LogDiscards = s.LogDiscards
	config.LinkEntityType = s.EntityType
	return []linkmarkup.Option{linkmarkup.WithConfig(config)}
}
