package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the base name of the optional config file searched for in
// the working directory.
const FileName = "k2-saas"

// EnvPrefix prefixes every environment override, e.g. K2SAAS_TEMPLATE_DIR.
const EnvPrefix = "K2SAAS"

// Config represents the scaffolder configuration
type Config struct {
	Template    string   `mapstructure:"template"`
	TemplateDir string   `mapstructure:"template_dir"`
	Exclude     []string `mapstructure:"exclude"`
	Strict      bool     `mapstructure:"strict"`
	GitInit     bool     `mapstructure:"git_init"`
	NoColor     bool     `mapstructure:"no_color"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"template":     "template",
	"template-dir": "template_dir",
	"exclude":      "exclude",
	"strict":       "strict",
	"git":          "git_init",
	"no-color":     "no_color",
}

// Load reads the configuration. Values come from flags (when set), then
// K2SAAS_* environment variables, then the config file, then defaults.
// path names an explicit config file; when empty, k2-saas.yaml is looked up
// in the working directory and may be absent.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("template", "default")
	v.SetDefault("template_dir", "")
	v.SetDefault("exclude", []string{})
	v.SetDefault("strict", false)
	v.SetDefault("git_init", false)
	v.SetDefault("no_color", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Exclude = v.GetStringSlice("exclude")
	config.File = v.ConfigFileUsed()

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	cfg.Template = strings.TrimSpace(cfg.Template)
	if cfg.Template == "" && cfg.TemplateDir == "" {
		return fmt.Errorf("template must not be empty")
	}
	for _, fragment := range cfg.Exclude {
		if strings.TrimSpace(fragment) == "" {
			return fmt.Errorf("exclude entries must not be empty")
		}
	}
	return nil
}
