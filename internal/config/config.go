package config

import (
	"fmt"

	"github.com/dox4/newpost/internal/post"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the resolved settings for one run.
type Config struct {
	Dir       string `mapstructure:"dir"`
	Offset    string `mapstructure:"offset"`
	Edit      bool   `mapstructure:"edit"`
	Editor    string `mapstructure:"editor"`
	PrintPath bool   `mapstructure:"print"`
}

// Load resolves configuration from defaults and the given command flags.
// There is no config file and no environment lookup.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("dir", post.DefaultDir)
	v.SetDefault("offset", post.DefaultOffset)
	v.SetDefault("edit", false)
	v.SetDefault("editor", "")
	v.SetDefault("print", false)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}
