// internal/config/config.go

// Package config resolves scoring parameters from DNA defaults, an optional
// settings file, and explicit CLI overrides, in rising precedence.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"alnqc-core/align"
)

// Settings mirrors the scoring block of a settings file. Any subset of keys
// may be present; missing keys keep their defaults.
type Settings struct {
	Match     float64 `mapstructure:"match"`
	Mismatch  float64 `mapstructure:"mismatch"`
	GapOpen   float64 `mapstructure:"gap-open"`
	GapExtend float64 `mapstructure:"gap-extend"`
}

// Load resolves the effective scoring parameters. An empty path skips the
// file layer. Overrides win over the file, the file wins over defaults.
func Load(path string, over align.Overrides) (align.Params, error) {
	v := viper.New()
	def := align.DefaultParams()
	v.SetDefault("match", def.Match)
	v.SetDefault("mismatch", def.Mismatch)
	v.SetDefault("gap-open", def.GapOpen)
	v.SetDefault("gap-extend", def.GapExtend)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return align.Params{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return align.Params{}, fmt.Errorf("decode settings %s: %w", path, err)
	}
	p := align.Params{
		Match:     s.Match,
		Mismatch:  s.Mismatch,
		GapOpen:   s.GapOpen,
		GapExtend: s.GapExtend,
	}
	return p.Merge(over), nil
}
