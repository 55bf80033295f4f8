// Package cjkconfig loads the Config that parameterizes the line breaker
// and the spacing analyzer, layering defaults, a user-wide JSON file, an
// ancestor-directory JSON file, environment variables, and CLI flags, per
// spec.md §6.
package cjkconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sgryjp/cjkfmt/internal/cjkerr"
	"github.com/sgryjp/cjkfmt/internal/eastasian"
	"github.com/sgryjp/cjkfmt/spacing"
)

// userConfigFileName is the file looked up in the user configuration
// directory and in the current/ancestor directories.
const userConfigFileName = ".cjkfmt.json"

// Config is the fully resolved, read-only configuration for one
// invocation, per spec.md §3.
type Config struct {
	MaxWidth       int
	AmbiguousWidth eastasian.AmbiguousWidth
	Spacing        spacing.Config
}

func defaults() Config {
	return Config{
		MaxWidth:       80,
		AmbiguousWidth: eastasian.Wide,
		Spacing: spacing.Config{
			Alphabets: spacing.Ignore,
			Digits:    spacing.Ignore,
		},
	}
}

// Load resolves Config from, in increasing precedence: built-in defaults,
// the user configuration directory's .cjkfmt.json, .cjkfmt.json in the
// current or an ancestor directory, CJKFMT_-prefixed environment
// variables, and finally the given CLI overrides.
func Load(cliOverrides *viper.Viper) (Config, error) {
	v := viper.New()

	d := defaults()
	v.SetDefault("max_width", d.MaxWidth)
	v.SetDefault("ambiguous_width", d.AmbiguousWidth.String())
	v.SetDefault("spacing.alphabets", d.Spacing.Alphabets.String())
	v.SetDefault("spacing.digits", d.Spacing.Digits.String())
	v.SetDefault("spacing.punctuation_as_fullwidth", d.Spacing.PunctuationAsFullwidth)

	if path, ok := userConfigPath(); ok {
		if err := mergeJSONFile(v, path); err != nil {
			return Config{}, err
		}
	}
	if path, ok := ancestorConfigPath(); ok {
		if err := mergeJSONFile(v, path); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("CJKFMT")
	v.AutomaticEnv()

	if cliOverrides != nil {
		for _, key := range cliOverrides.AllKeys() {
			v.Set(key, cliOverrides.Get(key))
		}
	}

	return extract(v)
}

func extract(v *viper.Viper) (Config, error) {
	cfg := defaults()

	cfg.MaxWidth = v.GetInt("max_width")

	aw, err := parseAmbiguousWidth(v.GetString("ambiguous_width"))
	if err != nil {
		return Config{}, &cjkerr.InvalidConfiguration{Context: "ambiguous_width", Err: err}
	}
	cfg.AmbiguousWidth = aw

	alphabets, err := parseSpacingRule(v.GetString("spacing.alphabets"))
	if err != nil {
		return Config{}, &cjkerr.InvalidConfiguration{Context: "spacing.alphabets", Err: err}
	}
	cfg.Spacing.Alphabets = alphabets

	digits, err := parseSpacingRule(v.GetString("spacing.digits"))
	if err != nil {
		return Config{}, &cjkerr.InvalidConfiguration{Context: "spacing.digits", Err: err}
	}
	cfg.Spacing.Digits = digits

	cfg.Spacing.PunctuationAsFullwidth = v.GetBool("spacing.punctuation_as_fullwidth")

	if cfg.MaxWidth < 2 {
		return Config{}, &cjkerr.InvalidConfiguration{
			Context: "max_width",
			Err:     fmt.Errorf("must be >= 2, got %d", cfg.MaxWidth),
		}
	}
	if err := cfg.Spacing.Validate(); err != nil {
		return Config{}, &cjkerr.InvalidConfiguration{Context: "spacing", Err: err}
	}

	return cfg, nil
}

func mergeJSONFile(v *viper.Viper, path string) error {
	layer := viper.New()
	layer.SetConfigFile(path)
	layer.SetConfigType("json")
	if err := layer.ReadInConfig(); err != nil {
		return &cjkerr.InvalidConfiguration{Context: path, Err: err}
	}
	return v.MergeConfigMap(layer.AllSettings())
}

// userConfigPath resolves .cjkfmt.json under the user's configuration
// directory ($XDG_CONFIG_HOME or platform equivalent), if it exists.
func userConfigPath() (string, bool) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(dir, userConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// ancestorConfigPath walks up from the working directory looking for
// .cjkfmt.json.
func ancestorConfigPath() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, userConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// parseAmbiguousWidth accepts the canonical names and the "Halfwidth" /
// "Fullwidth" aliases original_source/src/config.rs declares via serde.
func parseAmbiguousWidth(s string) (eastasian.AmbiguousWidth, error) {
	switch s {
	case "Narrow", "narrow", "Halfwidth", "halfwidth":
		return eastasian.Narrow, nil
	case "Wide", "wide", "Fullwidth", "fullwidth", "":
		return eastasian.Wide, nil
	default:
		return 0, fmt.Errorf("unrecognized ambiguous_width %q", s)
	}
}

func parseSpacingRule(s string) (spacing.Rule, error) {
	switch s {
	case "Require", "require":
		return spacing.Require, nil
	case "Prohibit", "prohibit":
		return spacing.Prohibit, nil
	case "Ignore", "ignore", "":
		return spacing.Ignore, nil
	default:
		return 0, fmt.Errorf("unrecognized spacing rule %q", s)
	}
}
