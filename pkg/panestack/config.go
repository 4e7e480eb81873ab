package panestack

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
	"github.com/BrandonKowalski/panestack/pkg/panestack/internal"
	"github.com/BurntSushi/toml"
)

// Config holds the tunables of a Container.
type Config struct {
	SplitCapable       bool          // start in the split layout
	DPI                float64       // display density, dots per inch
	TransitionDuration time.Duration // programmatic transitions
	MinReleaseDuration time.Duration // floor for gesture release animations
	FlingVelocity      float64       // px per second
	SlideThresholdCM   float64       // physical drag threshold
	VelocityWindow     time.Duration // rolling window of the velocity estimate
	ShadowRampDP       float64
	ShadowWidthDP      float64
	ScrimMaxOpacity    float64
	Locale             string
	LogLevel           string
}

type fileConfig struct {
	SplitCapable       bool    `toml:"split_capable"`
	DPI                float64 `toml:"dpi"`
	TransitionDuration string  `toml:"transition_duration"`
	MinReleaseDuration string  `toml:"min_release_duration"`
	FlingVelocity      float64 `toml:"fling_velocity"`
	SlideThresholdCM   float64 `toml:"slide_threshold_cm"`
	VelocityWindow     string  `toml:"velocity_window"`
	ShadowRampDP       float64 `toml:"shadow_ramp_dp"`
	ShadowWidthDP      float64 `toml:"shadow_width_dp"`
	ScrimMaxOpacity    float64 `toml:"scrim_max_opacity"`
	Locale             string  `toml:"locale"`
	LogLevel           string  `toml:"log_level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		DPI:                constants.DefaultDPI,
		TransitionDuration: constants.DefaultTransitionDuration,
		MinReleaseDuration: constants.DefaultMinReleaseDuration,
		FlingVelocity:      constants.DefaultFlingVelocity,
		SlideThresholdCM:   constants.DefaultSlideThresholdCM,
		VelocityWindow:     constants.DefaultVelocityWindow,
		ShadowRampDP:       constants.DefaultShadowRampDP,
		ShadowWidthDP:      constants.DefaultShadowWidthDP,
		ScrimMaxOpacity:    constants.DefaultScrimMaxOpacity,
		Locale:             constants.DefaultLocale,
		LogLevel:           "info",
	}
}

// LoadConfig reads a TOML file over the defaults. Keys absent from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, NewHostError("load_config", fmt.Errorf("config load failed (%s): %w", path, err))
	}
	return applyFileConfig(DefaultConfig(), raw, meta)
}

// ParseConfig decodes TOML text over the defaults.
func ParseConfig(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return applyFileConfig(DefaultConfig(), raw, meta)
}

func applyFileConfig(cfg Config, raw fileConfig, meta toml.MetaData) (Config, error) {
	if meta.IsDefined("split_capable") {
		cfg.SplitCapable = raw.SplitCapable
	}
	if meta.IsDefined("dpi") {
		cfg.DPI = raw.DPI
	}

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"transition_duration", raw.TransitionDuration, &cfg.TransitionDuration},
		{"min_release_duration", raw.MinReleaseDuration, &cfg.MinReleaseDuration},
		{"velocity_window", raw.VelocityWindow, &cfg.VelocityWindow},
	}
	for _, d := range durations {
		if !meta.IsDefined(d.key) {
			continue
		}
		v, err := time.ParseDuration(strings.TrimSpace(d.raw))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", d.key, err)
		}
		*d.dst = v
	}

	if meta.IsDefined("fling_velocity") {
		cfg.FlingVelocity = raw.FlingVelocity
	}
	if meta.IsDefined("slide_threshold_cm") {
		cfg.SlideThresholdCM = raw.SlideThresholdCM
	}
	if meta.IsDefined("shadow_ramp_dp") {
		cfg.ShadowRampDP = raw.ShadowRampDP
	}
	if meta.IsDefined("shadow_width_dp") {
		cfg.ShadowWidthDP = raw.ShadowWidthDP
	}
	if meta.IsDefined("scrim_max_opacity") {
		cfg.ScrimMaxOpacity = raw.ScrimMaxOpacity
	}
	if meta.IsDefined("locale") {
		if v := strings.TrimSpace(raw.Locale); v != "" {
			cfg.Locale = v
		}
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		internal.GetInternalLogger().Warn("unknown config keys ignored", "keys", fmt.Sprint(undecoded))
	}

	return cfg, cfg.Validate()
}

// Validate reports every out-of-range value.
func (c Config) Validate() error {
	var errs []error
	if c.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi must be positive, got %v", c.DPI))
	}
	if c.TransitionDuration < 0 {
		errs = append(errs, fmt.Errorf("transition_duration must not be negative, got %s", c.TransitionDuration))
	}
	if c.MinReleaseDuration < 0 {
		errs = append(errs, fmt.Errorf("min_release_duration must not be negative, got %s", c.MinReleaseDuration))
	}
	if c.VelocityWindow <= 0 {
		errs = append(errs, fmt.Errorf("velocity_window must be positive, got %s", c.VelocityWindow))
	}
	if c.FlingVelocity <= 0 {
		errs = append(errs, fmt.Errorf("fling_velocity must be positive, got %v", c.FlingVelocity))
	}
	if c.SlideThresholdCM < 0 {
		errs = append(errs, fmt.Errorf("slide_threshold_cm must not be negative, got %v", c.SlideThresholdCM))
	}
	if c.ShadowRampDP <= 0 {
		errs = append(errs, fmt.Errorf("shadow_ramp_dp must be positive, got %v", c.ShadowRampDP))
	}
	if c.ShadowWidthDP < 0 {
		errs = append(errs, fmt.Errorf("shadow_width_dp must not be negative, got %v", c.ShadowWidthDP))
	}
	if c.ScrimMaxOpacity < 0 || c.ScrimMaxOpacity > 1 {
		errs = append(errs, fmt.Errorf("scrim_max_opacity must be within [0,1], got %v", c.ScrimMaxOpacity))
	}
	if _, ok := internal.ParseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	return errors.Join(errs...)
}

// Density returns pixels per logical unit.
func (c Config) Density() float64 {
	if c.DPI <= 0 {
		return 1
	}
	return c.DPI / constants.BaselineDPI
}

// Encode renders the configuration as TOML.
func (c Config) Encode() (string, error) {
	raw := fileConfig{
		SplitCapable:       c.SplitCapable,
		DPI:                c.DPI,
		TransitionDuration: c.TransitionDuration.String(),
		MinReleaseDuration: c.MinReleaseDuration.String(),
		FlingVelocity:      c.FlingVelocity,
		SlideThresholdCM:   c.SlideThresholdCM,
		VelocityWindow:     c.VelocityWindow.String(),
		ShadowRampDP:       c.ShadowRampDP,
		ShadowWidthDP:      c.ShadowWidthDP,
		ScrimMaxOpacity:    c.ScrimMaxOpacity,
		Locale:             c.Locale,
		LogLevel:           c.LogLevel,
	}
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(raw); err != nil {
		return "", err
	}
	return sb.String(), nil
}
