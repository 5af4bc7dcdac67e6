package prediction

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the engine weights. Zero values are not meaningful; start
// from DefaultConfig and override.
type Config struct {
	// how many of the most recent history entries are scored
	HistoryWindow int `yaml:"history_window"`

	// cap on the ranked shortlist
	ShortlistSize int `yaml:"shortlist_size"`

	// trailing history positions treated as recent churn
	RecentSpan int `yaml:"recent_span"`

	StableReward      int `yaml:"stable_reward"`
	RecentPenalty     int `yaml:"recent_penalty"`
	LastObservedBonus int `yaml:"last_observed_bonus"`
	MissingWeight     int `yaml:"missing_weight"`
	FrequencyCeiling  int `yaml:"frequency_ceiling"`
}

const (
	defaultHistoryWindow     = 5
	defaultShortlistSize     = 7
	defaultRecentSpan        = 3
	defaultStableReward      = 1
	defaultRecentPenalty     = 1
	defaultLastObservedBonus = 5
	defaultMissingWeight     = 2
	defaultFrequencyCeiling  = 10
)

func DefaultConfig() Config {
	return Config{
		HistoryWindow:     defaultHistoryWindow,
		ShortlistSize:     defaultShortlistSize,
		RecentSpan:        defaultRecentSpan,
		StableReward:      defaultStableReward,
		RecentPenalty:     defaultRecentPenalty,
		LastObservedBonus: defaultLastObservedBonus,
		MissingWeight:     defaultMissingWeight,
		FrequencyCeiling:  defaultFrequencyCeiling,
	}
}

func (cfg Config) Validate() error {
	if cfg.HistoryWindow <= 0 {
		return errors.New("history_window must be positive")
	}
	if cfg.ShortlistSize <= 0 {
		return errors.New("shortlist_size must be positive")
	}
	if cfg.RecentSpan < 0 {
		return errors.New("recent_span must not be negative")
	}
	return nil
}

// LoadConfigFile overlays a YAML file on top of DefaultConfig. An empty path
// returns the defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read engine config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse engine config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid engine config: %w", err)
	}

	return cfg, nil
}

// trimHistory keeps the most recent HistoryWindow entries.
func (cfg Config) trimHistory(history []int) []int {
	if len(history) <= cfg.HistoryWindow {
		out := make([]int, len(history))
		copy(out, history)
		return out
	}
	out := make([]int, cfg.HistoryWindow)
	copy(out, history[len(history)-cfg.HistoryWindow:])
	return out
}
