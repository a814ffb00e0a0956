// Package config loads trainer settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	engine "github.com/jason-s-yu/rummy/engine"
	"github.com/jason-s-yu/rummy/engine/agent"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything cmd/rummy-train needs.
type Config struct {
	Rules engine.Rules

	Episodes     int
	EvalEpisodes int
	Epsilon      float64
	Alpha        float64
	Gamma        float64
	Seed         uint64 // 0 seeds from the clock

	LearnerName string
	Bots        int

	LogLevel  logrus.Level
	LogEvery  int
	ChartPath string // empty disables the chart
	Debug     bool   // print every game event
	Color     bool
}

// Default returns the reference training setup: one learner against one
// bot, three cards each, twenty rounds, ten thousand episodes.
func Default() Config {
	rules := engine.DefaultRules()
	rules.MaxCardLength = 3
	return Config{
		Rules:        rules,
		Episodes:     10000,
		EvalEpisodes: 1000,
		Epsilon:      agent.DefaultEpsilon,
		Alpha:        agent.DefaultAlpha,
		Gamma:        agent.DefaultGamma,
		LearnerName:  "learner",
		Bots:         1,
		LogLevel:     logrus.InfoLevel,
		LogEvery:     1000,
		Color:        true,
	}
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. A missing default .env is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}
	return FromEnv()
}

// FromEnv overlays RUMMY_* variables on Default.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	cfg.Episodes = atoiDef(os.Getenv("RUMMY_EPISODES"), cfg.Episodes)
	cfg.EvalEpisodes = atoiDef(os.Getenv("RUMMY_EVAL_EPISODES"), cfg.EvalEpisodes)
	cfg.Epsilon = floatDef(os.Getenv("RUMMY_EPSILON"), cfg.Epsilon)
	cfg.Alpha = floatDef(os.Getenv("RUMMY_ALPHA"), cfg.Alpha)
	cfg.Gamma = floatDef(os.Getenv("RUMMY_GAMMA"), cfg.Gamma)
	if s := os.Getenv("RUMMY_SEED"); s != "" {
		if cfg.Seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			return cfg, fmt.Errorf("RUMMY_SEED: %w", err)
		}
	}

	cfg.Rules.MaxCardLength = atoiDef(os.Getenv("RUMMY_MAX_CARD_LENGTH"), cfg.Rules.MaxCardLength)
	cfg.Rules.MaxTurns = atoiDef(os.Getenv("RUMMY_MAX_TURNS"), cfg.Rules.MaxTurns)
	cfg.Rules.Packs = atoiDef(os.Getenv("RUMMY_PACKS"), cfg.Rules.Packs)
	if cfg.Rules.RewardPolicy, err = engine.ParseRewardPolicy(os.Getenv("RUMMY_REWARD_POLICY")); err != nil {
		return cfg, fmt.Errorf("RUMMY_REWARD_POLICY: %w", err)
	}

	cfg.LearnerName = getenv("RUMMY_LEARNER_NAME", cfg.LearnerName)
	cfg.Bots = atoiDef(os.Getenv("RUMMY_BOTS"), cfg.Bots)

	if s := os.Getenv("RUMMY_LOG_LEVEL"); s != "" {
		if cfg.LogLevel, err = logrus.ParseLevel(s); err != nil {
			return cfg, fmt.Errorf("RUMMY_LOG_LEVEL: %w", err)
		}
	}
	cfg.LogEvery = atoiDef(os.Getenv("RUMMY_LOG_EVERY"), cfg.LogEvery)
	cfg.ChartPath = os.Getenv("RUMMY_CHART_PATH")
	cfg.Debug = asBool(os.Getenv("RUMMY_DEBUG"))
	cfg.Color = os.Getenv("NO_COLOR") == ""

	return cfg, cfg.Validate()
}

// Validate rejects settings the engine or learner cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Episodes < 0 || c.EvalEpisodes < 0:
		return fmt.Errorf("episode counts must be non-negative")
	case c.Epsilon < 0 || c.Epsilon > 1:
		return fmt.Errorf("epsilon %v outside [0, 1]", c.Epsilon)
	case c.Rules.MaxCardLength < 1:
		return fmt.Errorf("max card length must be positive")
	case c.Bots < 0:
		return fmt.Errorf("bot count must be non-negative")
	}
	need := (c.Bots+1)*c.Rules.MaxCardLength + 1
	if need > c.Rules.DeckSize() {
		return fmt.Errorf("%d players × %d cards: %w", c.Bots+1, c.Rules.MaxCardLength, engine.ErrDeckTooSmall)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func floatDef(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
