package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"svw.info/reversemath/internal/domain"
	"svw.info/reversemath/internal/generator"
	"svw.info/reversemath/internal/validator"
)

// Config is the runtime configuration. Environment first, flags override.
type Config struct {
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	DataDir         string `env:"DATA_DIR" envDefault:"./data"`
	ScoreBackend    string `env:"SCORE_BACKEND" envDefault:"file"`
	Manual          bool   `env:"MANUAL" envDefault:"true"`
	HistorySize     int    `env:"HISTORY_SIZE" envDefault:"32"`
	MaxStepAttempts int    `env:"MAX_STEP_ATTEMPTS" envDefault:"64"`
	DifficultyFile  string `env:"DIFFICULTY_FILE"`
}

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "REVERSEMATH_"

// Load reads an optional .env file and then the REVERSEMATH_* environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.ScoreBackend)) {
	case "file", "sqlite":
	default:
		return fmt.Errorf("score backend must be file or sqlite, got %q", c.ScoreBackend)
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("history size must not be negative")
	}
	return nil
}

// ScoreDB is the sqlite file used by the sqlite score backend.
func (c *Config) ScoreDB() string { return filepath.Join(c.DataDir, "score.db") }

// tierFile mirrors the TOML layout:
//
//	[medium]
//	start = [1, 50]
//	steps = 3
//	operations = ["add", "subtract", "multiply"]
type tierFile struct {
	Easy   *domain.TierConfig `toml:"easy"`
	Medium *domain.TierConfig `toml:"medium"`
	Hard   *domain.TierConfig `toml:"hard"`
}

// Tiers returns the default difficulty table with any tiers from
// DifficultyFile replacing the built-in ones.
func (c *Config) Tiers() (generator.Tiers, error) {
	tiers := generator.DefaultTiers()
	if strings.TrimSpace(c.DifficultyFile) == "" {
		return tiers, nil
	}
	f, err := os.Open(c.DifficultyFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var tf tierFile
	if _, err := toml.NewDecoder(f).Decode(&tf); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.DifficultyFile, err)
	}
	over := generator.Tiers{}
	for d, t := range map[domain.Difficulty]*domain.TierConfig{domain.Easy: tf.Easy, domain.Medium: tf.Medium, domain.Hard: tf.Hard} {
		if t != nil {
			over[d] = *t
		}
	}
	tiers = tiers.Merge(over)
	if err := validator.ValidateTiers(tiers); err != nil {
		return nil, fmt.Errorf("%s: %w", c.DifficultyFile, err)
	}
	return tiers, nil
}
