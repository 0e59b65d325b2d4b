package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the battle simulator.
type Simulator struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Battle rules
	Battle BattleConfig `yaml:"battle"`

	// Ranking tools
	Ranking RankingConfig `yaml:"ranking"`

	// HTTP API
	HTTP HTTPConfig `yaml:"http"`

	// Database
	Database DatabaseConfig `yaml:"database"`
}

// BattleConfig holds trainer battle rule parameters.
// All durations are measured in ticks (500ms of game time each).
type BattleConfig struct {
	Shields             int     `yaml:"shields"`
	SwitchCooldownTicks int     `yaml:"switch_cooldown_ticks"` // 60s = 120 ticks
	SwitchTicks         int     `yaml:"switch_ticks"`          // extra time of a voluntary switch
	ChargeMoveTicks     int     `yaml:"charge_move_ticks"`     // pause while a charge move plays out
	TurnLimit           int     `yaml:"turn_limit"`            // 4m30s = 540 ticks
	MaxIterations       int     `yaml:"max_iterations"`        // auto-play safety net
	BattleBonus         float64 `yaml:"battle_bonus"`
	ChargeBonus         float64 `yaml:"charge_bonus"` // charge move minigame result, 0..1
}

// RankingConfig holds defaults for the IV search and ranking tools.
type RankingConfig struct {
	CPLimit    int     `yaml:"cp_limit"`
	LevelLimit float64 `yaml:"level_limit"`
	Workers    int     `yaml:"workers"`
	Top        int     `yaml:"top"`
}

// HTTPConfig holds HTTP API server parameters.
type HTTPConfig struct {
	BindAddress     string        `yaml:"bind_address"`
	Port            int           `yaml:"port"`
	AllowOrigins    []string      `yaml:"allow_origins"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Addr returns host:port for net/http.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.BindAddress, h.Port)
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultBattle returns the standard trainer battle rules.
func DefaultBattle() BattleConfig {
	return BattleConfig{
		Shields:             2,
		SwitchCooldownTicks: 120,
		SwitchTicks:         1,
		ChargeMoveTicks:     20,
		TurnLimit:           540,
		MaxIterations:       10000,
		BattleBonus:         1.3,
		ChargeBonus:         1.0,
	}
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel: "info",
		Battle:   DefaultBattle(),
		Ranking: RankingConfig{
			CPLimit:    1500,
			LevelLimit: 50.0,
			Workers:    4,
			Top:        30,
		},
		HTTP: HTTPConfig{
			BindAddress:     "0.0.0.0",
			Port:            8080,
			AllowOrigins:    []string{"*"},
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "pvpsim",
			Password: "pvpsim",
			DBName:   "pvpsim",
			SSLMode:  "disable",
		},
	}
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Battle.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that battle rules are usable by the engine.
func (b BattleConfig) Validate() error {
	switch {
	case b.Shields < 0:
		return fmt.Errorf("shields must be >= 0, got %d", b.Shields)
	case b.SwitchCooldownTicks < 0:
		return fmt.Errorf("switch_cooldown_ticks must be >= 0, got %d", b.SwitchCooldownTicks)
	case b.SwitchTicks < 0 || b.ChargeMoveTicks < 0:
		return fmt.Errorf("switch_ticks and charge_move_ticks must be >= 0")
	case b.TurnLimit <= 0:
		return fmt.Errorf("turn_limit must be > 0, got %d", b.TurnLimit)
	case b.MaxIterations <= 0:
		return fmt.Errorf("max_iterations must be > 0, got %d", b.MaxIterations)
	case b.BattleBonus <= 0:
		return fmt.Errorf("battle_bonus must be > 0, got %v", b.BattleBonus)
	case b.ChargeBonus < 0 || b.ChargeBonus > 1:
		return fmt.Errorf("charge_bonus must be within [0,1], got %v", b.ChargeBonus)
	}
	return nil
}
