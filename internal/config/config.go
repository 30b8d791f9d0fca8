// Package config holds the tunable balance numbers for a game session. The
// defaults reproduce the standard rules; a YAML file or environment variables
// can override individual values for playtesting.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Tier holds the AI probabilities for one difficulty.
type Tier struct {
	DefendChance   float64 `yaml:"defend_chance"`   // chance the AI blocks a blockable attack
	ContinueChance float64 `yaml:"continue_chance"` // chance the AI keeps attacking after a hit
}

// Balance is every tunable the engine consumes.
type Balance struct {
	InitialHandSize     int `yaml:"initial_hand_size"`
	RedrawBonus         int `yaml:"redraw_bonus"`     // hand replenishes to current + this
	MinAttackHand       int `yaml:"min_attack_hand"`  // AI ends its turn below this hand size
	BreachWinThreshold  int `yaml:"breach_win"`       // destroyed enemy assets needed to win
	DefenseWinThreshold int `yaml:"defense_win"`      // successful defenses needed to win
	AIStepDelayMS       int `yaml:"ai_step_delay_ms"` // pacing delay between AI steps

	Easy   Tier `yaml:"easy"`
	Hard   Tier `yaml:"hard"`
	Brutal Tier `yaml:"brutal"`
}

// Default returns the standard rules.
func Default() Balance {
	return Balance{
		InitialHandSize:     5,
		RedrawBonus:         2,
		MinAttackHand:       3,
		BreachWinThreshold:  2,
		DefenseWinThreshold: 6,
		AIStepDelayMS:       900,
		Easy:                Tier{DefendChance: 0.15, ContinueChance: 0.3},
		Hard:                Tier{DefendChance: 0.50, ContinueChance: 0.7},
		Brutal:              Tier{DefendChance: 0.95, ContinueChance: 0.95},
	}
}

// Load reads a Balance from a YAML file, starting from defaults so partial
// files only override what they name.
func Load(path string) (Balance, error) {
	b := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("parse balance YAML: %w", err)
	}
	return b, nil
}

// FromEnv loads a Balance from environment variables, falling back to
// defaults for anything unset.
func FromEnv() Balance {
	b := Default()

	if v := getEnvInt("BREACH_INITIAL_HAND_SIZE"); v > 0 {
		b.InitialHandSize = v
	}
	if v := getEnvInt("BREACH_REDRAW_BONUS"); v > 0 {
		b.RedrawBonus = v
	}
	if v := getEnvInt("BREACH_MIN_ATTACK_HAND"); v > 0 {
		b.MinAttackHand = v
	}
	if v := getEnvInt("BREACH_BREACH_WIN"); v > 0 {
		b.BreachWinThreshold = v
	}
	if v := getEnvInt("BREACH_DEFENSE_WIN"); v > 0 {
		b.DefenseWinThreshold = v
	}
	if v := getEnvInt("BREACH_AI_STEP_DELAY_MS"); v >= 0 {
		b.AIStepDelayMS = v
	}

	return b
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return -1
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return -1
	}
	return n
}
