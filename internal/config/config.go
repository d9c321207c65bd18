package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

const (
	defaultStartingScore = 25000
	defaultHistoryLimit  = 5
)

type GameConfig struct {
	// StartingScore is the point total every player is seated with.
	StartingScore int `json:"starting_score"`
	// HistoryLimit bounds how many finished matches are retained.
	HistoryLimit int `json:"history_limit"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// Default returns a config with the stock riichi values.
func Default() *GameConfig {
	return &GameConfig{
		StartingScore: defaultStartingScore,
		HistoryLimit:  defaultHistoryLimit,
	}
}

// LoadGameConfig loads the game configuration from the given path. A missing
// file is not an error; defaults are used instead.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		cfg = Default()

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return
			}
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		if c.StartingScore <= 0 {
			c.StartingScore = defaultStartingScore
		}
		if c.HistoryLimit <= 0 {
			c.HistoryLimit = defaultHistoryLimit
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return Default()
	}
	return cfg
}
