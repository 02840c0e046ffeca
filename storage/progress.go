package storage

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Fixed keys of the two persisted values
const (
	KeyAchievements = "chromatic_rush_achievements"
	KeyHighScore    = "chromatic_rush_highscore"
)

type highScoreRecord struct {
	HighScore int `yaml:"high_score"`
}

// LoadAchievements reads the unlocked achievement map. Missing or corrupt data
// yields an empty map; corruption is logged, never returned.
func LoadAchievements(store Store, log *zap.Logger) map[string]bool {
	unlocked := make(map[string]bool)
	data, found, err := store.Load(KeyAchievements)
	if err != nil {
		log.Warn("achievements unreadable, starting empty", zap.Error(err))
		return unlocked
	}
	if !found {
		return unlocked
	}

	var decoded map[string]bool
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		log.Warn("achievements corrupt, starting empty", zap.Error(err))
		return unlocked
	}
	for id, ok := range decoded {
		if ok {
			unlocked[id] = true
		}
	}
	return unlocked
}

// SaveAchievements writes the unlocked achievement map
func SaveAchievements(store Store, unlocked map[string]bool) error {
	data, err := yaml.Marshal(unlocked)
	if err != nil {
		return fmt.Errorf("failed to encode achievements: %w", err)
	}
	return store.Save(KeyAchievements, data)
}

// LoadHighScore reads the high score. Missing or corrupt data yields 0.
func LoadHighScore(store Store, log *zap.Logger) int {
	data, found, err := store.Load(KeyHighScore)
	if err != nil {
		log.Warn("high score unreadable, using 0", zap.Error(err))
		return 0
	}
	if !found {
		return 0
	}

	var record highScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		log.Warn("high score corrupt, using 0", zap.Error(err))
		return 0
	}
	if record.HighScore < 0 {
		log.Warn("high score negative, using 0", zap.Int("high_score", record.HighScore))
		return 0
	}
	return record.HighScore
}

// SaveHighScore writes the high score
func SaveHighScore(store Store, score int) error {
	data, err := yaml.Marshal(highScoreRecord{HighScore: score})
	if err != nil {
		return fmt.Errorf("failed to encode high score: %w", err)
	}
	return store.Save(KeyHighScore, data)
}
