package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/manasgurde21/DailyGrow/internal/models"
	"github.com/manasgurde21/DailyGrow/internal/storage"
)

func (s *Store) GetUser() (models.UserProfile, error) {
	row := s.db.QueryRow(`
		SELECT id, name, avatar_url, total_habits_completed, total_tasks_completed,
		       best_streak, achievements
		FROM user LIMIT 1`)

	var p models.UserProfile
	var achievementsJSON string

	err := row.Scan(&p.ID, &p.Name, &p.AvatarURL, &p.TotalHabitsCompleted,
		&p.TotalTasksCompleted, &p.BestStreak, &achievementsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserProfile{}, storage.ErrNotFound
		}
		return models.UserProfile{}, err
	}

	if achievementsJSON != "" {
		if err := json.Unmarshal([]byte(achievementsJSON), &p.Achievements); err != nil {
			return models.UserProfile{}, fmt.Errorf("failed to parse achievements: %w", err)
		}
	}
	if p.Achievements == nil {
		p.Achievements = []models.Achievement{}
	}

	return p, nil
}

func (s *Store) SaveUser(profile models.UserProfile) error {
	achievementsJSON, err := json.Marshal(profile.Achievements)
	if err != nil {
		return fmt.Errorf("failed to marshal achievements: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO user (id, name, avatar_url, total_habits_completed,
			total_tasks_completed, best_streak, achievements)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			avatar_url = excluded.avatar_url,
			total_habits_completed = excluded.total_habits_completed,
			total_tasks_completed = excluded.total_tasks_completed,
			best_streak = excluded.best_streak,
			achievements = excluded.achievements`,
		profile.ID, profile.Name, profile.AvatarURL, profile.TotalHabitsCompleted,
		profile.TotalTasksCompleted, profile.BestStreak, string(achievementsJSON))

	return err
}
