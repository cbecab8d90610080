package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/manasgurde21/DailyGrow/internal/models"
	"github.com/manasgurde21/DailyGrow/internal/storage"
)

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, type, reminder_time, color, streak, completed_dates
		FROM habits WHERE id = ?`, id)

	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, fmt.Errorf("habit %s: %w", id, storage.ErrNotFound)
		}
		return models.Habit{}, err
	}

	return habit, nil
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, type, reminder_time, color, streak, completed_dates
		FROM habits ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := make([]models.Habit, 0)
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}

	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	datesJSON, err := json.Marshal(habit.CompletedDates)
	if err != nil {
		return fmt.Errorf("failed to marshal completed dates: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO habits (id, name, type, reminder_time, color, streak, completed_dates)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			reminder_time = excluded.reminder_time,
			color = excluded.color,
			streak = excluded.streak,
			completed_dates = excluded.completed_dates`,
		habit.ID, habit.Name, habit.Type, habit.ReminderTime, habit.Color,
		habit.Streak, string(datesJSON))

	return err
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit %s: %w", id, storage.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var datesJSON string

	err := row.Scan(&h.ID, &h.Name, &h.Type, &h.ReminderTime, &h.Color, &h.Streak, &datesJSON)
	if err != nil {
		return models.Habit{}, err
	}

	if datesJSON != "" {
		if err := json.Unmarshal([]byte(datesJSON), &h.CompletedDates); err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse completed dates for habit %s: %w", h.ID, err)
		}
	}
	if h.CompletedDates == nil {
		h.CompletedDates = []string{}
	}

	return h, nil
}
