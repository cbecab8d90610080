package models

import "github.com/manasgurde21/DailyGrow/internal/constants"

// Habit represents a recurring practice tracked by daily completion
// and a running streak counter.
type Habit struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Type           constants.HabitType `json:"type"`
	ReminderTime   string              `json:"reminder_time"` // HH:MM format
	Color          string              `json:"color"`
	Streak         int                 `json:"streak"`
	CompletedDates []string            `json:"completed_dates"` // YYYY-MM-DD format, unique
}

// HabitEdit enumerates exactly the fields the habit edit form may change.
// Streak and completed dates are never part of an edit.
type HabitEdit struct {
	Name         string
	ReminderTime string
	Color        string
}

// CompletedOn reports whether the habit was completed on the given day.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// ApplyEdit returns a copy of the habit with only the edit-form fields
// replaced.
func (h Habit) ApplyEdit(e HabitEdit) Habit {
	h.Name = e.Name
	h.ReminderTime = e.ReminderTime
	h.Color = e.Color
	return h
}
