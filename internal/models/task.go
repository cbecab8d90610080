package models

import "github.com/manasgurde21/DailyGrow/internal/constants"

// Task represents a one-off, dated to-do item.
type Task struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Date        string             `json:"date"` // YYYY-MM-DD format
	Priority    constants.Priority `json:"priority"`
	Completed   bool               `json:"completed"`
}

// TaskEdit enumerates exactly the fields the task edit form may change.
// The date and completion flag are never part of an edit.
type TaskEdit struct {
	Title       string
	Description string
	Priority    constants.Priority
}

// ApplyEdit returns a copy of the task with only the edit-form fields
// replaced.
func (t Task) ApplyEdit(e TaskEdit) Task {
	t.Title = e.Title
	t.Description = e.Description
	t.Priority = e.Priority
	return t
}
