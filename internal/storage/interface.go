package storage

import (
	"errors"

	"github.com/manasgurde21/DailyGrow/internal/models"
)

// ErrNotFound is returned when a record does not exist in the store.
var ErrNotFound = errors.New("record not found")

// Provider is a keyed durable store for the three entity collections.
// Add and Update share upsert semantics on a given id; the last put wins.
// Implementations are safe for a single logical caller only; running
// multiple processes against the same storage path is not supported.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// User profile (singleton)
	GetUser() (models.UserProfile, error)
	SaveUser(models.UserProfile) error

	// Utils
	GetConfigPath() string
}
