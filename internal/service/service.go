// Package service is the typed CRUD facade over the entity store. It is
// the sole writer of durable state.
package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/logger"
	"github.com/manasgurde21/DailyGrow/internal/models"
	"github.com/manasgurde21/DailyGrow/internal/storage"
)

type Service struct {
	store storage.Provider
}

func New(store storage.Provider) *Service {
	return &Service{store: store}
}

// Habits returns all stored habits. A fresh store returns an empty slice.
func (s *Service) Habits() ([]models.Habit, error) {
	return s.store.GetAllHabits()
}

// AddHabit and UpdateHabit share upsert semantics: updating a habit that
// does not exist creates it.
func (s *Service) AddHabit(habit models.Habit) error {
	return s.store.AddHabit(habit)
}

func (s *Service) UpdateHabit(habit models.Habit) error {
	return s.store.UpdateHabit(habit)
}

// DeleteHabit removes a habit by id. Deleting a nonexistent id is a no-op.
func (s *Service) DeleteHabit(id string) error {
	err := s.store.DeleteHabit(id)
	if errors.Is(err, storage.ErrNotFound) {
		logger.Debug("Delete of missing habit ignored", "id", id)
		return nil
	}
	return err
}

// Tasks returns all stored tasks.
func (s *Service) Tasks() ([]models.Task, error) {
	return s.store.GetAllTasks()
}

func (s *Service) AddTask(task models.Task) error {
	return s.store.AddTask(task)
}

func (s *Service) UpdateTask(task models.Task) error {
	return s.store.UpdateTask(task)
}

// DeleteTask removes a task by id. Deleting a nonexistent id is a no-op.
func (s *Service) DeleteTask(id string) error {
	err := s.store.DeleteTask(id)
	if errors.Is(err, storage.ErrNotFound) {
		logger.Debug("Delete of missing task ignored", "id", id)
		return nil
	}
	return err
}

// User returns the singleton profile. If none exists yet, a zeroed default
// is created and persisted before returning, so repeated calls return the
// same record.
func (s *Service) User() (models.UserProfile, error) {
	profile, err := s.store.GetUser()
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.UserProfile{}, err
	}

	profile = models.UserProfile{
		ID:           constants.UserProfileID,
		Achievements: []models.Achievement{},
	}
	if err := s.store.SaveUser(profile); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// SaveUser replaces the singleton profile in full. Callers must
// read-modify-write; there is no partial-field update.
func (s *Service) SaveUser(profile models.UserProfile) error {
	profile.ID = constants.UserProfileID
	return s.store.SaveUser(profile)
}

// Seed populates a fresh store with starter habits and tasks dated today.
// Existing data is left untouched.
func (s *Service) Seed(today string) error {
	habits, err := s.Habits()
	if err != nil {
		return err
	}
	tasks, err := s.Tasks()
	if err != nil {
		return err
	}
	if len(habits) > 0 || len(tasks) > 0 {
		return nil
	}

	starterHabits := []models.Habit{
		{Name: "Drink Water (2L)", Type: constants.HabitDaily, ReminderTime: "09:00", Color: "blue"},
		{Name: "Read 10 Pages", Type: constants.HabitDaily, ReminderTime: "20:00", Color: "amber"},
		{Name: "Morning Jog", Type: constants.HabitDaily, ReminderTime: "06:30", Color: "emerald"},
	}
	for _, h := range starterHabits {
		h.ID = uuid.New().String()
		h.CompletedDates = []string{}
		if err := s.AddHabit(h); err != nil {
			return err
		}
	}

	starterTasks := []models.Task{
		{Title: "Buy Groceries", Description: "Milk, Eggs, Bread, Vegetables", Priority: constants.PriorityMedium},
		{Title: "Submit Project Report", Description: "Finalize the Q3 financial summary", Priority: constants.PriorityHigh},
	}
	for _, t := range starterTasks {
		t.ID = uuid.New().String()
		t.Date = today
		if err := s.AddTask(t); err != nil {
			return err
		}
	}

	logger.Info("Seeded starter data", "habits", len(starterHabits), "tasks", len(starterTasks))
	return nil
}
