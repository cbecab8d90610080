package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/models"
)

type document struct {
	Version int                           `json:"version"`
	Habits  map[string]models.Habit       `json:"habits"`
	Tasks   map[string]models.Task        `json:"tasks"`
	User    map[string]models.UserProfile `json:"user"`
}

// JSONStore persists all collections as a single versioned JSON document.
// Every mutation rewrites the whole file.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Habits:  make(map[string]models.Habit),
		Tasks:   make(map[string]models.Task),
		User:    make(map[string]models.UserProfile),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.doc != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'dailygrow init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.doc.Habits == nil {
		s.doc.Habits = make(map[string]models.Habit)
	}
	if s.doc.Tasks == nil {
		s.doc.Tasks = make(map[string]models.Task)
	}
	if s.doc.User == nil {
		s.doc.User = make(map[string]models.UserProfile)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if s.doc == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	habit, ok := s.doc.Habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}

	return habit, nil
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, 0, len(s.doc.Habits))
	for _, habit := range s.doc.Habits {
		habits = append(habits, habit)
	}

	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Habits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) DeleteHabit(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.doc.Habits[id]; !ok {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}

	delete(s.doc.Habits, id)
	return s.save()
}

func (s *JSONStore) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *JSONStore) GetTask(id string) (models.Task, error) {
	if s.doc == nil {
		return models.Task{}, fmt.Errorf("storage not loaded")
	}

	task, ok := s.doc.Tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}

	return task, nil
}

func (s *JSONStore) GetAllTasks() ([]models.Task, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	tasks := make([]models.Task, 0, len(s.doc.Tasks))
	for _, task := range s.doc.Tasks {
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (s *JSONStore) UpdateTask(task models.Task) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Tasks[task.ID] = task
	return s.save()
}

func (s *JSONStore) DeleteTask(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.doc.Tasks[id]; !ok {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}

	delete(s.doc.Tasks, id)
	return s.save()
}

func (s *JSONStore) GetUser() (models.UserProfile, error) {
	if s.doc == nil {
		return models.UserProfile{}, fmt.Errorf("storage not loaded")
	}

	profile, ok := s.doc.User[constants.UserProfileID]
	if !ok {
		return models.UserProfile{}, ErrNotFound
	}

	return profile, nil
}

func (s *JSONStore) SaveUser(profile models.UserProfile) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.User[profile.ID] = profile
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
