package service

import (
	"path/filepath"
	"testing"

	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/models"
	"github.com/manasgurde21/DailyGrow/internal/storage"
)

func setupService(t *testing.T) *Service {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return New(store)
}

func TestUserLazyCreation(t *testing.T) {
	svc := setupService(t)

	profile, err := svc.User()
	if err != nil {
		t.Fatalf("failed to get user: %v", err)
	}
	if profile.ID != constants.UserProfileID {
		t.Errorf("expected fixed profile id %q, got %q", constants.UserProfileID, profile.ID)
	}
	if profile.TotalHabitsCompleted != 0 || profile.TotalTasksCompleted != 0 {
		t.Error("expected zeroed counters on first access")
	}
	if profile.Achievements == nil {
		t.Error("expected empty achievements slice, got nil")
	}

	// Repeated calls return the same record, not a new one
	profile.Name = "Sam"
	if err := svc.SaveUser(profile); err != nil {
		t.Fatalf("failed to save user: %v", err)
	}
	again, err := svc.User()
	if err != nil {
		t.Fatalf("failed to get user again: %v", err)
	}
	if again.Name != "Sam" {
		t.Errorf("expected persisted name, got %q", again.Name)
	}
}

func TestSaveUserForcesID(t *testing.T) {
	svc := setupService(t)

	if err := svc.SaveUser(models.UserProfile{ID: "rogue-id", Name: "Sam"}); err != nil {
		t.Fatalf("failed to save user: %v", err)
	}

	profile, err := svc.User()
	if err != nil {
		t.Fatalf("failed to get user: %v", err)
	}
	if profile.ID != constants.UserProfileID {
		t.Errorf("expected forced id %q, got %q", constants.UserProfileID, profile.ID)
	}
	if profile.Name != "Sam" {
		t.Errorf("expected name Sam, got %q", profile.Name)
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	svc := setupService(t)

	if err := svc.DeleteHabit("missing"); err != nil {
		t.Errorf("expected nil deleting missing habit, got %v", err)
	}
	if err := svc.DeleteTask("missing"); err != nil {
		t.Errorf("expected nil deleting missing task, got %v", err)
	}
}

func TestSeed(t *testing.T) {
	svc := setupService(t)

	if err := svc.Seed("2026-08-28"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	habits, err := svc.Habits()
	if err != nil {
		t.Fatalf("failed to get habits: %v", err)
	}
	if len(habits) != 3 {
		t.Errorf("expected 3 starter habits, got %d", len(habits))
	}
	for _, h := range habits {
		if h.ID == "" {
			t.Errorf("starter habit %q has no id", h.Name)
		}
		if h.Streak != 0 {
			t.Errorf("starter habit %q has nonzero streak", h.Name)
		}
	}

	tasks, err := svc.Tasks()
	if err != nil {
		t.Fatalf("failed to get tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 starter tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Date != "2026-08-28" {
			t.Errorf("starter task %q dated %q, expected today", task.Title, task.Date)
		}
	}

	// Seeding again must not duplicate anything
	if err := svc.Seed("2026-08-28"); err != nil {
		t.Fatalf("failed to re-seed: %v", err)
	}
	habits, _ = svc.Habits()
	if len(habits) != 3 {
		t.Errorf("expected seed to be a no-op on populated store, got %d habits", len(habits))
	}
}

func TestSeedSkipsPopulatedStore(t *testing.T) {
	svc := setupService(t)

	if err := svc.AddHabit(models.Habit{ID: "h1", Name: "Jog", Type: constants.HabitDaily}); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	if err := svc.Seed("2026-08-28"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	habits, _ := svc.Habits()
	if len(habits) != 1 {
		t.Errorf("expected seed to skip populated store, got %d habits", len(habits))
	}
}
