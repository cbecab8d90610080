package state

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/models"
	"github.com/manasgurde21/DailyGrow/internal/service"
	"github.com/manasgurde21/DailyGrow/internal/storage"
)

func setupTracker(t *testing.T) *Tracker {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	tracker, err := Load(service.New(store))
	if err != nil {
		t.Fatalf("failed to load tracker: %v", err)
	}
	return tracker
}

const day = "2026-08-28"

func TestCreateHabit(t *testing.T) {
	tracker := setupTracker(t)

	habit, err := tracker.CreateHabit("Drink Water", "09:00", "blue", constants.HabitDaily)
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	if habit.ID == "" {
		t.Error("expected generated id")
	}
	if habit.Streak != 0 {
		t.Errorf("expected zero streak, got %d", habit.Streak)
	}
	if habit.CompletedDates == nil || len(habit.CompletedDates) != 0 {
		t.Errorf("expected empty completed dates, got %v", habit.CompletedDates)
	}

	// Visible in the mirror immediately
	if _, err := tracker.Habit(habit.ID); err != nil {
		t.Errorf("created habit not in mirror: %v", err)
	}

	// And durable after a reload
	if err := tracker.Reload(); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if _, err := tracker.Habit(habit.ID); err != nil {
		t.Errorf("created habit not durable: %v", err)
	}
}

func TestToggleHabitOnOff(t *testing.T) {
	tracker := setupTracker(t)

	habit, err := tracker.CreateHabit("Jog", "06:30", "emerald", constants.HabitDaily)
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	toggled, err := tracker.ToggleHabit(habit.ID, day)
	if err != nil {
		t.Fatalf("failed to toggle habit on: %v", err)
	}
	if !toggled.CompletedOn(day) {
		t.Error("expected habit completed after toggle on")
	}
	if toggled.Streak != 1 {
		t.Errorf("expected streak 1, got %d", toggled.Streak)
	}

	toggled, err = tracker.ToggleHabit(habit.ID, day)
	if err != nil {
		t.Fatalf("failed to toggle habit off: %v", err)
	}
	if toggled.CompletedOn(day) {
		t.Error("expected habit not completed after toggle off")
	}
	if toggled.Streak != 0 {
		t.Errorf("expected streak back to 0, got %d", toggled.Streak)
	}
}

func TestToggleStreakFloorsAtZero(t *testing.T) {
	tracker := setupTracker(t)

	habit, err := tracker.CreateHabit("Jog", "06:30", "emerald", constants.HabitDaily)
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	// Toggle on then off leaves streak 0; a second un-complete of another
	// day must not push it negative.
	if _, err := tracker.ToggleHabit(habit.ID, "2026-08-27"); err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if _, err := tracker.ToggleHabit(habit.ID, "2026-08-27"); err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}

	got, err := tracker.Habit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.Streak != 0 {
		t.Errorf("expected streak 0, got %d", got.Streak)
	}
}

func TestToggleCounterAsymmetry(t *testing.T) {
	tracker := setupTracker(t)

	habit, err := tracker.CreateHabit("Jog", "06:30", "emerald", constants.HabitDaily)
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	// Complete then un-complete: the lifetime counter only ever goes up
	if _, err := tracker.ToggleHabit(habit.ID, day); err != nil {
		t.Fatalf("failed to toggle on: %v", err)
	}
	if got := tracker.Profile().TotalHabitsCompleted; got != 1 {
		t.Errorf("expected counter 1 after completion, got %d", got)
	}

	if _, err := tracker.ToggleHabit(habit.ID, day); err != nil {
		t.Fatalf("failed to toggle off: %v", err)
	}
	if got := tracker.Profile().TotalHabitsCompleted; got != 1 {
		t.Errorf("expected counter to stay 1 after un-completion, got %d", got)
	}

	if _, err := tracker.ToggleHabit(habit.ID, day); err != nil {
		t.Fatalf("failed to toggle on again: %v", err)
	}
	if got := tracker.Profile().TotalHabitsCompleted; got != 2 {
		t.Errorf("expected counter 2 after re-completion, got %d", got)
	}
}

func TestBestStreakAndAchievements(t *testing.T) {
	tracker := setupTracker(t)

	habit, err := tracker.CreateHabit("Read", "20:00", "amber", constants.HabitDaily)
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	days := []string{
		"2026-08-20", "2026-08-21", "2026-08-22", "2026-08-23",
		"2026-08-24", "2026-08-25", "2026-08-26",
	}
	for _, d := range days {
		if _, err := tracker.ToggleHabit(habit.ID, d); err != nil {
			t.Fatalf("failed to toggle %s: %v", d, err)
		}
	}

	profile := tracker.Profile()
	if profile.BestStreak != 7 {
		t.Errorf("expected best streak 7, got %d", profile.BestStreak)
	}
	if !profile.HasAchievement("first-step") {
		t.Error("expected first-step achievement after first completion")
	}
	if !profile.HasAchievement("on-fire") {
		t.Error("expected on-fire achievement at a 7-day streak")
	}

	// Un-completing a day lowers the streak but never the best streak or
	// the unlocked achievements
	if _, err := tracker.ToggleHabit(habit.ID, "2026-08-26"); err != nil {
		t.Fatalf("failed to toggle off: %v", err)
	}
	profile = tracker.Profile()
	if profile.BestStreak != 7 {
		t.Errorf("expected best streak to stay 7, got %d", profile.BestStreak)
	}
	if !profile.HasAchievement("on-fire") {
		t.Error("expected on-fire achievement to persist")
	}
}

func TestAchievementsNotDuplicated(t *testing.T) {
	tracker := setupTracker(t)

	habit, err := tracker.CreateHabit("Read", "20:00", "amber", constants.HabitDaily)
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	for _, d := range []string{"2026-08-26", "2026-08-27", "2026-08-28"} {
		if _, err := tracker.ToggleHabit(habit.ID, d); err != nil {
			t.Fatalf("failed to toggle: %v", err)
		}
	}

	count := 0
	for _, a := range tracker.Profile().Achievements {
		if a.ID == "first-step" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one first-step achievement, got %d", count)
	}
}

func TestEditHabitPreservesProgress(t *testing.T) {
	tracker := setupTracker(t)

	habit, err := tracker.CreateHabit("Jog", "06:30", "emerald", constants.HabitDaily)
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	if _, err := tracker.ToggleHabit(habit.ID, day); err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}

	updated, err := tracker.EditHabit(habit.ID, models.HabitEdit{
		Name:         "Evening Jog",
		ReminderTime: "18:00",
		Color:        "teal",
	})
	if err != nil {
		t.Fatalf("failed to edit habit: %v", err)
	}
	if updated.Name != "Evening Jog" || updated.ReminderTime != "18:00" || updated.Color != "teal" {
		t.Errorf("edit fields not applied: %+v", updated)
	}
	if updated.Streak != 1 {
		t.Errorf("expected streak preserved at 1, got %d", updated.Streak)
	}
	if !updated.CompletedOn(day) {
		t.Error("expected completed dates preserved across edit")
	}
	if updated.Type != constants.HabitDaily {
		t.Errorf("expected type preserved, got %s", updated.Type)
	}
}

func TestDeleteHabit(t *testing.T) {
	tracker := setupTracker(t)

	habit, err := tracker.CreateHabit("Jog", "06:30", "emerald", constants.HabitDaily)
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	if err := tracker.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("failed to delete habit: %v", err)
	}
	if _, err := tracker.Habit(habit.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// The id stays gone after a reload; deletes are terminal
	if err := tracker.Reload(); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if _, err := tracker.Habit(habit.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected habit to stay deleted, got %v", err)
	}
}

func TestDeleteUnknownHabit(t *testing.T) {
	tracker := setupTracker(t)

	if err := tracker.DeleteHabit("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestTaskLifecycle(t *testing.T) {
	tracker := setupTracker(t)

	task, err := tracker.CreateTask("Buy Groceries", "Milk, Eggs", day, constants.PriorityMedium)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if task.Completed {
		t.Error("expected new task to be incomplete")
	}

	toggled, err := tracker.ToggleTask(task.ID, day)
	if err != nil {
		t.Fatalf("failed to toggle task: %v", err)
	}
	if !toggled.Completed {
		t.Error("expected task completed after toggle")
	}
	if got := tracker.Profile().TotalTasksCompleted; got != 1 {
		t.Errorf("expected task counter 1, got %d", got)
	}

	// Un-completing leaves the counter alone
	toggled, err = tracker.ToggleTask(task.ID, day)
	if err != nil {
		t.Fatalf("failed to toggle task off: %v", err)
	}
	if toggled.Completed {
		t.Error("expected task incomplete after second toggle")
	}
	if got := tracker.Profile().TotalTasksCompleted; got != 1 {
		t.Errorf("expected task counter to stay 1, got %d", got)
	}

	updated, err := tracker.EditTask(task.ID, models.TaskEdit{
		Title:       "Buy Groceries and Fruit",
		Description: toggled.Description,
		Priority:    constants.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("failed to edit task: %v", err)
	}
	if updated.Title != "Buy Groceries and Fruit" || updated.Priority != constants.PriorityHigh {
		t.Errorf("edit fields not applied: %+v", updated)
	}
	if updated.Date != day {
		t.Errorf("expected date preserved, got %q", updated.Date)
	}

	if err := tracker.DeleteTask(task.ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	if _, err := tracker.Task(task.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSaveProfileForcesID(t *testing.T) {
	tracker := setupTracker(t)

	if err := tracker.SaveProfile(models.UserProfile{ID: "rogue", Name: "Sam"}); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}
	if got := tracker.Profile().ID; got != constants.UserProfileID {
		t.Errorf("expected fixed profile id, got %q", got)
	}
}

// The full first-day flow: create a habit, complete it, verify the streak,
// the lifetime counter, and the first achievement all line up.
func TestFirstDayFlow(t *testing.T) {
	tracker := setupTracker(t)

	habit, err := tracker.CreateHabit("Drink Water (2L)", "09:00", "blue", constants.HabitDaily)
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	completed, err := tracker.ToggleHabit(habit.ID, day)
	if err != nil {
		t.Fatalf("failed to toggle habit: %v", err)
	}
	if completed.Streak != 1 || !completed.CompletedOn(day) {
		t.Errorf("unexpected habit state: %+v", completed)
	}

	profile := tracker.Profile()
	if profile.TotalHabitsCompleted != 1 {
		t.Errorf("expected counter 1, got %d", profile.TotalHabitsCompleted)
	}
	if profile.BestStreak != 1 {
		t.Errorf("expected best streak 1, got %d", profile.BestStreak)
	}
	if !profile.HasAchievement("first-step") {
		t.Error("expected first-step achievement")
	}

	// Everything survives a reload from durable state
	if err := tracker.Reload(); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	got, err := tracker.Habit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get habit after reload: %v", err)
	}
	if got.Streak != 1 {
		t.Errorf("expected durable streak 1, got %d", got.Streak)
	}
	if tracker.Profile().TotalHabitsCompleted != 1 {
		t.Errorf("expected durable counter 1, got %d", tracker.Profile().TotalHabitsCompleted)
	}
}
