// Package state keeps an in-memory mirror of each durable collection and
// applies optimistic-update-then-persist for every mutation: the mirror is
// changed synchronously before the durable write is issued, so readers in
// the same process always see the new value even while the write is in
// flight. On a durable-write failure the optimistic value stays visible
// until Reload re-reads durable state as ground truth.
//
// A Tracker assumes a single logical actor; it is not safe for concurrent
// use by multiple goroutines.
package state

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/logger"
	"github.com/manasgurde21/DailyGrow/internal/models"
	"github.com/manasgurde21/DailyGrow/internal/service"
	"github.com/manasgurde21/DailyGrow/internal/storage"
)

// Achievement ids unlocked by the tracker.
const (
	achievementFirstStep = "first-step"
	achievementOnFire    = "on-fire"
)

type Tracker struct {
	svc     *service.Service
	habits  []models.Habit
	tasks   []models.Task
	profile models.UserProfile
}

// Load builds a tracker mirroring the current durable state.
func Load(svc *service.Service) (*Tracker, error) {
	t := &Tracker{svc: svc}
	if err := t.Reload(); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload discards the mirrors and re-reads durable state as ground truth.
func (t *Tracker) Reload() error {
	habits, err := t.svc.Habits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	tasks, err := t.svc.Tasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	profile, err := t.svc.User()
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	t.habits = habits
	t.tasks = tasks
	t.profile = profile
	return nil
}

// Habits returns the in-memory habit mirror.
func (t *Tracker) Habits() []models.Habit {
	out := make([]models.Habit, len(t.habits))
	copy(out, t.habits)
	return out
}

// Tasks returns the in-memory task mirror.
func (t *Tracker) Tasks() []models.Task {
	out := make([]models.Task, len(t.tasks))
	copy(out, t.tasks)
	return out
}

// Profile returns the in-memory profile mirror.
func (t *Tracker) Profile() models.UserProfile {
	return t.profile
}

// Habit returns the mirrored habit with the given id.
func (t *Tracker) Habit(id string) (models.Habit, error) {
	for _, h := range t.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %s: %w", id, storage.ErrNotFound)
}

// Task returns the mirrored task with the given id.
func (t *Tracker) Task(id string) (models.Task, error) {
	for _, task := range t.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return models.Task{}, fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
}

// CreateHabit assigns a fresh id, mirrors the habit, then persists it.
func (t *Tracker) CreateHabit(name, reminderTime, color string, habitType constants.HabitType) (models.Habit, error) {
	habit := models.Habit{
		ID:             uuid.New().String(),
		Name:           name,
		Type:           habitType,
		ReminderTime:   reminderTime,
		Color:          color,
		Streak:         0,
		CompletedDates: []string{},
	}

	t.habits = append(t.habits, habit)
	if err := t.svc.AddHabit(habit); err != nil {
		return habit, err
	}
	return habit, nil
}

// EditHabit replaces only the edit-form fields; streak and completed dates
// are preserved.
func (t *Tracker) EditHabit(id string, edit models.HabitEdit) (models.Habit, error) {
	idx, err := t.habitIndex(id)
	if err != nil {
		return models.Habit{}, err
	}

	updated := t.habits[idx].ApplyEdit(edit)
	t.habits[idx] = updated
	if err := t.svc.UpdateHabit(updated); err != nil {
		return updated, err
	}
	return updated, nil
}

// ToggleHabit flips the habit's completion for the given day. Completing
// adds the day and increments the streak; un-completing removes the day
// and decrements the streak, floored at zero. The streak is a toggle
// counter, not derived from date contiguity.
//
// On the completion transition only, the profile counter is bumped and
// persisted as a second, independent write ordered after the habit write.
// The un-complete path deliberately leaves the counter untouched.
func (t *Tracker) ToggleHabit(id, today string) (models.Habit, error) {
	idx, err := t.habitIndex(id)
	if err != nil {
		return models.Habit{}, err
	}

	habit := t.habits[idx]
	wasCompleted := habit.CompletedOn(today)

	if wasCompleted {
		dates := make([]string, 0, len(habit.CompletedDates))
		for _, d := range habit.CompletedDates {
			if d != today {
				dates = append(dates, d)
			}
		}
		habit.CompletedDates = dates
		if habit.Streak > 0 {
			habit.Streak--
		}
	} else {
		habit.CompletedDates = append(habit.CompletedDates, today)
		habit.Streak++
	}

	t.habits[idx] = habit
	if err := t.svc.UpdateHabit(habit); err != nil {
		return habit, err
	}

	if !wasCompleted {
		profile := t.profile
		profile.TotalHabitsCompleted++
		if habit.Streak > profile.BestStreak {
			profile.BestStreak = habit.Streak
		}
		profile = unlockAchievements(profile, habit.Streak, today)

		t.profile = profile
		if err := t.svc.SaveUser(profile); err != nil {
			return habit, err
		}
	}

	return habit, nil
}

// DeleteHabit removes the habit from the mirror and the store. The caller
// is responsible for confirming the delete with the user first.
func (t *Tracker) DeleteHabit(id string) error {
	idx, err := t.habitIndex(id)
	if err != nil {
		return err
	}

	t.habits = append(t.habits[:idx], t.habits[idx+1:]...)
	return t.svc.DeleteHabit(id)
}

// CreateTask assigns a fresh id, mirrors the task, then persists it.
func (t *Tracker) CreateTask(title, description, date string, priority constants.Priority) (models.Task, error) {
	task := models.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Date:        date,
		Priority:    priority,
		Completed:   false,
	}

	t.tasks = append(t.tasks, task)
	if err := t.svc.AddTask(task); err != nil {
		return task, err
	}
	return task, nil
}

// EditTask replaces only the edit-form fields; the date and completion
// flag are preserved.
func (t *Tracker) EditTask(id string, edit models.TaskEdit) (models.Task, error) {
	idx, err := t.taskIndex(id)
	if err != nil {
		return models.Task{}, err
	}

	updated := t.tasks[idx].ApplyEdit(edit)
	t.tasks[idx] = updated
	if err := t.svc.UpdateTask(updated); err != nil {
		return updated, err
	}
	return updated, nil
}

// ToggleTask flips the task's completion flag; no other field changes.
// The profile counter is bumped on the completion transition only.
func (t *Tracker) ToggleTask(id, today string) (models.Task, error) {
	idx, err := t.taskIndex(id)
	if err != nil {
		return models.Task{}, err
	}

	task := t.tasks[idx]
	task.Completed = !task.Completed

	t.tasks[idx] = task
	if err := t.svc.UpdateTask(task); err != nil {
		return task, err
	}

	if task.Completed {
		profile := t.profile
		profile.TotalTasksCompleted++

		t.profile = profile
		if err := t.svc.SaveUser(profile); err != nil {
			return task, err
		}
	}

	return task, nil
}

// DeleteTask removes the task from the mirror and the store. The caller
// is responsible for confirming the delete with the user first.
func (t *Tracker) DeleteTask(id string) error {
	idx, err := t.taskIndex(id)
	if err != nil {
		return err
	}

	t.tasks = append(t.tasks[:idx], t.tasks[idx+1:]...)
	return t.svc.DeleteTask(id)
}

// SaveProfile mirrors the profile then persists it in full.
func (t *Tracker) SaveProfile(profile models.UserProfile) error {
	profile.ID = constants.UserProfileID
	t.profile = profile
	return t.svc.SaveUser(profile)
}

func (t *Tracker) habitIndex(id string) (int, error) {
	for i, h := range t.habits {
		if h.ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("habit %s: %w", id, storage.ErrNotFound)
}

func (t *Tracker) taskIndex(id string) (int, error) {
	for i, task := range t.tasks {
		if task.ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
}

// unlockAchievements appends any newly earned achievements. The list is
// append-only; already unlocked achievements are never touched.
func unlockAchievements(profile models.UserProfile, streak int, today string) models.UserProfile {
	if !profile.HasAchievement(achievementFirstStep) {
		profile.Achievements = append(profile.Achievements, models.Achievement{
			ID:           achievementFirstStep,
			Title:        "First Step",
			Icon:         "🦶",
			Description:  "Completed your first habit",
			UnlockedDate: today,
		})
		logger.Info("Achievement unlocked", "id", achievementFirstStep)
	}
	if streak >= constants.OnFireStreak && !profile.HasAchievement(achievementOnFire) {
		profile.Achievements = append(profile.Achievements, models.Achievement{
			ID:           achievementOnFire,
			Title:        "On Fire",
			Icon:         "🔥",
			Description:  fmt.Sprintf("Reached a %d-day streak", constants.OnFireStreak),
			UnlockedDate: today,
		})
		logger.Info("Achievement unlocked", "id", achievementOnFire)
	}
	return profile
}
