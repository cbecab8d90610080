package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/validation"
)

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.Name).
				Validate(validation.ValidateName),
			huh.NewSelect[string]().
				Title("Cadence").
				Options(
					huh.NewOption("Daily", string(constants.HabitDaily)),
					huh.NewOption("Weekly", string(constants.HabitWeekly)),
				).
				Value(&f.Type),
			huh.NewInput().
				Title("Reminder time (HH:MM)").
				Value(&f.ReminderTime).
				Validate(validation.ValidateTime),
			huh.NewSelect[string]().
				Title("Color").
				Options(huh.NewOptions(constants.Colors...)...).
				Value(&f.Color),
		),
	)
}

// newHabitEditForm omits the cadence field; a habit's type is fixed at
// creation.
func newHabitEditForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.Name).
				Validate(validation.ValidateName),
			huh.NewInput().
				Title("Reminder time (HH:MM)").
				Value(&f.ReminderTime).
				Validate(validation.ValidateTime),
			huh.NewSelect[string]().
				Title("Color").
				Options(huh.NewOptions(constants.Colors...)...).
				Value(&f.Color),
		),
	)
}

func newTaskForm(f *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.Title).
				Validate(validation.ValidateName),
			huh.NewInput().
				Title("Description").
				Value(&f.Description),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", string(constants.PriorityLow)),
					huh.NewOption("Medium", string(constants.PriorityMedium)),
					huh.NewOption("High", string(constants.PriorityHigh)),
				).
				Value(&f.Priority),
		),
	)
}

func newProfileForm(f *ProfileFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Display name").
				Value(&f.Name),
			huh.NewInput().
				Title("Avatar URL").
				Value(&f.AvatarURL),
		),
	)
}
