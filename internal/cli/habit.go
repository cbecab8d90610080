package cli

import (
	"fmt"

	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/models"
	"github.com/manasgurde21/DailyGrow/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit's name, reminder, or color."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for today."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Time  string `short:"t" help:"Reminder time (HH:MM)." default:"09:00"`
	Color string `short:"c" help:"Display color tag." default:"blue"`
	Type  string `help:"Habit cadence (Daily|Weekly)." default:"Daily"`
}

func (c *HabitAddCmd) Validate() error {
	if err := validation.ValidateName(c.Name); err != nil {
		return err
	}
	if err := validation.ValidateTime(c.Time); err != nil {
		return err
	}
	if err := validation.ValidateColor(c.Color); err != nil {
		return err
	}
	return validation.ValidateHabitType(c.Type)
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	habit, err := tracker.CreateHabit(c.Name, c.Time, c.Color, constants.HabitType(c.Type))
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	habits := tracker.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := Today()
	for _, habit := range habits {
		mark := " "
		if habit.CompletedOn(today) {
			mark = "x"
		}
		fmt.Printf("[%s] %s  (streak %d, %s at %s)  %s\n",
			mark, habit.Name, habit.Streak, habit.Type, habit.ReminderTime, habit.ID)
	}

	return nil
}

type HabitEditCmd struct {
	ID    string `arg:"" help:"Habit id."`
	Name  string `help:"New name (unchanged if empty)."`
	Time  string `help:"New reminder time (unchanged if empty)."`
	Color string `help:"New color tag (unchanged if empty)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	habit, err := tracker.Habit(c.ID)
	if err != nil {
		return err
	}

	edit := models.HabitEdit{
		Name:         habit.Name,
		ReminderTime: habit.ReminderTime,
		Color:        habit.Color,
	}
	if c.Name != "" {
		edit.Name = c.Name
	}
	if c.Time != "" {
		if err := validation.ValidateTime(c.Time); err != nil {
			return err
		}
		edit.ReminderTime = c.Time
	}
	if c.Color != "" {
		if err := validation.ValidateColor(c.Color); err != nil {
			return err
		}
		edit.Color = c.Color
	}

	updated, err := tracker.EditHabit(c.ID, edit)
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", updated.Name)
	return nil
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	today := Today()
	habit, err := tracker.ToggleHabit(c.ID, today)
	if err != nil {
		return err
	}

	if habit.CompletedOn(today) {
		fmt.Printf("Completed %q for today (streak %d)\n", habit.Name, habit.Streak)
	} else {
		fmt.Printf("Uncompleted %q for today (streak %d)\n", habit.Name, habit.Streak)
	}
	return nil
}

type HabitDeleteCmd struct {
	ID  string `arg:"" help:"Habit id."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	habit, err := tracker.Habit(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes && !Confirm(fmt.Sprintf("Are you sure you want to delete habit %q?", habit.Name)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := tracker.DeleteHabit(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}
