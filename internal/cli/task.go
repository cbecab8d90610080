package cli

import (
	"fmt"

	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/models"
	"github.com/manasgurde21/DailyGrow/internal/validation"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Edit   TaskEditCmd   `cmd:"" help:"Edit a task's title, description, or priority."`
	Toggle TaskToggleCmd `cmd:"" help:"Toggle a task's completion."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"d" help:"Task description."`
	Date        string `help:"Due date (YYYY-MM-DD, default today)."`
	Priority    string `short:"p" help:"Priority (Low|Medium|High)." default:"Medium"`
}

func (c *TaskAddCmd) Validate() error {
	if err := validation.ValidateName(c.Title); err != nil {
		return err
	}
	if c.Date != "" {
		if err := validation.ValidateDate(c.Date); err != nil {
			return err
		}
	}
	return validation.ValidatePriority(c.Priority)
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = Today()
	}

	task, err := tracker.CreateTask(c.Title, c.Description, date, constants.Priority(c.Priority))
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}

type TaskListCmd struct {
	All bool `help:"Include tasks from other days."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	tasks := tracker.Tasks()
	today := Today()

	shown := 0
	for _, task := range tasks {
		if !c.All && task.Date != today {
			continue
		}
		mark := " "
		if task.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %s  (%s, %s)  %s\n", mark, task.Title, task.Priority, task.Date, task.ID)
		shown++
	}

	if shown == 0 {
		fmt.Println("No tasks found.")
	}
	return nil
}

type TaskEditCmd struct {
	ID          string `arg:"" help:"Task id."`
	Title       string `help:"New title (unchanged if empty)."`
	Description string `help:"New description (unchanged if empty)."`
	Priority    string `help:"New priority (unchanged if empty)."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	task, err := tracker.Task(c.ID)
	if err != nil {
		return err
	}

	edit := models.TaskEdit{
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
	}
	if c.Title != "" {
		edit.Title = c.Title
	}
	if c.Description != "" {
		edit.Description = c.Description
	}
	if c.Priority != "" {
		if err := validation.ValidatePriority(c.Priority); err != nil {
			return err
		}
		edit.Priority = constants.Priority(c.Priority)
	}

	updated, err := tracker.EditTask(c.ID, edit)
	if err != nil {
		return err
	}

	fmt.Printf("Updated task: %s\n", updated.Title)
	return nil
}

type TaskToggleCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	task, err := tracker.ToggleTask(c.ID, Today())
	if err != nil {
		return err
	}

	if task.Completed {
		fmt.Printf("Completed task: %s\n", task.Title)
	} else {
		fmt.Printf("Reopened task: %s\n", task.Title)
	}
	return nil
}

type TaskDeleteCmd struct {
	ID  string `arg:"" help:"Task id."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	task, err := tracker.Task(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes && !Confirm(fmt.Sprintf("Are you sure you want to delete task %q?", task.Title)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := tracker.DeleteTask(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted task: %s\n", task.Title)
	return nil
}
