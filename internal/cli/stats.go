package cli

import (
	"context"
	"fmt"

	"github.com/manasgurde21/DailyGrow/internal/insight"
)

type StatsCmd struct {
	NoInsight bool `help:"Skip the AI-generated insight."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	habits := tracker.Habits()
	today := Today()

	completedToday := 0
	for _, h := range habits {
		if h.CompletedOn(today) {
			completedToday++
		}
	}

	tasksDone := 0
	tasks := tracker.Tasks()
	for _, t := range tasks {
		if t.Completed {
			tasksDone++
		}
	}

	profile := tracker.Profile()

	fmt.Printf("Habits completed today: %d/%d\n", completedToday, len(habits))
	fmt.Printf("Tasks completed:        %d/%d\n", tasksDone, len(tasks))
	fmt.Printf("Lifetime habit count:   %d\n", profile.TotalHabitsCompleted)
	fmt.Printf("Lifetime task count:    %d\n", profile.TotalTasksCompleted)
	fmt.Printf("Best streak:            %d\n", profile.BestStreak)

	if c.NoInsight {
		return nil
	}

	gen := insight.New(insight.ResolveAPIKey())
	if len(habits) > 0 {
		summaries := make([]insight.HabitSummary, 0, len(habits))
		for _, h := range habits {
			summaries = append(summaries, insight.HabitSummary{Name: h.Name, Streak: h.Streak})
		}
		fmt.Printf("\nMotivation: %s\n", gen.GenerateDailyMotivation(context.Background(), completedToday, len(habits)))
		fmt.Printf("Insight:    %s\n", gen.GenerateHabitInsight(context.Background(), summaries))
	} else {
		fmt.Println("\nWelcome! Start by adding your first habit.")
	}

	return nil
}
