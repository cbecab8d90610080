package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAddHabit, StateEditHabit, StateAddTask, StateEditTask, StateEditProfile:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		switch m.tab {
		case TabHabits:
			content = m.viewHabits()
		case TabTasks:
			content = m.viewTasks()
		case TabStats:
			content = m.viewStats()
		case TabProfile:
			content = m.viewProfile()
		}
		content = docStyle.Render(content)
	}

	sections := []string{m.viewTabs(), content}
	if m.errMsg != "" {
		sections = append(sections, errStyle.Render("Error: "+m.errMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Tasks", "Stats", "Profile"} {
		if m.tab == Tab(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHabits() string {
	habits := m.tracker.Habits()
	if len(habits) == 0 {
		return mutedStyle.Render("No habits yet. Press 'a' to add one.")
	}

	day := today()
	var b strings.Builder
	for i, h := range habits {
		mark := "[ ]"
		if h.CompletedOn(day) {
			mark = doneStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s  %s streak: %d  (%s, %s)",
			mark, h.Name, streakFlame(h.Streak), h.Streak, h.Type, h.ReminderTime)
		if i == m.habitCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func streakFlame(streak int) string {
	if streak >= 7 {
		return "🔥"
	}
	return ""
}

func (m Model) viewTasks() string {
	tasks := m.tracker.Tasks()
	if len(tasks) == 0 {
		return mutedStyle.Render("No tasks yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, t := range tasks {
		mark := "[ ]"
		title := t.Title
		if t.Completed {
			mark = doneStyle.Render("[x]")
			title = mutedStyle.Render(title)
		}
		line := fmt.Sprintf("%s %s  (%s, %s)", mark, title, t.Priority, t.Date)
		if i == m.taskCursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewStats() string {
	habits := m.tracker.Habits()
	day := today()
	completed := 0
	for _, h := range habits {
		if h.CompletedOn(day) {
			completed++
		}
	}

	tasks := m.tracker.Tasks()
	tasksDone := 0
	for _, t := range tasks {
		if t.Completed {
			tasksDone++
		}
	}

	profile := m.tracker.Profile()

	var b strings.Builder
	fmt.Fprintf(&b, "Habits completed today: %d/%d\n", completed, len(habits))
	fmt.Fprintf(&b, "Tasks completed:        %d/%d\n", tasksDone, len(tasks))
	fmt.Fprintf(&b, "Best streak:            %d\n\n", profile.BestStreak)
	b.WriteString(insightStyle.Render(m.motivation) + "\n")
	if m.insightText != "" {
		b.WriteString(insightStyle.Render(m.insightText) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("Press 'r' to refresh the insight."))
	return b.String()
}

func (m Model) viewProfile() string {
	profile := m.tracker.Profile()
	name := profile.Name
	if name == "" {
		name = "User"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name:             %s\n", name)
	fmt.Fprintf(&b, "Habits completed: %d\n", profile.TotalHabitsCompleted)
	fmt.Fprintf(&b, "Tasks completed:  %d\n", profile.TotalTasksCompleted)
	fmt.Fprintf(&b, "Best streak:      %d\n\n", profile.BestStreak)

	if len(profile.Achievements) == 0 {
		b.WriteString(mutedStyle.Render("No achievements yet."))
	} else {
		b.WriteString("Achievements:\n")
		for _, a := range profile.Achievements {
			fmt.Fprintf(&b, "  %s %s: %s (%s)\n", a.Icon, a.Title, a.Description, a.UnlockedDate)
		}
	}
	b.WriteString("\n" + mutedStyle.Render("Press 'e' to edit the profile."))
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Are you sure you want to delete %q?", m.deleteLabel)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
