package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/insight"
	"github.com/manasgurde21/DailyGrow/internal/state"
)

type SessionState int

const (
	StateBrowse SessionState = iota
	StateAddHabit
	StateEditHabit
	StateAddTask
	StateEditTask
	StateEditProfile
	StateConfirmDelete
)

type Tab int

const (
	TabHabits Tab = iota
	TabTasks
	TabStats
	TabProfile

	tabCount
)

type HabitFormModel struct {
	Name         string
	Type         string
	ReminderTime string
	Color        string
}

type TaskFormModel struct {
	Title       string
	Description string
	Priority    string
}

type ProfileFormModel struct {
	Name      string
	AvatarURL string
}

type motivationMsg string

type insightMsg string

type Model struct {
	tracker *state.Tracker
	gen     *insight.Generator

	state SessionState
	tab   Tab
	keys  KeyMap
	help  help.Model

	habitCursor int
	taskCursor  int

	form        *huh.Form
	habitForm   *HabitFormModel
	taskForm    *TaskFormModel
	profileForm *ProfileFormModel
	editingID   string

	deleteID    string
	deleteTab   Tab
	deleteLabel string

	motivation  string
	insightText string

	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(tracker *state.Tracker) Model {
	return Model{
		tracker:    tracker,
		gen:        insight.New(insight.ResolveAPIKey()),
		state:      StateBrowse,
		tab:        TabHabits,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		motivation: "Loading...",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchMotivation(), m.fetchInsight())
}

func today() string {
	return time.Now().Format(constants.DateFormat)
}

// fetchMotivation generates the daily motivation off the event loop. The
// generator always returns a usable string, falling back when the API is
// unreachable or no key is configured.
func (m Model) fetchMotivation() tea.Cmd {
	habits := m.tracker.Habits()
	day := today()
	completed := 0
	for _, h := range habits {
		if h.CompletedOn(day) {
			completed++
		}
	}
	total := len(habits)
	gen := m.gen

	return func() tea.Msg {
		return motivationMsg(gen.GenerateDailyMotivation(context.Background(), completed, total))
	}
}

func (m Model) fetchInsight() tea.Cmd {
	habits := m.tracker.Habits()
	summaries := make([]insight.HabitSummary, 0, len(habits))
	for _, h := range habits {
		summaries = append(summaries, insight.HabitSummary{Name: h.Name, Streak: h.Streak})
	}
	gen := m.gen

	return func() tea.Msg {
		return insightMsg(gen.GenerateHabitInsight(context.Background(), summaries))
	}
}
