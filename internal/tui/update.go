package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case motivationMsg:
		m.motivation = string(msg)
		return m, nil

	case insightMsg:
		m.insightText = string(msg)
		return m, nil
	}

	switch m.state {
	case StateBrowse:
		return m.updateBrowse(msg)
	case StateAddHabit, StateEditHabit, StateAddTask, StateEditTask, StateEditProfile:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Tab):
		m.tab = (m.tab + 1) % tabCount
		m.errMsg = ""

	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.tab = (m.tab - 1 + tabCount) % tabCount
		m.errMsg = ""

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(keyMsg, m.keys.Toggle):
		return m.toggleSelected()

	case key.Matches(keyMsg, m.keys.Add):
		return m.startAdd()

	case key.Matches(keyMsg, m.keys.Edit):
		return m.startEdit()

	case key.Matches(keyMsg, m.keys.Delete):
		return m.startDelete()

	case key.Matches(keyMsg, m.keys.Refresh):
		if m.tab == TabStats {
			m.motivation = "Loading..."
			m.insightText = ""
			return m, tea.Batch(m.fetchMotivation(), m.fetchInsight())
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.tab {
	case TabHabits:
		n := len(m.tracker.Habits())
		if n == 0 {
			return
		}
		m.habitCursor = clamp(m.habitCursor+delta, 0, n-1)
	case TabTasks:
		n := len(m.tracker.Tasks())
		if n == 0 {
			return
		}
		m.taskCursor = clamp(m.taskCursor+delta, 0, n-1)
	}
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabHabits:
		habits := m.tracker.Habits()
		if m.habitCursor >= len(habits) {
			return m, nil
		}
		if _, err := m.tracker.ToggleHabit(habits[m.habitCursor].ID, today()); err != nil {
			m.errMsg = err.Error()
		}
	case TabTasks:
		tasks := m.tracker.Tasks()
		if m.taskCursor >= len(tasks) {
			return m, nil
		}
		if _, err := m.tracker.ToggleTask(tasks[m.taskCursor].ID, today()); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m, nil
}

func (m Model) startAdd() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabHabits:
		m.habitForm = &HabitFormModel{
			Type:         string(constants.HabitDaily),
			ReminderTime: constants.DefaultReminderTime,
			Color:        constants.DefaultColor,
		}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()
	case TabTasks:
		m.taskForm = &TaskFormModel{Priority: string(constants.PriorityMedium)}
		m.form = newTaskForm(m.taskForm)
		m.state = StateAddTask
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabHabits:
		habits := m.tracker.Habits()
		if m.habitCursor >= len(habits) {
			return m, nil
		}
		h := habits[m.habitCursor]
		m.habitForm = &HabitFormModel{
			Name:         h.Name,
			ReminderTime: h.ReminderTime,
			Color:        h.Color,
		}
		m.editingID = h.ID
		m.form = newHabitEditForm(m.habitForm)
		m.state = StateEditHabit
		return m, m.form.Init()
	case TabTasks:
		tasks := m.tracker.Tasks()
		if m.taskCursor >= len(tasks) {
			return m, nil
		}
		t := tasks[m.taskCursor]
		m.taskForm = &TaskFormModel{
			Title:       t.Title,
			Description: t.Description,
			Priority:    string(t.Priority),
		}
		m.editingID = t.ID
		m.form = newTaskForm(m.taskForm)
		m.state = StateEditTask
		return m, m.form.Init()
	case TabProfile:
		profile := m.tracker.Profile()
		m.profileForm = &ProfileFormModel{
			Name:      profile.Name,
			AvatarURL: profile.AvatarURL,
		}
		m.form = newProfileForm(m.profileForm)
		m.state = StateEditProfile
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) startDelete() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabHabits:
		habits := m.tracker.Habits()
		if m.habitCursor >= len(habits) {
			return m, nil
		}
		m.deleteID = habits[m.habitCursor].ID
		m.deleteTab = TabHabits
		m.deleteLabel = habits[m.habitCursor].Name
		m.state = StateConfirmDelete
	case TabTasks:
		tasks := m.tracker.Tasks()
		if m.taskCursor >= len(tasks) {
			return m, nil
		}
		m.deleteID = tasks[m.taskCursor].ID
		m.deleteTab = TabTasks
		m.deleteLabel = tasks[m.taskCursor].Title
		m.state = StateConfirmDelete
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitForm(); err != nil {
			m.errMsg = err.Error()
			// Stay in the form so the user can retry or cancel
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.errMsg = ""
		m.state = StateBrowse
		return m, nil

	case huh.StateAborted:
		m.state = StateBrowse
		return m, nil
	}

	return m, cmd
}

func (m *Model) submitForm() error {
	switch m.state {
	case StateAddHabit:
		_, err := m.tracker.CreateHabit(m.habitForm.Name, m.habitForm.ReminderTime,
			m.habitForm.Color, constants.HabitType(m.habitForm.Type))
		return err

	case StateEditHabit:
		_, err := m.tracker.EditHabit(m.editingID, models.HabitEdit{
			Name:         m.habitForm.Name,
			ReminderTime: m.habitForm.ReminderTime,
			Color:        m.habitForm.Color,
		})
		return err

	case StateAddTask:
		_, err := m.tracker.CreateTask(m.taskForm.Title, m.taskForm.Description,
			today(), constants.Priority(m.taskForm.Priority))
		return err

	case StateEditTask:
		_, err := m.tracker.EditTask(m.editingID, models.TaskEdit{
			Title:       m.taskForm.Title,
			Description: m.taskForm.Description,
			Priority:    constants.Priority(m.taskForm.Priority),
		})
		return err

	case StateEditProfile:
		profile := m.tracker.Profile()
		profile.Name = m.profileForm.Name
		profile.AvatarURL = m.profileForm.AvatarURL
		return m.tracker.SaveProfile(profile)
	}

	return nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		var err error
		if m.deleteTab == TabHabits {
			err = m.tracker.DeleteHabit(m.deleteID)
			if m.habitCursor > 0 {
				m.habitCursor--
			}
		} else {
			err = m.tracker.DeleteTask(m.deleteID)
			if m.taskCursor > 0 {
				m.taskCursor--
			}
		}
		if err != nil {
			m.errMsg = err.Error()
		}
		m.state = StateBrowse
	case "n", "N", "esc", "q":
		m.state = StateBrowse
	}

	return m, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
