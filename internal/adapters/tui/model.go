// Package tui provides the terminal user interface for Tomat using
// the Bubbletea framework. The model renders controller snapshots and
// forwards key presses; it owns no timer state of its own.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/rvelden/tomat/internal/config"
	"github.com/rvelden/tomat/internal/domain"
	"github.com/rvelden/tomat/internal/services"
)

// idleTitle is the terminal title whenever no countdown is running.
const idleTitle = "Tomat"

// tickMsg is sent on every render tick.
type tickMsg time.Time

// editField indexes the focused input in the edit view.
type editField int

const (
	fieldName editField = iota
	fieldMinutes
)

// Model represents the TUI state.
type Model struct {
	ctrl *services.Controller
	snap domain.Snapshot

	progress progress.Model
	theme    config.ThemeConfig

	width  int
	height int
	cursor int

	filtering bool
	filter    textinput.Model

	nameInput    textinput.Model
	minutesInput textinput.Model
	focused      editField

	lastTitle string
}

// NewModel creates a TUI model bound to the controller.
func NewModel(ctrl *services.Controller, theme *config.ThemeConfig) Model {
	resolved := config.DefaultThemeConfig()
	if theme != nil {
		resolved = *theme
	}

	filter := textinput.New()
	filter.Placeholder = "filter presets"
	filter.CharLimit = 40

	name := textinput.New()
	name.CharLimit = 40
	minutes := textinput.New()
	minutes.CharLimit = 4

	return Model{
		ctrl: ctrl,
		snap: ctrl.Snapshot(),
		progress: progress.New(
			progress.WithGradient(resolved.TimerGradientStart, resolved.TimerGradientEnd),
		),
		theme:        resolved,
		filter:       filter,
		nameInput:    name,
		minutesInput: minutes,
	}
}

// Init starts the render tick.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.snap = m.ctrl.Snapshot()
		m.clampCursor()
		cmds := []tea.Cmd{tickCmd()}
		if cmd := m.titleCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.snap.Draft != nil {
			return m.updateEditing(msg)
		}
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.updateTimer(msg)
	}

	newProgress, cmd := m.progress.Update(msg)
	if p, ok := newProgress.(progress.Model); ok {
		m.progress = p
	}
	return m, cmd
}

// updateTimer handles keys in the normal timer view.
func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.ctrl.Pause()
		return m, tea.Sequence(tea.SetWindowTitle(idleTitle), tea.Quit)

	case " ", "s":
		m.ctrl.Toggle()
		m.snap = m.ctrl.Snapshot()
		return m, m.titleCmd()

	case "r":
		m.ctrl.Reset()
		m.snap = m.ctrl.Snapshot()
		return m, m.titleCmd()

	case "a":
		m.ctrl.AddPreset()
		m.snap = m.ctrl.Snapshot()
		return m, nil

	case "n":
		m.ctrl.ToggleNotifications()
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.visiblePresets())-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if p, ok := m.presetAtCursor(); ok {
			m.ctrl.SelectPreset(p.ID)
			m.snap = m.ctrl.Snapshot()
		}
		return m, m.titleCmd()

	case "e":
		if p, ok := m.presetAtCursor(); ok {
			m.ctrl.BeginEdit(p.ID)
			m.snap = m.ctrl.Snapshot()
			m.seedEditInputs(p)
		}
		return m, textinput.Blink

	case "/":
		m.filtering = true
		m.filter.SetValue("")
		m.filter.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// updateFiltering handles keys while the preset filter is open.
func (m Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.SetValue("")
		m.filter.Blur()
		m.clampCursor()
		return m, nil

	case "enter":
		if p, ok := m.presetAtCursor(); ok {
			m.ctrl.SelectPreset(p.ID)
			m.snap = m.ctrl.Snapshot()
		}
		m.filtering = false
		m.filter.SetValue("")
		m.filter.Blur()
		m.cursor = 0
		return m, m.titleCmd()

	case "up", "ctrl+k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "ctrl+j":
		if m.cursor < len(m.visiblePresets())-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	return m, cmd
}

// updateEditing handles keys while a preset edit is in progress. The
// draft tracks every keystroke; invalid minutes are rejected by the
// controller and the draft keeps its last valid value.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctrl.CancelEdit()
		m.snap = m.ctrl.Snapshot()
		m.blurEditInputs()
		return m, nil

	case "enter":
		m.ctrl.CommitEdit()
		m.snap = m.ctrl.Snapshot()
		m.blurEditInputs()
		return m, m.titleCmd()

	case "tab", "shift+tab":
		if m.focused == fieldName {
			m.focused = fieldMinutes
			m.nameInput.Blur()
			m.minutesInput.Focus()
		} else {
			m.focused = fieldName
			m.minutesInput.Blur()
			m.nameInput.Focus()
		}
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	if m.focused == fieldName {
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.ctrl.UpdateDraftName(m.nameInput.Value())
	} else {
		m.minutesInput, cmd = m.minutesInput.Update(msg)
		m.ctrl.UpdateDraftMinutes(m.minutesInput.Value())
	}
	m.snap = m.ctrl.Snapshot()
	return m, cmd
}

// seedEditInputs loads the preset's current fields into the inputs.
func (m *Model) seedEditInputs(p domain.Preset) {
	m.nameInput.SetValue(p.Name)
	m.minutesInput.SetValue(fmt.Sprintf("%d", int(p.Duration.Minutes())))
	m.focused = fieldName
	m.nameInput.Focus()
	m.minutesInput.Blur()
}

func (m *Model) blurEditInputs() {
	m.nameInput.Blur()
	m.minutesInput.Blur()
}

// visiblePresets returns the presets shown in the list, applying the
// fuzzy filter when one is active.
func (m Model) visiblePresets() []domain.Preset {
	query := m.filter.Value()
	if !m.filtering || query == "" {
		return m.snap.Presets
	}

	names := make([]string, len(m.snap.Presets))
	for i, p := range m.snap.Presets {
		names[i] = p.Name
	}
	matches := fuzzy.Find(query, names)
	visible := make([]domain.Preset, 0, len(matches))
	for _, match := range matches {
		visible = append(visible, m.snap.Presets[match.Index])
	}
	return visible
}

// presetAtCursor returns the preset under the list cursor.
func (m Model) presetAtCursor() (domain.Preset, bool) {
	visible := m.visiblePresets()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return domain.Preset{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := len(m.visiblePresets()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
}

// titleCmd updates the terminal title: "<preset> - MM:SS" while the
// countdown runs, the static placeholder otherwise. Emits nothing
// when the title is unchanged.
func (m *Model) titleCmd() tea.Cmd {
	title := idleTitle
	if m.snap.Running {
		title = fmt.Sprintf("%s - %s", m.snap.ActivePreset().Name, formatClock(m.snap.Remaining))
	}
	if title == m.lastTitle {
		return nil
	}
	m.lastTitle = title
	return tea.SetWindowTitle(title)
}

// tickCmd schedules the next render tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// formatClock formats a countdown as MM:SS. The minutes field widens
// on its own past 99 minutes.
func formatClock(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
