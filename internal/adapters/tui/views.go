package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.snap.Draft != nil {
		return m.viewEditing()
	}
	return m.viewTimer()
}

func (m Model) viewTimer() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorPaused))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorError))

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s Tomat", m.theme.IconApp)))

	active := m.snap.ActivePreset()
	state := "Paused"
	if m.snap.Running {
		state = "Running"
	}
	sections = append(sections, statusStyle.Render(fmt.Sprintf("%s (%s)", active.Name, state)))

	sections = append(sections, "")
	sections = append(sections, renderClockFace(formatClock(m.snap.Remaining), m.timerColor(), m.width))
	sections = append(sections, "")
	sections = append(sections, m.progress.ViewAs(m.elapsedFraction()))

	sections = append(sections, "")
	sections = append(sections, m.viewPresetList()...)

	sections = append(sections, "")
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorActive))
	sections = append(sections, doneStyle.Render(fmt.Sprintf("%s Completed: %d", m.theme.IconDone, m.snap.Completed)))

	if err := m.ctrl.LastError(); err != nil {
		sections = append(sections, errStyle.Render(err.Error()))
	}

	sections = append(sections, "")
	if m.filtering {
		sections = append(sections, helpStyle.Render("/ ")+m.filter.View())
		sections = append(sections, helpStyle.Render("enter select · esc clear"))
	} else {
		launch := "[space] Launch"
		if m.snap.Running {
			launch = "[space] Abort"
		}
		notify := "on"
		if !m.ctrl.NotificationsEnabled() {
			notify = "off"
		}
		sections = append(sections, helpStyle.Render(fmt.Sprintf(
			"%s  [r]eset  [a]dd  [e]dit  [/] filter  [n]otify %s  [q]uit", launch, notify)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewPresetList renders the preset rows with cursor and active
// markers.
func (m Model) viewPresetList() []string {
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorActive)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var rows []string
	for i, p := range m.visiblePresets() {
		marker := "  "
		if p.ID == m.snap.ActiveID {
			marker = "● "
		}
		row := fmt.Sprintf("%s%-14s %s", marker, p.Name, formatClock(p.Duration))
		if i == m.cursor {
			rows = append(rows, activeStyle.Render("▸ "+row))
		} else {
			rows = append(rows, dimStyle.Render("  "+row))
		}
	}
	return rows
}

func (m Model) viewEditing() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorPaused))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s Edit Preset", m.theme.IconApp)))
	sections = append(sections, labelStyle.Render("Name")+"     "+m.nameInput.View())
	sections = append(sections, labelStyle.Render("Minutes")+"  "+m.minutesInput.View())
	sections = append(sections, "")
	sections = append(sections, helpStyle.Render("tab switch · enter save · esc cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// timerColor picks the clock color for the run state.
func (m Model) timerColor() lipgloss.Color {
	if m.snap.Running {
		return lipgloss.Color(m.theme.ColorActive)
	}
	return lipgloss.Color(m.theme.ColorPaused)
}

// elapsedFraction maps the countdown onto the progress bar.
func (m Model) elapsedFraction() float64 {
	total := m.snap.ActivePreset().Duration
	if total <= 0 {
		return 1
	}
	fraction := 1 - float64(m.snap.Remaining)/float64(total)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}
