package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// clockGlyphs maps each digit and the colon to a 5-line block
// representation. Digits are 4 cells wide, the colon 1.
var clockGlyphs = map[rune][5]string{
	'0': {
		"████",
		"█  █",
		"█  █",
		"█  █",
		"████",
	},
	'1': {
		" █ ",
		"██ ",
		" █ ",
		" █ ",
		"███",
	},
	'2': {
		"████",
		"   █",
		"████",
		"█   ",
		"████",
	},
	'3': {
		"████",
		"   █",
		"████",
		"   █",
		"████",
	},
	'4': {
		"█  █",
		"█  █",
		"████",
		"   █",
		"   █",
	},
	'5': {
		"████",
		"█   ",
		"████",
		"   █",
		"████",
	},
	'6': {
		"████",
		"█   ",
		"████",
		"█  █",
		"████",
	},
	'7': {
		"████",
		"   █",
		"  █ ",
		" █  ",
		" █  ",
	},
	'8': {
		"████",
		"█  █",
		"████",
		"█  █",
		"████",
	},
	'9': {
		"████",
		"█  █",
		"████",
		"   █",
		"████",
	},
	':': {
		" ",
		"█",
		" ",
		"█",
		" ",
	},
}

// renderClockFace turns a clock string like "25:00" into a multi-line
// block rendering. Narrow terminals get a plain styled line instead.
func renderClockFace(clock string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < 40 {
		return style.Render(clock)
	}

	var lines [5]string
	for _, ch := range clock {
		glyph, ok := clockGlyphs[ch]
		if !ok {
			continue
		}
		for i := range lines {
			if lines[i] != "" {
				lines[i] += " "
			}
			lines[i] += glyph[i]
		}
	}

	styled := make([]string, len(lines))
	for i, line := range lines {
		styled[i] = style.Render(line)
	}
	return strings.Join(styled, "\n")
}
