// Package tui is the terminal front end: an input area, a direction
// selector and a read-only result pane.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/chuvtranslit/internal/transliteration"
)

const (
	msgAddText         = "Add text"
	msgSelectDirection = "Select a translation direction"

	noSelection  = -1
	defaultWidth = 72
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

type model struct {
	input      textarea.Model
	directions []transliteration.Direction
	selected   int
	output     string
	// diagnostic is set when output holds a message instead of a result.
	diagnostic bool
	width      int
}

func New() model {
	ta := textarea.New()
	ta.Placeholder = msgAddText
	ta.ShowLineNumbers = false
	ta.SetWidth(defaultWidth)
	ta.SetHeight(5)
	ta.Focus()

	return model{
		input:      ta,
		directions: transliteration.Directions(),
		selected:   noSelection,
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(20, min(msg.Width-4, 100))
		m.input.SetWidth(m.width)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.selected = (m.selected + 1) % len(m.directions)
			return m, nil
		case tea.KeyShiftTab:
			if m.selected <= 0 {
				m.selected = len(m.directions) - 1
			} else {
				m.selected--
			}
			return m, nil
		case tea.KeyCtrlT:
			return m.translate(), nil
		case tea.KeyCtrlL:
			m.input.Reset()
			m.output = ""
			m.diagnostic = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// direction is the selected direction label, or "" when none is selected.
func (m model) direction() string {
	if m.selected == noSelection {
		return ""
	}
	return m.directions[m.selected].String()
}

func (m model) translate() model {
	out, err := transliteration.Translate(m.input.Value(), m.direction())
	switch {
	case err == nil:
		m.output, m.diagnostic = out, false
	case errors.Is(err, transliteration.ErrNoInput):
		m.output, m.diagnostic = msgAddText, true
	default:
		m.output, m.diagnostic = msgSelectDirection, true
	}
	return m
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Chuvash Transliteration"))
	s.WriteString("\n")

	s.WriteString(labelStyle.Render("Input Text"))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")

	s.WriteString(labelStyle.Render("Direction"))
	s.WriteString("\n")
	for i, d := range m.directions {
		if i == m.selected {
			s.WriteString(activeStyle.Render("● " + d.String()))
		} else {
			s.WriteString(inactiveStyle.Render("○ " + d.String()))
		}
		s.WriteString("\n")
	}
	s.WriteString("\n")

	s.WriteString(labelStyle.Render("Result"))
	s.WriteString("\n")
	output := m.output
	if m.diagnostic {
		output = errorStyle.Render(output)
	}
	s.WriteString(boxStyle.Width(m.width).Render(output))
	s.WriteString("\n")

	s.WriteString(dimStyle.Render("tab/shift+tab: direction • ctrl+t: translate • ctrl+l: clear • esc: quit"))
	s.WriteString("\n")
	return s.String()
}

// Run starts the terminal UI and blocks until the user quits.
func Run() error {
	_, err := tea.NewProgram(New(), tea.WithAltScreen()).Run()
	return err
}
