// Package tui renders the interactive day page.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"harulog/internal/day"
	"harulog/internal/domain"
)

// Run starts the day page over an already loaded service and blocks until
// the user quits.
func Run(svc *day.Service) error {
	prog := tea.NewProgram(newModel(svc), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

type mode int

const (
	modeTimeline mode = iota
	modeActionInput
	modeActivityPick
	modeDurationInput
	modeResetConfirm
)

type model struct {
	svc        *day.Service
	mode       mode
	cursor     int // position in the eligible session list
	input      textinput.Model
	inputTitle string
	targetID   string // session receiving the action text
	activities []domain.Activity
	activity   int // picker cursor
	width      int
	styles     styles
}

type styles struct {
	title    lipgloss.Style
	setLabel lipgloss.Style
	current  lipgloss.Style
	session  lipgloss.Style
	status   lipgloss.Style
	rest     lipgloss.Style
	help     lipgloss.Style
	errLine  lipgloss.Style
	prompt   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		setLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		current:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		session:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		rest:     lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		errLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("189")),
	}
}

func newModel(svc *day.Service) *model {
	input := textinput.New()
	input.CharLimit = 120
	input.Width = 48

	return &model{
		svc:        svc,
		input:      input,
		activities: domain.DefaultActivities(),
		styles:     defaultStyles(),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeActionInput, modeDurationInput:
			return m.updateInput(msg)
		case modeActivityPick:
			return m.updatePicker(msg)
		case modeResetConfirm:
			return m.updateResetConfirm(msg)
		}
		return m.updateTimeline(msg)
	}
	return m, nil
}

func (m *model) updateTimeline(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.svc.DismissError()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.eligible())-1 {
			m.cursor++
		}

	case "s":
		m.transition(ctx, domain.ActionStart)
	case "c":
		m.transition(ctx, domain.ActionComplete)
	case "r":
		m.transition(ctx, domain.ActionRest)
	case "e":
		m.transition(ctx, domain.ActionRestEnd)
	case "f":
		m.transition(ctx, domain.ActionFinish)
	case "o":
		m.transition(ctx, domain.ActionContinue)
	case "n":
		m.transition(ctx, domain.ActionNewAction)

	case "a":
		m.mode = modeActivityPick
		m.activity = 0

	case "E":
		if s, ok := m.selected(); ok {
			m.targetID = s.ID
			m.openInput(modeActionInput, "액션 수정", s.Action)
		}
	case "D":
		if s, ok := m.selected(); ok {
			m.svc.Delete(ctx, s.ID)
			if m.cursor >= len(m.eligible()) && m.cursor > 0 {
				m.cursor--
			}
		}

	case "R":
		m.mode = modeResetConfirm
	}
	return m, nil
}

func (m *model) transition(ctx context.Context, action domain.TransitionAction) {
	effect := m.svc.Transition(ctx, action)
	switch effect.Prompt {
	case domain.PromptComplete:
		m.targetID = effect.SessionID
		m.openInput(modeActionInput, "완료한 액션을 기록하세요", "")
	case domain.PromptContinue:
		m.targetID = effect.SessionID
		m.openInput(modeActionInput, "계속할 액션을 기록하세요", "")
	}
}

func (m *model) openInput(to mode, title, value string) {
	m.mode = to
	m.inputTitle = title
	m.input.SetValue(value)
	m.input.Focus()
}

func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if m.mode == modeActionInput {
			if value != "" {
				m.svc.RecordAction(ctx, m.targetID, value)
			}
			m.closeInput()
			return m, nil
		}

		// duration input for an inserted activity
		minutes, err := strconv.Atoi(value)
		if err == nil && minutes > 0 {
			m.svc.Insert(ctx, m.activities[m.activity], minutes, m.insertTarget())
		}
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeTimeline
	case "up", "k":
		if m.activity > 0 {
			m.activity--
		}
	case "down", "j":
		if m.activity < len(m.activities)-1 {
			m.activity++
		}
	case "enter":
		name := m.activities[m.activity].Name
		m.openInput(modeDurationInput, fmt.Sprintf("%s: 몇 분 동안 했나요?", name), "")
	}
	return m, nil
}

func (m *model) updateResetConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "y", "Y":
		_ = m.svc.Reset(ctx)
		m.cursor = 0
		m.mode = modeTimeline
	case "esc", "n", "N", "q":
		m.mode = modeTimeline
	}
	return m, nil
}

func (m *model) closeInput() {
	m.mode = modeTimeline
	m.input.Blur()
	m.input.SetValue("")
	m.targetID = ""
}

func (m *model) eligible() []domain.Session {
	return domain.EligibleSessions(m.svc.Sessions())
}

// insertTarget converts the timeline cursor into the underlying slice
// index the insertion lands at.
func (m *model) insertTarget() int {
	eligible := m.eligible()
	if len(eligible) == 0 || m.cursor >= len(eligible)-1 {
		return len(m.svc.Sessions())
	}
	id := eligible[m.cursor+1].ID
	for i, s := range m.svc.Sessions() {
		if s.ID == id {
			return i
		}
	}
	return len(m.svc.Sessions())
}

func (m *model) selected() (domain.Session, bool) {
	eligible := m.eligible()
	if m.cursor < 0 || m.cursor >= len(eligible) {
		return domain.Session{}, false
	}
	return eligible[m.cursor], true
}
