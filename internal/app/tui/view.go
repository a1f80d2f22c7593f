package tui

import (
	"fmt"
	"strings"

	"harulog/internal/domain"
	"harulog/internal/util"
)

func (m *model) View() string {
	var b strings.Builder

	date := m.svc.Date()
	b.WriteString(m.styles.title.Render(fmt.Sprintf("%s (%s)", util.FormatDateKorean(date), date)))
	b.WriteString("\n\n")

	b.WriteString(m.renderTimeline())

	switch m.mode {
	case modeActionInput, modeDurationInput:
		b.WriteString("\n")
		b.WriteString(m.styles.prompt.Render(m.inputTitle))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.help.Render("enter 저장 · esc 취소"))
	case modeActivityPick:
		b.WriteString("\n")
		b.WriteString(m.renderPicker())
	case modeResetConfirm:
		b.WriteString("\n")
		b.WriteString(m.styles.errLine.Render("오늘의 기록을 모두 삭제할까요? (y/N)"))
	default:
		b.WriteString("\n")
		b.WriteString(m.renderHelp())
	}

	if msg := m.svc.Err(); msg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.errLine.Render(msg + " (esc)"))
	}

	return b.String() + "\n"
}

func (m *model) renderTimeline() string {
	items := domain.ResolveSetLabels(m.svc.Sessions())
	if len(items) == 0 {
		return m.styles.status.Render("기록된 세션이 없습니다.")
	}

	currentID := ""
	if current, ok := m.svc.Current(); ok {
		currentID = current.ID
	}

	var lines []string
	position := -1
	for _, item := range items {
		if item.Kind == domain.ItemSetLabel {
			lines = append(lines, m.styles.setLabel.Render(fmt.Sprintf("── %d세트 ──", item.SetNumber)))
			continue
		}
		position++
		lines = append(lines, m.renderSession(item.Session, position == m.cursor, item.Session.ID == currentID))
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderSession(s domain.Session, selected, current bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}

	clock := "--:--"
	if s.StartTime != nil {
		clock = util.FormatClock(*s.StartTime)
	}

	label := s.Action
	if label == "" {
		label = "(미입력)"
	}

	duration := ""
	if s.StartTime != nil && s.EndTime != nil {
		duration = " · " + util.FormatMinutes(s.DurationMinutes())
	}

	style := m.styles.session
	if s.IsRest {
		style = m.styles.rest
	}
	if current {
		style = m.styles.current
	}

	line := fmt.Sprintf("%s%s  %s", marker, clock, style.Render(label))
	line += m.styles.status.Render(fmt.Sprintf(" [%s]%s", domain.StatusText(s.Status), duration))
	return line
}

func (m *model) renderPicker() string {
	var lines []string
	lines = append(lines, m.styles.prompt.Render("기록할 활동을 선택하세요"))
	for i, a := range m.activities {
		marker := "  "
		if i == m.activity {
			marker = "> "
		}
		style := m.styles.session
		if i == m.activity {
			style = m.styles.current
		}
		lines = append(lines, marker+style.Render(a.Name))
	}
	lines = append(lines, m.styles.help.Render("enter 선택 · esc 취소"))
	return strings.Join(lines, "\n")
}

// renderHelp shows only the keys the current session's status accepts.
func (m *model) renderHelp() string {
	keys := []string{}
	if current, ok := m.svc.Current(); ok {
		switch current.Status {
		case domain.StatusReady:
			keys = append(keys, "s 시작")
		case domain.StatusStarted:
			keys = append(keys, "c 완료", "f 세트 종료")
		case domain.StatusCompleted:
			keys = append(keys, "r 휴식", "n 새 액션", "f 세트 종료")
		case domain.StatusResting:
			keys = append(keys, "e 휴식 끝")
		case domain.StatusRestFinished:
			keys = append(keys, "o 이어서", "f 세트 종료")
		}
	}
	keys = append(keys, "a 활동 기록", "E 수정", "D 삭제", "R 초기화", "q 종료")
	return m.styles.help.Render(strings.Join(keys, " · "))
}
