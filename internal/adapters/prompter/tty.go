package prompter

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"harulog/internal/domain"
	"harulog/internal/ports"
)

// TTYPrompter collects action text and activity durations via TTY.
type TTYPrompter struct {
	logger ports.Logger
}

// NewTTYPrompter creates a new TTY prompter
func NewTTYPrompter(logger ports.Logger) *TTYPrompter {
	return &TTYPrompter{logger: logger}
}

// AskAction prompts for an action text. Returns "" if the TTY is
// unavailable or the user just presses Enter.
func (p *TTYPrompter) AskAction(title, placeholder string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		p.logger.Debug("TTY not available, skipping action prompt")
		return "", nil
	}
	defer tty.Close()

	reader := bufio.NewReader(tty)

	fmt.Fprintln(tty)
	fmt.Fprintln(tty, title)
	fmt.Fprintf(tty, "%s (Enter to skip): ", placeholder)

	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line), nil
}

// AskDuration prompts for a duration in minutes for the dropped activity.
// Returns 0 if the TTY is unavailable, the input is empty, or it is not a
// positive integer.
func (p *TTYPrompter) AskDuration(activity domain.Activity) (int, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		p.logger.Debug("TTY not available, skipping duration prompt")
		return 0, nil
	}
	defer tty.Close()

	reader := bufio.NewReader(tty)

	fmt.Fprintln(tty)
	fmt.Fprintf(tty, "%s: 몇 분 동안 했나요? (Enter to cancel): ", activity.Name)

	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, nil
	}

	minutes, err := strconv.Atoi(line)
	if err != nil || minutes <= 0 {
		return 0, nil
	}
	return minutes, nil
}
