package ports

import "harulog/internal/domain"

// Prompter collects free-form input from the user at transition time.
// Both prompts may be dismissed; dismissal is not an error.
type Prompter interface {
	// AskAction asks for an action text. Returns "" when dismissed.
	AskAction(title, placeholder string) (string, error)
	// AskDuration asks for the duration (in minutes) of a dropped
	// activity. Returns 0 when dismissed or when the input is not a
	// positive integer.
	AskDuration(activity domain.Activity) (int, error)
}
