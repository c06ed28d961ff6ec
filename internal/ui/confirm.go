package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrCancelled indicates the operator aborted a prompt (ctrl-c).
var ErrCancelled = errors.New("ui: prompt cancelled")

// Confirm asks the operator a yes/no question. In headless mode no
// prompt is shown and the manager's confirm default is returned, so a
// piped or CI invocation behaves like a declined prompt.
func Confirm(hm *HeadlessManager, title string) (bool, error) {
	if hm.IsHeadless() {
		return hm.ConfirmDefault(), nil
	}

	var answer bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	)).WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}

	return answer, nil
}
