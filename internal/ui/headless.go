package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager manages headless (non-interactive) mode detection
// and the default answer used when a prompt cannot be shown.
type HeadlessManager struct {
	forced         *bool
	confirmDefault bool
}

// NewHeadlessManager creates a HeadlessManager that detects headless
// mode from the TTY state of os.Stdin. The confirm default is decline,
// so unattended runs never create directories.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless returns true when the UI should operate in headless mode.
// ForceHeadless overrides TTY detection. Otherwise, it checks whether
// os.Stdin is connected to a terminal.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless
// mode, or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY
// detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

// SetConfirmDefault sets the answer returned by confirmation prompts
// in headless mode.
func (h *HeadlessManager) SetConfirmDefault(answer bool) {
	h.confirmDefault = answer
}

// ConfirmDefault returns the headless-mode answer for confirmation
// prompts.
func (h *HeadlessManager) ConfirmDefault() bool {
	return h.confirmDefault
}
