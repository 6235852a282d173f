// Package prompt asks the developer questions on the terminal.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrNoCandidates is returned when there is nothing to pick from.
var ErrNoCandidates = errors.New("no app directories to choose from")

// HuhPicker prompts with a charmbracelet/huh select list.
type HuhPicker struct {
	stdin *os.File
}

// NewHuhPicker creates a picker reading from the process stdin.
func NewHuhPicker() *HuhPicker {
	return &HuhPicker{stdin: os.Stdin}
}

// IsInteractive reports whether stdin is a terminal.
func (p *HuhPicker) IsInteractive() bool {
	return term.IsTerminal(int(p.stdin.Fd())) //nolint:gosec // G115: fd fits in int
}

// PickApp asks which directory holds the app. A single candidate is
// returned without prompting.
func (p *HuhPicker) PickApp(candidates []string) (string, error) {
	switch len(candidates) {
	case 0:
		return "", ErrNoCandidates
	case 1:
		return candidates[0], nil
	}

	options := make([]huh.Option[string], 0, len(candidates))
	for _, c := range candidates {
		options = append(options, huh.NewOption(c, c))
	}

	choice := candidates[0]
	err := huh.NewSelect[string]().
		Title("Which directory holds your iOS app?").
		Options(options...).
		Value(&choice).
		Run()
	if err != nil {
		return "", err
	}

	return choice, nil
}
