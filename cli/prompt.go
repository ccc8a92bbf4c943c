package cli

import (
	"errors"
	"io"
	"os"

	"github.com/manifoldco/promptui"
)

var errEmpty = errors.New("you must enter something")

// Prompter asks questions on a terminal. The zero value uses stdin and
// stdout.
type Prompter struct {
	In  io.ReadCloser
	Out io.WriteCloser
}

func (p Prompter) prompt(label string, validate promptui.ValidateFunc) promptui.Prompt {
	in, out := p.In, p.Out
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stdout
	}

	return promptui.Prompt{
		Label:    label,
		Validate: validate,
		Stdin:    in,
		Stdout:   out,
	}
}

// Confirm asks a yes/no question. Answering no is not an error.
func (p Prompter) Confirm(label string) (bool, error) {
	prompt := p.prompt(label, nil)
	prompt.IsConfirm = true

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// String reads a non-empty line. validate may be nil.
func (p Prompter) String(label string, validate func(string) error) (string, error) {
	prompt := p.prompt(label, func(s string) error {
		if len(s) == 0 {
			return errEmpty
		}

		if validate != nil {
			return validate(s)
		}

		return nil
	})

	return prompt.Run()
}

// Interrupted reports whether err means the user pressed Ctrl-C or Ctrl-D.
func Interrupted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}
