package cli

import (
	"strings"

	"github.com/manifoldco/promptui"
)

// Select lets the user pick one of choices, filtering by prefix as they type.
// It returns the index and value picked.
func (p Prompter) Select(label string, choices []string) (int, string, error) {
	sel := &promptui.Select{
		Label: label,
		Items: choices,
		Searcher: func(input string, index int) bool {
			return strings.HasPrefix(choices[index], input)
		},
		Stdin:  p.In,
		Stdout: p.Out,
	}

	return sel.Run()
}
