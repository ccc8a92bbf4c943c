package demo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-rbtree/cli"
)

// ErrUnknownCommand is returned by Exec for input it cannot parse.
var ErrUnknownCommand = errors.New("unknown command")

const help = `commands:
  insert N [N...]   add keys
  delete [N...]     remove keys, or pick one when none is given
  print             show the tree
  check             validate every invariant
  clear             drop all keys, after asking
  help              show this text
  quit              leave
`

// Exec runs one REPL command. It reports quit for "quit" and "exit".
func (s *Session) Exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		_, err = fmt.Fprint(s.out, help)
	case "print", "p":
		err = s.Print()
	case "check", "validate":
		err = s.Validate()
	case "clear":
		err = s.clear()
	case "insert", "i", "delete", "d":
		var keys []int

		if keys, err = parseKeys(args); err != nil {
			return false, err
		}

		if name[0] == 'i' {
			if len(keys) == 0 {
				return false, fmt.Errorf("%w: insert needs at least one key", ErrUnknownCommand)
			}

			err = s.Insert(keys...)
		} else {
			err = s.deleteOrPick(keys)
		}
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	return false, err
}

func (s *Session) clear() error {
	size := s.tree.Len()

	if s.confirm != nil && size > 0 {
		ok, err := s.confirm(fmt.Sprintf("Drop all %d keys", size))
		if err != nil {
			return err
		}

		if !ok {
			s.log().Info("clear cancelled", "size", size)

			return nil
		}
	}

	s.tree.Clear()

	return nil
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))

	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer key", ErrUnknownCommand, arg)
		}

		keys = append(keys, key)
	}

	return keys, nil
}

func (s *Session) deleteOrPick(keys []int) error {
	if len(keys) > 0 {
		return s.Delete(keys...)
	}

	if s.pick == nil || s.tree.Len() == 0 {
		return fmt.Errorf("%w: delete needs at least one key", ErrUnknownCommand)
	}

	choices := make([]string, 0, s.tree.Len())
	for key := range s.tree.Seq() {
		choices = append(choices, key.String())
	}

	_, picked, err := s.pick("delete", choices)
	if err != nil {
		return err
	}

	key, err := strconv.Atoi(picked)
	if err != nil {
		return err
	}

	return s.Delete(key)
}

// REPL reads commands from p until quit, Ctrl-C or Ctrl-D. A failing command
// is logged and the loop goes on.
func (s *Session) REPL(p cli.Prompter) error {
	s.pick = p.Select
	s.confirm = p.Confirm

	defer func() { s.pick, s.confirm = nil, nil }()

	_, _ = fmt.Fprint(s.out, cli.BannerAutoWidth("rbdemo: type help for commands", cli.AlignCenter))

	for {
		line, err := p.String("rbtree", nil)
		if err != nil {
			if cli.Interrupted(err) {
				return nil
			}

			return err
		}

		quit, err := s.Exec(line)
		if err != nil {
			s.log().Error("command failed", "command", line, "error", err)

			continue
		}

		if quit {
			return nil
		}
	}
}
