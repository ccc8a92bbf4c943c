package demo

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-rbtree/cli"
	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/amp-labs/amp-rbtree/validate"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned for scripts that do not parse or whose steps
// do not name exactly one action.
var ErrInvalidScript = errors.New("invalid script")

//go:embed demo.yaml
var walkthrough string

// Script is a list of steps applied to a Session in order.
//
//	ops:
//	  - insert: [41, 38, 31]
//	  - delete: [38]
//	  - print: true
//	  - validate: true
type Script struct {
	Ops []Op `yaml:"ops"`
}

var errActionCount = errors.New("must name exactly one action")

// Validate checks that every step names exactly one action.
func (s *Script) Validate() error {
	for i, op := range s.Ops {
		if n := op.actions(); n != 1 {
			return fmt.Errorf("step %d %w, found %d", i+1, errActionCount, n)
		}
	}

	return nil
}

// Op is one step. Exactly one field is set.
type Op struct {
	Banner   string `yaml:"banner,omitempty"`
	Insert   []int  `yaml:"insert,omitempty"`
	Delete   []int  `yaml:"delete,omitempty"`
	Print    bool   `yaml:"print,omitempty"`
	Validate bool   `yaml:"validate,omitempty"`
}

func (op Op) actions() int {
	n := 0

	for _, set := range []bool{op.Banner != "", op.Insert != nil, op.Delete != nil, op.Print, op.Validate} {
		if set {
			n++
		}
	}

	return n
}

func (op Op) String() string {
	switch {
	case op.Banner != "":
		return "banner"
	case op.Insert != nil:
		return "insert"
	case op.Delete != nil:
		return "delete"
	case op.Print:
		return "print"
	default:
		return "validate"
	}
}

// LoadScript decodes a YAML script. Unknown fields are rejected.
func LoadScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var script Script
	if err := dec.Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScript)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}

	if err := validate.Validate(context.Background(), &script); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}

	return &script, nil
}

// Walkthrough returns the built-in script run by "rbdemo demo".
func Walkthrough() *Script {
	script, err := LoadScript(strings.NewReader(walkthrough))
	if err != nil {
		panic(err)
	}

	return script
}

// Run applies every step and stops at the first error. Errors carry the
// step number and action for logging. Banners after the first are preceded
// by a divider.
func (s *Session) Run(script *Script) error {
	banners := 0

	for i, op := range script.Ops {
		if op.Banner != "" {
			if banners > 0 {
				if _, err := io.WriteString(s.out, cli.DividerAutoWidth()); err != nil {
					return err
				}
			}

			banners++
		}

		if err := s.apply(op); err != nil {
			return logger.AnnotateError(fmt.Errorf("step %d (%s): %w", i+1, op, err), "step", i+1, "op", op.String())
		}
	}

	return nil
}

func (s *Session) apply(op Op) error {
	switch {
	case op.Banner != "":
		return s.Banner(op.Banner)
	case op.Insert != nil:
		return s.Insert(op.Insert...)
	case op.Delete != nil:
		return s.Delete(op.Delete...)
	case op.Print:
		return s.Print()
	default:
		return s.Validate()
	}
}
