// Package cli holds the terminal helpers used by rbdemo: boxed banners and
// promptui prompts.
package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/amp-labs/amp-rbtree/should"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

// Alignment of text inside a banner.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	borderWidth = 2

	// DefaultTerminalWidth is used when the terminal size cannot be read.
	DefaultTerminalWidth = 80
)

var plain atomic.Bool //nolint:gochecknoglobals

// SetPlain turns banners into bare text lines, for logs and pipes.
func SetPlain(on bool) {
	plain.Store(on)
}

func terminalWidth() int {
	_, w, err := TerminalDimensions()
	if err != nil || w == 0 {
		return DefaultTerminalWidth
	}

	return int(w) //nolint:gosec // Terminal width is bounded by screen size
}

// DividerAutoWidth is Divider sized to the terminal.
func DividerAutoWidth() string {
	return Divider(terminalWidth())
}

// BannerAutoWidth is Banner sized to the terminal.
func BannerAutoWidth(s string, align Alignment) string {
	return Banner(s, terminalWidth(), align)
}

// Divider returns a horizontal rule width runes wide, newline included.
func Divider(width int) string {
	if plain.Load() || width < borderWidth {
		return "\n"
	}

	return dividerLeft + strings.Repeat(dividerMiddle, width-borderWidth) + dividerRight + "\n"
}

// Banner draws s, which may span several lines, inside a box width runes
// wide. Lines that do not fit are cut and end with an ellipsis.
func Banner(s string, width int, align Alignment) string {
	if plain.Load() {
		return s + "\n"
	}

	if width <= borderWidth || s == "" {
		return ""
	}

	inner := width - borderWidth
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		parts = append(parts, boxSide+pad(line, inner, align)+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// truncateGraphic keeps the runes before the n-th graphic one.
func truncateGraphic(s string, n int) (string, int) {
	var sb strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		sb.WriteRune(r)
	}

	return sb.String(), count
}

func pad(text string, width int, align Alignment) string {
	length := countGraphic(text)
	if length > width {
		text, length = truncateGraphic(text, width-1)
		text += ellipsis
		length++
	}

	gap := width - length

	switch align {
	case AlignCenter:
		left := gap / 2 //nolint:mnd

		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	case AlignRight:
		return strings.Repeat(" ", gap) + text
	default:
		return text + strings.Repeat(" ", gap)
	}
}

func size() (string, error) {
	f, err := os.Open("/dev/tty")
	if err != nil {
		return "", err
	}

	defer should.Close(f, "closing /dev/tty")

	// Outputs: "rows columns"
	cmd := exec.Command("stty", "size")
	cmd.Stdin = f

	out, err := cmd.Output()

	return string(out), err
}

func parse(input string) (uint, uint, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 { //nolint:mnd
		return 0, 0, fmt.Errorf("unexpected stty output %q", input) //nolint:err113
	}

	rows, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return 0, 0, err
	}

	cols, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return 0, 0, err
	}

	return uint(rows), uint(cols), nil
}

// TerminalDimensions returns (rows, cols, err).
func TerminalDimensions() (uint, uint, error) {
	output, err := size()
	if err != nil {
		return 0, 0, err
	}

	return parse(output)
}
