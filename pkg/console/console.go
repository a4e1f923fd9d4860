// Package console defines the console the browser talks to:
// text output, single key input and line input.
package console

import (
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrInterrupted is returned by ReadKey when the user presses Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
	// ErrCancelled is returned by ReadLine when the user presses Escape.
	ErrCancelled = errors.New("input cancelled")
)

type KeyKind int

const (
	KeyUnknown KeyKind = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyBackspace
)

type Key struct {
	Kind KeyKind
	Rune rune
}

func RuneKey(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

func (k Key) String() string {
	switch k.Kind {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyBackspace:
		return "Backspace"
	default:
		return "?"
	}
}

type Console interface {
	Clear()
	WriteLine(text string)
	WriteColored(color tcell.Color, text string)
	ReadKey() (Key, error)
	// ReadLine returns the entered text without the line terminator,
	// or ErrCancelled when the line is abandoned with Escape.
	ReadLine(prompt string) (string, error)
	RenderMenu(title string, labels []string, highlighted int)
}

// Confirm asks a yes/no question answered by a single key.
// Only y or Y means yes.
func Confirm(con Console, question string) (bool, error) {
	con.WriteLine(question + " (y/n)")
	key, err := con.ReadKey()
	if err != nil {
		return false, err
	}
	return key.Kind == KeyRune && (key.Rune == 'y' || key.Rune == 'Y'), nil
}

// WaitAnyKey prints "Press any key to continue..." and waits for a key.
func WaitAnyKey(con Console) error {
	con.WriteLine("Press any key to continue...")
	_, err := con.ReadKey()
	return err
}

// EditLine applies a key to a line being typed.
// It returns done=true on Enter. Escape clears the line and finishes it
// with cancelled=true.
func EditLine(line string, key Key) (updated string, done, cancelled bool) {
	switch key.Kind {
	case KeyRune:
		return line + string(key.Rune), false, false
	case KeyBackspace:
		if line == "" {
			return line, false, false
		}
		runes := []rune(line)
		return string(runes[:len(runes)-1]), false, false
	case KeyEnter:
		return line, true, false
	case KeyEscape:
		return "", true, true
	default:
		return line, false, false
	}
}

// MenuLines renders a menu as plain text lines with a marker on the highlighted item.
func MenuLines(title string, labels []string, highlighted int) []string {
	lines := make([]string, 0, len(labels)+1)
	if title != "" {
		lines = append(lines, title)
	}
	for i, label := range labels {
		marker := "  "
		if i == highlighted {
			marker = "> "
		}
		lines = append(lines, marker+strings.TrimRight(label, "\r\n"))
	}
	return lines
}
