// Package menu implements single selection from a list of labels.
package menu

import (
	"errors"

	"github.com/filetug/voltug/pkg/console"
)

var (
	ErrNoItems   = errors.New("menu has no items")
	ErrCancelled = errors.New("menu cancelled")
)

// Select renders labels with the first one highlighted and returns the index
// confirmed with Enter. Up and Down move the highlight without wrapping.
// Escape returns ErrCancelled.
func Select(con console.Console, title string, labels []string) (int, error) {
	if len(labels) == 0 {
		return -1, ErrNoItems
	}
	highlighted := 0
	for {
		con.RenderMenu(title, labels, highlighted)
		key, err := con.ReadKey()
		if err != nil {
			return -1, err
		}
		switch key.Kind {
		case console.KeyUp:
			highlighted = clamp(highlighted-1, len(labels))
		case console.KeyDown:
			highlighted = clamp(highlighted+1, len(labels))
		case console.KeyEnter:
			return highlighted, nil
		case console.KeyEscape:
			return -1, ErrCancelled
		default:
		}
	}
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
