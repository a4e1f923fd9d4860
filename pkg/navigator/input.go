package navigator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/filetug/voltug/pkg/files"
	"github.com/filetug/voltug/pkg/metrics"
)

// InputError is rejected user input. It is reported and the input is asked again.
type InputError struct {
	Kind   string // "choice" or "volume"
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Input, e.Reason)
}

func newInputError(kind, input, reason string) *InputError {
	metrics.RecordInputError(kind)
	return &InputError{Kind: kind, Input: input, Reason: reason}
}

// ErrEmptyChoice means nothing was entered and the choice should be read again.
var ErrEmptyChoice = errors.New("empty choice")

// ParseChoice parses a whole line as a non-negative entry number.
func ParseChoice(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyChoice
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, newInputError("choice", text, "not a number")
	}
	return n, nil
}

type Action int

const (
	ActionAscend Action = iota
	ActionDescend
	ActionOpenFile
)

func (a Action) String() string {
	switch a {
	case ActionAscend:
		return "ascend"
	case ActionDescend:
		return "descend"
	case ActionOpenFile:
		return "open_file"
	default:
		return "unknown"
	}
}

type Selection struct {
	Action Action
	Entry  Entry // empty for ActionAscend
}

// Decode maps a choice to an action: 0 goes up, 1..folders descends,
// the following numbers open files.
func Decode(listing Listing, n int) (Selection, error) {
	if n == 0 {
		return Selection{Action: ActionAscend}, nil
	}
	entry, ok := listing.At(n)
	if !ok {
		return Selection{}, newInputError("choice", strconv.Itoa(n),
			fmt.Sprintf("expected 0..%d", listing.Len()))
	}
	if entry.Kind == files.KindFolder {
		return Selection{Action: ActionDescend, Entry: entry}, nil
	}
	return Selection{Action: ActionOpenFile, Entry: entry}, nil
}
