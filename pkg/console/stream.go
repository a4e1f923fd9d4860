package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

var _ Console = (*Stream)(nil)

var (
	termIsTerminal = term.IsTerminal
	termMakeRaw    = term.MakeRaw
	termRestore    = term.Restore
)

// Stream is a console over a byte stream: a pipe, a script or a terminal in raw mode.
// ANSI arrow sequences decode to Up and Down, a lone ESC to Escape.
type Stream struct {
	r   *bufio.Reader
	w   io.Writer
	raw bool
}

func NewStream(r io.Reader, w io.Writer) *Stream {
	return &Stream{r: bufio.NewReader(r), w: w}
}

// MakeRaw puts the terminal behind fd into raw mode. It is a no-op
// returning a no-op restore func when fd is not a terminal.
func (s *Stream) MakeRaw(fd int) (restore func() error, err error) {
	if !termIsTerminal(fd) {
		return func() error { return nil }, nil
	}
	state, err := termMakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to switch terminal to raw mode: %w", err)
	}
	s.raw = true
	return func() error {
		s.raw = false
		return termRestore(fd, state)
	}, nil
}

func (s *Stream) newline() string {
	if s.raw {
		return "\r\n"
	}
	return "\n"
}

func (s *Stream) write(text string) {
	_, _ = io.WriteString(s.w, text)
}

func (s *Stream) Clear() {
	if s.raw {
		s.write("\x1b[H\x1b[2J")
	}
}

func (s *Stream) WriteLine(text string) {
	s.write(text + s.newline())
}

func (s *Stream) WriteColored(_ tcell.Color, text string) {
	s.WriteLine(text)
}

func (s *Stream) RenderMenu(title string, labels []string, highlighted int) {
	s.Clear()
	for _, line := range MenuLines(title, labels, highlighted) {
		s.WriteLine(line)
	}
}

func (s *Stream) ReadKey() (Key, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	switch r {
	case '\r':
		if next, err := s.r.Peek(1); err == nil && next[0] == '\n' {
			_, _ = s.r.ReadByte()
		}
		return Key{Kind: KeyEnter}, nil
	case '\n':
		return Key{Kind: KeyEnter}, nil
	case 0x7f, '\b':
		return Key{Kind: KeyBackspace}, nil
	case 0x03:
		return Key{}, ErrInterrupted
	case 0x1b:
		return s.readEscape(), nil
	case utf8.RuneError:
		return Key{Kind: KeyUnknown}, nil
	default:
		return RuneKey(r), nil
	}
}

// readEscape decodes CSI and SS3 arrow sequences. ESC with nothing
// buffered after it is the Escape key.
func (s *Stream) readEscape() Key {
	if s.r.Buffered() == 0 {
		return Key{Kind: KeyEscape}
	}
	next, err := s.r.Peek(1)
	if err != nil || (next[0] != '[' && next[0] != 'O') {
		return Key{Kind: KeyEscape}
	}
	_, _ = s.r.ReadByte()
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return Key{Kind: KeyUnknown}
		}
		if b >= 0x40 && b <= 0x7e {
			switch b {
			case 'A':
				return Key{Kind: KeyUp}
			case 'B':
				return Key{Kind: KeyDown}
			default:
				return Key{Kind: KeyUnknown}
			}
		}
	}
}

func (s *Stream) ReadLine(prompt string) (string, error) {
	s.write(prompt)
	if s.raw {
		return s.readLineRaw()
	}
	line, err := s.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	if strings.HasPrefix(line, "\x1b") {
		return "", ErrCancelled
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readLineRaw echoes typed keys itself because the terminal does not.
func (s *Stream) readLineRaw() (string, error) {
	var line string
	for {
		key, err := s.ReadKey()
		if err != nil {
			return "", err
		}
		updated, done, cancelled := EditLine(line, key)
		switch {
		case cancelled:
			s.write(s.newline())
			return "", ErrCancelled
		case done:
			s.write(s.newline())
			return updated, nil
		case len(updated) < len(line):
			s.write("\b \b")
		case len(updated) > len(line):
			s.write(updated[len(line):])
		}
		line = updated
	}
}
