// Package consoletest has helpers for testing consoles on a simulation screen.
package consoletest

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

type T interface {
	Helper()
	Fatalf(format string, args ...any)
}

var NewSimulationScreen = tcell.NewSimulationScreen

// NewSimScreen creates an initialised simulation screen.
func NewSimScreen(t T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ScreenText returns all screen lines with trailing spaces trimmed.
func ScreenText(screen tcell.Screen) []string {
	width, height := screen.Size()
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		lines[y] = strings.TrimRight(ReadLine(screen, y, width), " ")
	}
	return lines
}

// TypeText injects a rune key event for every rune of text.
func TypeText(screen tcell.SimulationScreen, text string) {
	for _, r := range text {
		screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
}
