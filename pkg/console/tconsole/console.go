// Package tconsole is a full screen console on top of tcell and tview.
// The scrollback is a tview.TextView, menus are a tview.List and the
// input line is printed on the last row.
package tconsole

import (
	"fmt"
	"io"

	"github.com/filetug/voltug/pkg/console"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ console.Console = (*Console)(nil)

type Console struct {
	screen tcell.Screen
	output *tview.TextView
	menu   *tview.List

	showMenu bool
	prompt   string
	input    string
}

// New wraps an initialised screen.
func New(screen tcell.Screen) *Console {
	output := tview.NewTextView()
	output.SetDynamicColors(true)
	output.SetWrap(true)
	output.SetScrollable(true)

	menu := tview.NewList()
	menu.ShowSecondaryText(false)
	menu.SetBorder(true)
	menu.SetSelectedBackgroundColor(tcell.ColorWhiteSmoke)
	menu.SetSelectedTextColor(tcell.ColorBlack)

	return &Console{
		screen: screen,
		output: output,
		menu:   menu,
	}
}

func (c *Console) Close() {
	c.screen.Fini()
}

func (c *Console) draw() {
	c.screen.Clear()
	width, height := c.screen.Size()
	if c.showMenu {
		c.menu.SetRect(0, 0, width, height-1)
		c.menu.Draw(c.screen)
	} else {
		c.output.SetRect(0, 0, width, height-1)
		c.output.ScrollToEnd()
		c.output.Draw(c.screen)
	}
	if c.prompt != "" || c.input != "" {
		tview.Print(c.screen, tview.Escape(c.prompt+c.input), 0, height-1, width, tview.AlignLeft, tcell.ColorWhite)
		c.screen.ShowCursor(len([]rune(c.prompt+c.input)), height-1)
	} else {
		c.screen.HideCursor()
	}
	c.screen.Show()
}

func (c *Console) Clear() {
	c.output.Clear()
	c.showMenu = false
	c.draw()
}

func (c *Console) WriteLine(text string) {
	c.showMenu = false
	_, _ = fmt.Fprintln(c.output, tview.Escape(text))
	c.draw()
}

func (c *Console) WriteColored(color tcell.Color, text string) {
	hex := color.Hex()
	if hex < 0 {
		c.WriteLine(text)
		return
	}
	c.showMenu = false
	_, _ = fmt.Fprintf(c.output, "[#%06x]%s[-]\n", hex, tview.Escape(text))
	c.draw()
}

func (c *Console) RenderMenu(title string, labels []string, highlighted int) {
	c.menu.Clear()
	c.menu.SetTitle(" " + title + " ")
	for _, label := range labels {
		c.menu.AddItem(tview.Escape(label), "", 0, nil)
	}
	c.menu.SetCurrentItem(highlighted)
	c.showMenu = true
	c.draw()
}

func (c *Console) ReadKey() (console.Key, error) {
	for {
		ev := c.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// the screen was finalized
			return console.Key{}, io.EOF
		case *tcell.EventResize:
			c.screen.Sync()
			c.draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return console.Key{}, console.ErrInterrupted
			}
			return keyOf(ev), nil
		}
	}
}

func keyOf(ev *tcell.EventKey) console.Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return console.RuneKey(ev.Rune())
	case tcell.KeyEnter:
		return console.Key{Kind: console.KeyEnter}
	case tcell.KeyEscape:
		return console.Key{Kind: console.KeyEscape}
	case tcell.KeyUp:
		return console.Key{Kind: console.KeyUp}
	case tcell.KeyDown:
		return console.Key{Kind: console.KeyDown}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return console.Key{Kind: console.KeyBackspace}
	default:
		return console.Key{Kind: console.KeyUnknown}
	}
}

func (c *Console) ReadLine(prompt string) (string, error) {
	c.showMenu = false
	c.prompt, c.input = prompt, ""
	defer func() {
		c.prompt, c.input = "", ""
		c.draw()
	}()
	c.draw()
	for {
		key, err := c.ReadKey()
		if err != nil {
			return "", err
		}
		line, done, cancelled := console.EditLine(c.input, key)
		if cancelled {
			return "", console.ErrCancelled
		}
		if done {
			_, _ = fmt.Fprintln(c.output, tview.Escape(prompt+line))
			return line, nil
		}
		c.input = line
		c.draw()
	}
}
