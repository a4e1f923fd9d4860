//go:build windows

package launch

import (
	"golang.org/x/sys/windows"
)

var shellExecute = windows.ShellExecute

// openDefault asks the shell to run the "open" verb, the way Explorer does on double click.
func openDefault(path string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	return shellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL)
}
