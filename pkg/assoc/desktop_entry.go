package assoc

import (
	"bufio"
	"bytes"
	"errors"
	"mime"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	mimeTypeByExtension = mime.TypeByExtension
	osReadFile          = os.ReadFile
	execOutput          = func(name string, args ...string) ([]byte, error) {
		return exec.Command(name, args...).Output()
	}
)

// xdgRegistry resolves handlers the freedesktop way:
// extension -> MIME type -> default desktop entry -> its Exec line.
type xdgRegistry struct {
	dataDirs []string
}

func newXDGRegistry() xdgRegistry {
	return xdgRegistry{dataDirs: xdgDataDirs()}
}

func xdgDataDirs() []string {
	var dirs []string
	if home := os.Getenv("XDG_DATA_HOME"); home != "" {
		dirs = append(dirs, home)
	} else if userHome, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(userHome, ".local", "share"))
	}
	system := os.Getenv("XDG_DATA_DIRS")
	if system == "" {
		system = "/usr/local/share:/usr/share"
	}
	for _, dir := range strings.Split(system, ":") {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func (r xdgRegistry) DefaultHandler(ext string) (string, error) {
	mimeType, _, _ := strings.Cut(mimeTypeByExtension(ext), ";")
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		return "", nil
	}
	out, err := execOutput("xdg-mime", "query", "default", mimeType)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	desktopFile := strings.TrimSpace(string(out))
	if desktopFile == "" {
		return "", nil
	}
	for _, dir := range r.dataDirs {
		data, err := osReadFile(filepath.Join(dir, "applications", desktopFile))
		if err != nil {
			continue
		}
		if command := desktopExec(data); command != "" {
			return command, nil
		}
	}
	return "", nil
}

// desktopExec returns the Exec command of the [Desktop Entry] group
// with field codes such as %f and %U removed.
func desktopExec(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	inEntry := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if !inEntry {
			continue
		}
		if value, ok := strings.CutPrefix(line, "Exec="); ok {
			return stripFieldCodes(value)
		}
	}
	return ""
}

func stripFieldCodes(command string) string {
	fields := strings.Fields(command)
	kept := fields[:0]
	for _, f := range fields {
		if len(f) == 2 && f[0] == '%' {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
