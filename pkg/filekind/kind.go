// Package filekind classifies files by name for display.
package filekind

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

var extGroups = map[string]string{
	".jpg":  "Image",
	".jpeg": "Image",
	".png":  "Image",
	".gif":  "Image",
	".webp": "Image",
	".mov":  "Video",
	".mp4":  "Video",
	".webm": "Video",
	".mp3":  "Audio",
	".wav":  "Audio",
	".zip":  "Archive",
	".7z":   "Archive",
	".rar":  "Archive",
	".docx": "Document",
	".xlsx": "Spreadsheet",
	".pdf":  "Document",
	".txt":  "Text",
	".log":  "Log",
	".exe":  "Program",
	".msi":  "Installer",
}

// Label returns a short kind label such as "Image" or "Go".
// Source and data files are named by the matching chroma lexer.
// Empty when nothing matches.
func Label(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if group, ok := extGroups[ext]; ok {
		return group
	}
	if lexer := lexers.Match(filepath.Base(name)); lexer != nil {
		return lexer.Config().Name
	}
	return ""
}
