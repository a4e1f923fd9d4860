package navigator

import (
	"fmt"
	"time"

	"github.com/filetug/voltug/pkg/filekind"
	"github.com/filetug/voltug/pkg/files"
	"github.com/filetug/voltug/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
)

const TimeLayout = "2006-01-02 15:04:05"

// FormatEntry renders an entry as a listing line,
// e.g. `[2] a.txt - Created: 2024-01-01 00:00:00, Size: 0 KB`.
func FormatEntry(e Entry) string {
	switch e.Status {
	case StatusDenied:
		return fmt.Sprintf("[%d] Access denied for %s", e.Index, e.Name)
	case StatusFailed:
		return fmt.Sprintf("[%d] %s - Error: %v", e.Index, e.Name, e.Err)
	}
	line := fmt.Sprintf("[%d] %s - Created: %s, Size: %s",
		e.Index, e.Name, formatTime(e.Created), fsutils.GetSizeKBText(e.Size))
	if e.Kind == files.KindFile {
		if label := filekind.Label(e.Name); label != "" {
			line += ", Kind: " + label
		}
	}
	return line
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(TimeLayout)
}

func entryColor(e Entry) tcell.Color {
	switch {
	case e.Status != StatusOK:
		return tcell.ColorRed
	case e.Kind == files.KindFolder:
		return filekind.FolderColor
	default:
		return filekind.Color(e.Name)
	}
}

func (n *Navigator) render(listing Listing) {
	n.con.Clear()
	n.con.WriteLine("Current path: " + listing.Path)
	n.flushNotice()
	n.con.WriteLine("Folders:")
	for _, e := range listing.Folders {
		n.con.WriteColored(entryColor(e), FormatEntry(e))
	}
	n.con.WriteLine("Files:")
	for _, e := range listing.Files {
		n.con.WriteColored(entryColor(e), FormatEntry(e))
	}
	n.con.WriteLine("")
}
