package filekind

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const FolderColor = tcell.ColorDodgerBlue

var fileColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"msi":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"cpp":  tcell.ColorDodgerBlue,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"cs":   tcell.ColorLime,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"json": tcell.ColorGold,
	"xml":  tcell.ColorLightYellow,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"py":   tcell.ColorLightGreen,
	"sh":   tcell.ColorGreen,
	"bat":  tcell.ColorDarkRed,
	"txt":  tcell.ColorWhite,
	"csv":  tcell.ColorLightGreen,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"mov":  tcell.ColorLightSalmon,
	"mp4":  tcell.ColorLightSalmon,
	"log":  tcell.ColorRosyBrown,
	"zip":  tcell.ColorSandyBrown,
	"xlsx": tcell.ColorGreen,
	"docx": tcell.ColorBlue,
	"pdf":  tcell.ColorIndianRed,
}

// Color returns the display color of a file by its extension.
func Color(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
