package filekind

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"image", "photo.PNG", "Image"},
		{"text", "notes.txt", "Text"},
		{"program", `C:\Tools\app.exe`, "Program"},
		{"go_lexer", "main.go", "Go"},
		{"json_lexer", "data.json", "JSON"},
		{"unknown", "blob.zzzq", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.fileName))
		})
	}
}

func TestColor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fileName string
		want     tcell.Color
	}{
		{"exe", "test.exe", tcell.ColorRed},
		{"upper_case", "TEST.EXE", tcell.ColorRed},
		{"go", "main.go", tcell.ColorAqua},
		{"json", "data.json", tcell.ColorGold},
		{"docx", "report.docx", tcell.ColorBlue},
		{"no_ext", "README", tcell.ColorWhiteSmoke},
		{"hidden_go", ".go", tcell.ColorAqua},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Color(tt.fileName); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}
