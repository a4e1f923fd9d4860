package voltug

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/filetug/voltug/pkg/console"
	"github.com/filetug/voltug/pkg/files/memfile"
	"github.com/filetug/voltug/pkg/launch"
	"github.com/filetug/voltug/pkg/volumes"
	"github.com/filetug/voltug/pkg/vtsettings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	down  = "\x1b[B"
	enter = "\n"
	exit  = down + down + enter
)

type noRegistry struct{}

func (noRegistry) DefaultHandler(string) (string, error) {
	return "", nil
}

func testVolumes(context.Context) ([]volumes.Volume, error) {
	return []volumes.Volume{
		{ID: "C", Root: `C:\`, Format: "NTFS", Total: 200 << 30, Free: 12 << 30},
		{ID: "D", Root: `D:\`, Format: "FAT32", Total: 8 << 30, Free: 1 << 30},
	}, nil
}

func newTestStore() *memfile.Store {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return memfile.NewWindows().
		AddFile(`C:\T\a.txt`, 100, created).
		AddFile(`C:\T\tool.exe`, 100, created).
		AddDir(`D:\Games`)
}

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *launch.MockLauncher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	launcher := launch.NewMockLauncher(ctrl)
	out := new(bytes.Buffer)
	cfg := vtsettings.Default()
	cfg.TextEditor = "notepad.exe"
	app := New(Deps{
		Console:  console.NewStream(strings.NewReader(input), out),
		Store:    newTestStore(),
		Config:   cfg,
		Registry: noRegistry{},
		Launcher: launcher,
		Volumes:  testVolumes,
	})
	return app, out, launcher
}

func TestApp_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("exit", func(t *testing.T) {
		app, out, _ := newTestApp(t, exit)
		require.NoError(t, app.Run(ctx))
		assert.Contains(t, out.String(), "Available volumes on mem:\n"+`C:\ - NTFS - 12 GB free out of 200 GB`)
		assert.Contains(t, out.String(), "> Explore")
	})

	t.Run("escape_exits", func(t *testing.T) {
		app, _, _ := newTestApp(t, "\x1b")
		require.NoError(t, app.Run(ctx))
	})

	t.Run("input_ends", func(t *testing.T) {
		app, _, _ := newTestApp(t, down)
		require.NoError(t, app.Run(ctx))
	})

	t.Run("explore_and_launch", func(t *testing.T) {
		input := enter + // Explore
			enter + // C:\
			"1\n" + // T
			"1\n" + // a.txt
			"y" + "k" +
			"0\n" + "0\n" + // up to the volume prompt
			"\n" + // leave the session
			"k" +
			exit
		app, out, launcher := newTestApp(t, input)
		launcher.EXPECT().Launch("notepad.exe", `C:\T\a.txt`).Return(nil)
		require.NoError(t, app.Run(ctx))
		assert.Contains(t, out.String(), `Launching C:\T\a.txt`)
		assert.Contains(t, out.String(), "Choose a volume:\n> "+`C:\ - NTFS`)
	})

	t.Run("explore_second_volume", func(t *testing.T) {
		input := enter + down + enter + "0\n" + "\n" + "k" + exit
		app, out, _ := newTestApp(t, input)
		require.NoError(t, app.Run(ctx))
		assert.Contains(t, out.String(), `Current path: D:\`)
		assert.Contains(t, out.String(), "[1] Games - Created")
	})

	t.Run("explore_cancelled", func(t *testing.T) {
		app, out, _ := newTestApp(t, enter+"\x1b"+exit)
		require.NoError(t, app.Run(ctx))
		assert.NotContains(t, out.String(), "Current path:")
	})

	t.Run("launch_by_path_default_application", func(t *testing.T) {
		input := down + enter + `C:\T\tool.exe` + "\n" + "k" + exit
		app, out, launcher := newTestApp(t, input)
		launcher.EXPECT().Open(`C:\T\tool.exe`).Return(nil)
		require.NoError(t, app.Run(ctx))
		assert.Contains(t, out.String(), "No associated program found for .exe files. Using default system application.")
	})

	t.Run("launch_by_path_invalid", func(t *testing.T) {
		input := down + enter + `C:\T\missing.txt` + "\n" + "k" + exit
		app, out, _ := newTestApp(t, input)
		require.NoError(t, app.Run(ctx))
		assert.Contains(t, out.String(), "Invalid path.")
	})

	t.Run("launch_by_path_folder", func(t *testing.T) {
		input := down + enter + `C:\T` + "\n" + "k" + exit
		app, out, _ := newTestApp(t, input)
		require.NoError(t, app.Run(ctx))
		assert.Contains(t, out.String(), "Invalid path.")
	})

	t.Run("launch_by_path_fails", func(t *testing.T) {
		input := down + enter + `C:\T\a.txt` + "\n" + "k" + exit
		app, out, launcher := newTestApp(t, input)
		launcher.EXPECT().Launch("notepad.exe", `C:\T\a.txt`).Return(errors.New("not found"))
		require.NoError(t, app.Run(ctx))
		assert.Contains(t, out.String(), `Error launching file: failed to launch C:\T\a.txt with notepad.exe: not found`)
	})

	t.Run("volumes_error", func(t *testing.T) {
		app, out, _ := newTestApp(t, enter+"k"+exit)
		app.volumes = func(context.Context) ([]volumes.Volume, error) {
			return nil, errors.New("no partitions")
		}
		require.NoError(t, app.Run(ctx))
		assert.Contains(t, out.String(), "Failed to list volumes: no partitions")
	})
}
