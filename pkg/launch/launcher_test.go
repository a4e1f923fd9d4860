//go:build !windows

package launch

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swapExecCommand(t *testing.T) *[][]string {
	t.Helper()
	orig := execCommand
	t.Cleanup(func() { execCommand = orig })
	var calls [][]string
	execCommand = func(name string, args ...string) *exec.Cmd {
		calls = append(calls, append([]string{name}, args...))
		return exec.Command("true")
	}
	return &calls
}

func TestOSLauncher(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true is not available")
	}
	calls := swapExecCommand(t)
	l := NewOSLauncher()
	dir := t.TempDir()
	filePath := filepath.Join(dir, "a.txt")

	require.NoError(t, l.Launch("gedit", filePath))
	require.NoError(t, l.Open(filePath))

	require.Len(t, *calls, 2)
	assert.Equal(t, []string{"gedit", filePath}, (*calls)[0])
	assert.Equal(t, filePath, (*calls)[1][1])
}

func TestOSLauncher_StartError(t *testing.T) {
	orig := execCommand
	t.Cleanup(func() { execCommand = orig })
	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command(filepath.Join(t.TempDir(), "missing-binary"))
	}
	assert.Error(t, NewOSLauncher().Launch("missing", "/tmp/a.txt"))
}

func TestError(t *testing.T) {
	err := &Error{Path: "/t/a.txt", Err: ErrFileNotFound}
	assert.EqualError(t, err, "failed to open /t/a.txt: file does not exist")
	assert.ErrorIs(t, err, ErrFileNotFound)
}
