// Package launch starts programs for files without waiting for them.
package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/filetug/voltug/pkg/logging"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_launcher.go -package=launch . Launcher

// Launcher starts processes fire-and-forget: no waiting for completion
// and no exit code capture.
type Launcher interface {
	// Launch starts executable with path as its only argument.
	Launch(executable, path string) error
	// Open opens path with the OS default application.
	Open(path string) error
}

var execCommand = exec.Command

// start runs cmd in the background and reaps it when it exits.
func start(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	log := logging.Named("launch")
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debug("launched process exited with error", zap.String("cmd", cmd.Path), zap.Error(err))
		}
	}()
	return nil
}

// OSLauncher is the Launcher of the current OS.
type OSLauncher struct{}

var _ Launcher = OSLauncher{}

func NewOSLauncher() OSLauncher {
	return OSLauncher{}
}

func (OSLauncher) Launch(executable, path string) error {
	cmd := execCommand(executable, path)
	cmd.Dir = filepath.Dir(path)
	return start(cmd)
}

func (OSLauncher) Open(path string) error {
	return openDefault(path)
}

// Error is a failed attempt to start a program for a file.
type Error struct {
	Path       string
	Executable string // empty when the OS default application was used
	Err        error
}

func (e *Error) Error() string {
	if e.Executable == "" {
		return fmt.Sprintf("failed to open %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to launch %s with %s: %v", e.Path, e.Executable, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrFileNotFound = errors.New("file does not exist")
	ErrInvalidPath  = errors.New("invalid file path")
)
