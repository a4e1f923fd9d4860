package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/filetug/voltug/pkg/console"
	"github.com/filetug/voltug/pkg/console/consoletest"
	"github.com/filetug/voltug/pkg/vtsettings"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps settings and logs out of the user's home dir.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(vtsettings.ConfigEnvVar, filepath.Join(dir, "voltug.yaml"))
	*logFile = filepath.Join(dir, "voltug.log")
	oldNewConsole := newConsole
	t.Cleanup(func() {
		*logFile = ""
		newConsole = oldNewConsole
	})
	newConsole = func(plain bool) (console.Console, func(), error) {
		return console.NewStream(strings.NewReader(""), io.Discard), func() {}, nil
	}
}

func TestMainRoot(t *testing.T) {
	isolate(t)
	runCalled := false

	oldRun := run
	defer func() {
		run = oldRun
	}()
	run = func(app application) {
		runCalled = true
	}

	main()

	if !runCalled {
		t.Fatal("expected main function to call run")
	}
}

func TestMain_RecoversFromPanic(t *testing.T) {
	isolate(t)
	oldRun, oldExit, oldStop := run, osExit, pprofStopCPUProfile
	defer func() {
		run, osExit, pprofStopCPUProfile = oldRun, oldExit, oldStop
	}()
	run = func(app application) {
		panic("boom")
	}
	exitCode := -1
	osExit = func(code int) {
		exitCode = code
	}
	stopped := false
	pprofStopCPUProfile = func() {
		stopped = true
	}

	main()

	assert.Equal(t, 1, exitCode)
	assert.True(t, stopped)
}

type fakeApp struct {
	err error
}

func (f fakeApp) Run(context.Context) error {
	return fmt.Errorf("app failed: %w", f.err)
}

func Test_run(t *testing.T) {
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	defer func() {
		os.Stderr = oldStderr
	}()

	var expectedErr = errors.New("test error")
	run(fakeApp{err: expectedErr})

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	if !strings.Contains(output, expectedErr.Error()) {
		t.Errorf("expected stderr to contain %q, got %q", expectedErr.Error(), output)
	}
}

func Test_newVoltugApp(t *testing.T) {
	isolate(t)

	t.Run("default", func(t *testing.T) {
		app, cleanup := newVoltugApp()
		defer cleanup()
		assert.NotNil(t, app)
	})

	t.Run("with_servers", func(t *testing.T) {
		oldListen := httpListenAndServe
		defer func() { httpListenAndServe = oldListen }()
		served := make(chan string, 2)
		httpListenAndServe = func(addr string, handler http.Handler) error {
			served <- addr
			return errors.New("closed")
		}
		*pprofAddr = "localhost:6060"
		*metricsAddr = "localhost:9090"
		defer func() {
			*pprofAddr = ""
			*metricsAddr = ""
		}()
		app, cleanup := newVoltugApp()
		defer cleanup()
		assert.NotNil(t, app)
		got := []string{<-served, <-served}
		assert.ElementsMatch(t, []string{"localhost:6060", "localhost:9090"}, got)
	})

	t.Run("with_profiles", func(t *testing.T) {
		dir := t.TempDir()
		*cpuProfile = filepath.Join(dir, "cpu.prof")
		*memProfile = filepath.Join(dir, "mem.prof")
		defer func() {
			*cpuProfile = ""
			*memProfile = ""
		}()
		app, cleanup := newVoltugApp()
		assert.NotNil(t, app)
		cleanup()
		_, err := os.Stat(*cpuProfile)
		assert.NoError(t, err)
		_, err = os.Stat(*memProfile)
		assert.NoError(t, err)
	})

	t.Run("console_error_falls_back", func(t *testing.T) {
		oldNewConsole := newConsole
		defer func() { newConsole = oldNewConsole }()
		newConsole = func(plain bool) (console.Console, func(), error) {
			return nil, nil, errors.New("no tty")
		}
		app, cleanup := newVoltugApp()
		defer cleanup()
		assert.NotNil(t, app)
	})
}

func Test_loadConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "voltug.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log_level: warn\ninvalid_volume: terminate\n"), 0o644))

	*configPath = configFile
	defer func() { *configPath = "" }()
	cfg := loadConfig()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, vtsettings.InvalidVolumeTerminate, cfg.InvalidVolume)

	*logLevel = "debug"
	*logFile = filepath.Join(dir, "x.log")
	defer func() {
		*logLevel = ""
		*logFile = ""
	}()
	cfg = loadConfig()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "x.log"), cfg.LogFile)
}

func Test_newConsole_FullScreen(t *testing.T) {
	oldNewScreen := newScreen
	defer func() { newScreen = oldNewScreen }()
	newScreen = func() (tcell.Screen, error) {
		return consoletest.NewSimulationScreen("UTF-8"), nil
	}
	con, closeConsole, err := newConsole(false)
	require.NoError(t, err)
	assert.NotNil(t, con)
	closeConsole()

	newScreen = func() (tcell.Screen, error) {
		return nil, errors.New("no terminal")
	}
	_, _, err = newConsole(false)
	assert.ErrorContains(t, err, "no terminal")
}
