package profiling

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func swapMemProfiling(t *testing.T, interval time.Duration) {
	t.Helper()
	origOsCreate := osCreate
	origInterval := memProfilingInterval
	origPprofWrite := pprofWriteHeapProfile
	t.Cleanup(func() {
		osCreate = origOsCreate
		memProfilingInterval = origInterval
		pprofWriteHeapProfile = origPprofWrite
	})
	memProfilingInterval = interval
}

func TestDoMemProfiling(t *testing.T) {
	swapMemProfiling(t, 10*time.Millisecond)
	var writes atomic.Int32
	pprofWriteHeapProfile = func(w io.Writer) error {
		writes.Add(1)
		_, err := w.Write([]byte("heap"))
		return err
	}
	profilePath := filepath.Join(t.TempDir(), "mem.prof")

	stop := DoMemProfiling(profilePath)
	assert.Eventually(t, func() bool { return writes.Load() >= 2 }, time.Second, 5*time.Millisecond)
	stop()
	stop()

	written := writes.Load()
	data, err := os.ReadFile(profilePath)
	assert.NoError(t, err)
	assert.Equal(t, "heap", string(data))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, written, writes.Load(), "no writes after stop")
}

func TestDoMemProfiling_ErrorOsCreate(t *testing.T) {
	swapMemProfiling(t, time.Hour)
	var creates atomic.Int32
	osCreate = func(name string) (*os.File, error) {
		creates.Add(1)
		return nil, errors.New("mock error")
	}
	stop := DoMemProfiling("invalid")
	stop()
	assert.Equal(t, int32(1), creates.Load())
}

func TestDoMemProfiling_ErrorPprofWriteHeapProfile(t *testing.T) {
	swapMemProfiling(t, time.Hour)
	pprofWriteHeapProfile = func(w io.Writer) error {
		return errors.New("mock pprof error")
	}
	profilePath := filepath.Join(t.TempDir(), "mem_err.prof")
	stop := DoMemProfiling(profilePath)
	stop()
	_, err := os.Stat(profilePath)
	assert.NoError(t, err)
}
