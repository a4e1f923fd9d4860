// Package profiling writes CPU and heap profiles for the --cpuprofile and
// --memprofile flags.
package profiling

import (
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/filetug/voltug/pkg/logging"
	"go.uber.org/zap"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
	memProfilingInterval  = 30 * time.Second
)

// DoCPUProfiling starts CPU profiling into filePath.
// The returned func stops profiling. It is never nil.
func DoCPUProfiling(filePath string) (stop func()) {
	log := logging.Named("profiling")
	f, err := osCreate(filePath)
	if err != nil {
		log.Error("could not create CPU profile", zap.String("file", filePath), zap.Error(err))
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Error("could not start CPU profile", zap.Error(err))
		closeFile(log, f)
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		closeFile(log, f)
	}
}

// DoMemProfiling rewrites the heap profile at filePath every memProfilingInterval
// until the returned func is called. The returned func writes a final profile.
func DoMemProfiling(filePath string) (stop func()) {
	log := logging.Named("profiling")
	done := make(chan struct{})
	var wg sync.WaitGroup
	interval := memProfilingInterval
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				writeHeapProfile(log, filePath)
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
			writeHeapProfile(log, filePath)
		})
	}
}

func writeHeapProfile(log *zap.Logger, filePath string) {
	f, err := osCreate(filePath)
	if err != nil {
		log.Error("could not create memory profile", zap.String("file", filePath), zap.Error(err))
		return
	}
	defer closeFile(log, f)
	runtime.GC() // get up-to-date statistics
	if err = pprofWriteHeapProfile(f); err != nil {
		log.Error("could not write memory profile", zap.Error(err))
	}
}

func closeFile(log *zap.Logger, c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warn("failed to close profile file", zap.Error(err))
	}
}
