package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/filetug/voltug/pkg/assoc"
	"github.com/filetug/voltug/pkg/console"
	"github.com/filetug/voltug/pkg/console/tconsole"
	"github.com/filetug/voltug/pkg/files/osfile"
	"github.com/filetug/voltug/pkg/launch"
	"github.com/filetug/voltug/pkg/logging"
	"github.com/filetug/voltug/pkg/metrics"
	"github.com/filetug/voltug/pkg/profiling"
	"github.com/filetug/voltug/pkg/voltug"
	"github.com/filetug/voltug/pkg/vtsettings"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

var (
	configPath  = flag.String("config", "", "read settings from `file` (default $VOLTUG_CONFIG or ~/.voltug/voltug.yaml)")
	logLevel    = flag.String("log-level", "", "log `level`: debug, info, warn or error")
	logFile     = flag.String("log-file", "", "write logs to `file`")
	metricsAddr = flag.String("metrics", "", "serve prometheus metrics on `address` (e.g. localhost:9090)")
	plain       = flag.Bool("plain", false, "use a plain line console instead of the full screen one")
	cpuProfile  = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile  = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr   = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var pprofStopCPUProfile = pprof.StopCPUProfile

func main() {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()
	app, cleanup := newVoltugApp()
	defer cleanup()
	run(app)
}

func newVoltugApp() (app application, cleanup func()) {
	flag.Parse()

	cfg := loadConfig()
	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, OutputPath: cfg.LogFile}); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to init logging: %v\n", err)
	}
	var stops []func()
	cleanup = func() {
		for i := len(stops) - 1; i >= 0; i-- {
			stops[i]()
		}
		_ = logging.Sync()
	}

	if *pprofAddr != "" {
		serve("pprof", *pprofAddr, nil)
	}
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		serve("metrics", *metricsAddr, mux)
	}

	if *cpuProfile != "" {
		stops = append(stops, profiling.DoCPUProfiling(*cpuProfile))
	}
	if *memProfile != "" {
		stops = append(stops, profiling.DoMemProfiling(*memProfile))
	}

	con, closeConsole, err := newConsole(*plain)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "falling back to the plain console: %v\n", err)
		con, closeConsole = console.NewStream(os.Stdin, os.Stdout), func() {}
	}
	stops = append(stops, closeConsole)

	logging.L().Info("starting", zap.String("os", runtime.GOOS), zap.Bool("plain", *plain))
	app = newApp(con, cfg)
	return
}

// loadConfig reads the settings file and applies command line overrides.
func loadConfig() vtsettings.Config {
	filePath := *configPath
	if filePath == "" {
		var err error
		if filePath, err = vtsettings.ConfigFilePath(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
	cfg, err := vtsettings.Load(filePath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "using default settings: %v\n", err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	return cfg
}

func serve(name, addr string, handler http.Handler) {
	go func() {
		err := httpListenAndServe(addr, handler)
		if err != nil {
			logging.L().Warn("http server stopped", zap.String("server", name), zap.Error(err))
			_, _ = fmt.Fprintf(os.Stderr, "%s server error: %v\n", name, err)
		}
	}()
}

var newScreen = tcell.NewScreen

var newConsole = func(plain bool) (con console.Console, closeConsole func(), err error) {
	if plain {
		stream := console.NewStream(os.Stdin, os.Stdout)
		restore, err := stream.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return nil, nil, err
		}
		return stream, func() { _ = restore() }, nil
	}
	screen, err := newScreen()
	if err != nil {
		return nil, nil, err
	}
	if err = screen.Init(); err != nil {
		return nil, nil, err
	}
	c := tconsole.New(screen)
	return c, c.Close, nil
}

var newApp = func(con console.Console, cfg vtsettings.Config) application {
	return voltug.New(voltug.Deps{
		Console:      con,
		Store:        osfile.NewStore(),
		Config:       cfg,
		Registry:     assoc.NewSystemRegistry(),
		Launcher:     launch.NewOSLauncher(),
		DriveLetters: runtime.GOOS == "windows",
	})
}

type application interface {
	Run(ctx context.Context) error
}

var run = func(app application) {
	if err := app.Run(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
