// Package voltug is the top level of the browser: the main menu,
// volume choice and launching a file by its path.
package voltug

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/filetug/voltug/pkg/aggregate"
	"github.com/filetug/voltug/pkg/assoc"
	"github.com/filetug/voltug/pkg/console"
	"github.com/filetug/voltug/pkg/files"
	"github.com/filetug/voltug/pkg/launch"
	"github.com/filetug/voltug/pkg/logging"
	"github.com/filetug/voltug/pkg/menu"
	"github.com/filetug/voltug/pkg/navigator"
	"github.com/filetug/voltug/pkg/volumes"
	"github.com/filetug/voltug/pkg/vtsettings"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const (
	menuExplore = iota
	menuLaunch
	menuExit
)

var mainMenu = []string{"Explore", "Launch", "Exit"}

const menuTitle = "Use the arrow keys to navigate and Enter to select:"

type Deps struct {
	Console  console.Console
	Store    files.Store
	Config   vtsettings.Config
	Registry assoc.Registry
	Launcher launch.Launcher
	Volumes  func(ctx context.Context) ([]volumes.Volume, error)
	// DriveLetters is true on Windows where any drive letter names a root.
	DriveLetters bool
}

type App struct {
	con      console.Console
	store    files.Store
	resolver *assoc.Resolver
	launcher launch.Launcher
	volumes  func(ctx context.Context) ([]volumes.Volume, error)
	nav      *navigator.Navigator
	log      *zap.Logger
}

func New(deps Deps) *App {
	a := &App{
		con:      deps.Console,
		store:    deps.Store,
		launcher: deps.Launcher,
		volumes:  deps.Volumes,
		log:      logging.Named("app"),
		resolver: assoc.NewResolver(deps.Registry, assoc.Config{
			TextEditor:     deps.Config.TextEditor,
			TextExtensions: deps.Config.TextExtensions,
			Fallbacks:      deps.Config.Fallbacks,
		}),
	}
	if a.volumes == nil {
		a.volumes = volumes.List
	}
	a.nav = navigator.New(navigator.Deps{
		Store:         deps.Store,
		Aggregator:    aggregate.New(deps.Store, aggregate.WithWorkers(deps.Config.AggregateWorkers)),
		Console:       deps.Console,
		Volumes:       a.volumes,
		Launch:        a.launchFile,
		InvalidVolume: deps.Config.InvalidVolume,
		DriveLetters:  deps.DriveLetters,
	})
	return a
}

// Run shows the main menu until Exit is chosen or the input ends.
func (a *App) Run(ctx context.Context) error {
	a.con.Clear()
	a.printVolumes(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := menu.Select(a.con, menuTitle, mainMenu)
		if errors.Is(err, menu.ErrCancelled) {
			choice, err = menuExit, nil
		}
		if err != nil {
			return endOfInput(err)
		}
		a.log.Debug("main menu", zap.String("choice", mainMenu[choice]))
		switch choice {
		case menuExplore:
			err = a.explore(ctx)
		case menuLaunch:
			err = a.launchByPath(ctx)
		default:
			return nil
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput treats a closed input or Ctrl+C as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, console.ErrInterrupted) {
		return nil
	}
	return err
}

func (a *App) printVolumes(ctx context.Context) {
	vols, err := a.volumes(ctx)
	if err != nil {
		a.con.WriteColored(tcell.ColorRed, fmt.Sprintf("Failed to list volumes: %v", err))
		return
	}
	a.con.WriteLine(fmt.Sprintf("Available volumes on %s:", a.store.RootTitle()))
	for _, v := range vols {
		a.con.WriteLine(v.MenuLabel())
	}
}

func (a *App) explore(ctx context.Context) error {
	vols, err := a.volumes(ctx)
	if err == nil && len(vols) == 0 {
		err = errors.New("no volumes found")
	}
	if err != nil {
		a.con.WriteColored(tcell.ColorRed, fmt.Sprintf("Failed to list volumes: %v", err))
		return console.WaitAnyKey(a.con)
	}
	labels := make([]string, len(vols))
	for i, v := range vols {
		labels[i] = v.MenuLabel()
	}
	i, err := menu.Select(a.con, "Choose a volume:", labels)
	if errors.Is(err, menu.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err = a.nav.Explore(ctx, vols[i].ID); err != nil {
		var inputErr *navigator.InputError
		if !errors.As(err, &inputErr) && !files.IsAccessDenied(err) && !files.IsPathGone(err) {
			return err
		}
		a.con.WriteColored(tcell.ColorRed, fmt.Sprintf("Error while browsing folders: %v", err))
	}
	return console.WaitAnyKey(a.con)
}

func (a *App) launchByPath(ctx context.Context) error {
	a.con.Clear()
	path, err := a.con.ReadLine("Enter the full path of the file to launch: ")
	if errors.Is(err, console.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" || !launch.FileExists(ctx, a.store, path) {
		a.con.WriteColored(tcell.ColorRed, "Invalid path.")
	} else if err = a.launchFile(ctx, path); err != nil {
		a.con.WriteColored(tcell.ColorRed, fmt.Sprintf("Error launching file: %v", err))
	}
	return console.WaitAnyKey(a.con)
}

func (a *App) launchFile(ctx context.Context, path string) error {
	a.con.WriteLine("Launching " + path)
	result, err := launch.File(ctx, a.store, a.resolver, a.launcher, path)
	if result.UsedDefault {
		a.con.WriteLine(launch.NoAssociationMessage(result.Ext))
	}
	if err != nil {
		a.log.Warn("launch failed", zap.String("path", path), zap.Error(err))
	}
	return err
}
