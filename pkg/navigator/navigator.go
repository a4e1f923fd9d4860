// Package navigator is the state machine behind folder browsing:
// it lists the current folder, decodes the user's choice and moves
// between folders, volumes and file launches.
package navigator

import (
	"context"
	"fmt"
	"strings"

	"github.com/filetug/voltug/pkg/aggregate"
	"github.com/filetug/voltug/pkg/console"
	"github.com/filetug/voltug/pkg/files"
	"github.com/filetug/voltug/pkg/logging"
	"github.com/filetug/voltug/pkg/volumes"
	"github.com/filetug/voltug/pkg/vtsettings"
	"go.uber.org/zap"
)

type Aggregator interface {
	Aggregate(ctx context.Context, path string) (aggregate.Summary, error)
}

type Deps struct {
	Store      files.Store
	Aggregator Aggregator
	Console    console.Console
	Volumes    func(ctx context.Context) ([]volumes.Volume, error)
	// Launch opens a file the user confirmed. Its error is reported to the user.
	Launch        func(ctx context.Context, path string) error
	InvalidVolume vtsettings.InvalidVolumePolicy
	// DriveLetters maps letters missing from the volume table to `X:\` roots.
	DriveLetters bool
}

type Navigator struct {
	store         files.Store
	aggregator    Aggregator
	con           console.Console
	volumes       func(ctx context.Context) ([]volumes.Volume, error)
	launch        func(ctx context.Context, path string) error
	invalidVolume vtsettings.InvalidVolumePolicy
	driveLetters  bool
	log           *zap.Logger

	notice string
}

func New(deps Deps) *Navigator {
	n := &Navigator{
		store:         deps.Store,
		aggregator:    deps.Aggregator,
		con:           deps.Console,
		volumes:       deps.Volumes,
		launch:        deps.Launch,
		invalidVolume: deps.InvalidVolume,
		driveLetters:  deps.DriveLetters,
		log:           logging.Named("navigator"),
	}
	if n.aggregator == nil {
		n.aggregator = aggregate.New(n.store)
	}
	if n.volumes == nil {
		n.volumes = volumes.List
	}
	if n.invalidVolume == "" {
		n.invalidVolume = vtsettings.InvalidVolumeReprompt
	}
	return n
}

// EnterVolume lists the root of the volume with the given letter and moves there.
// On any error the state stays awaiting a volume.
func (n *Navigator) EnterVolume(ctx context.Context, st *State, letter string) (Listing, error) {
	letter = normalizeLetter(letter)
	if !volumes.IsLetter(letter) {
		return Listing{}, newInputError("volume", letter, "expected a single letter")
	}
	root, err := n.volumeRoot(ctx, letter)
	if err != nil {
		return Listing{}, err
	}
	listing, err := n.List(ctx, root)
	if err != nil {
		return Listing{}, err
	}
	st.Root = root
	st.commit(root)
	n.log.Debug("entered volume", zap.String("root", root))
	return listing, nil
}

func (n *Navigator) volumeRoot(ctx context.Context, letter string) (string, error) {
	vols, err := n.volumes(ctx)
	if err != nil && !n.driveLetters {
		return "", err
	}
	if v, ok := volumes.Find(vols, letter); ok {
		return v.Root, nil
	}
	if n.driveLetters {
		return volumes.DriveRoot(letter), nil
	}
	return "", newInputError("volume", letter, "no such volume")
}

// Ascend moves to the parent folder. At the volume root it leaves the
// volume and the state awaits a volume choice.
func (n *Navigator) Ascend(ctx context.Context, st *State) (Listing, error) {
	parent, ok := n.store.Parent(st.Path)
	if !ok || st.AtVolumeRoot() {
		st.awaitVolume()
		return Listing{}, nil
	}
	listing, err := n.List(ctx, parent)
	if err != nil {
		return Listing{}, err
	}
	st.commit(parent)
	return listing, nil
}

// Descend moves into path once it has been listed.
func (n *Navigator) Descend(ctx context.Context, st *State, path string) (Listing, error) {
	listing, err := n.List(ctx, path)
	if err != nil {
		return Listing{}, err
	}
	st.commit(path)
	return listing, nil
}

// retreat moves to the closest ancestor that can still be listed
// after the current folder failed to list.
func (n *Navigator) retreat(ctx context.Context, st *State) (Listing, bool) {
	path := st.Path
	for path != st.Root {
		parent, ok := n.store.Parent(path)
		if !ok {
			break
		}
		if listing, err := n.List(ctx, parent); err == nil {
			st.commit(parent)
			return listing, true
		}
		path = parent
	}
	st.awaitVolume()
	return Listing{}, false
}

func normalizeLetter(letter string) string {
	letter = strings.TrimSpace(letter)
	if len(letter) == 2 && letter[1] == ':' {
		letter = letter[:1]
	}
	return letter
}

func (n *Navigator) report(format string, args ...any) {
	n.notice = fmt.Sprintf(format, args...)
}
