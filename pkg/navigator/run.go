package navigator

import (
	"context"
	"errors"
	"fmt"

	"github.com/filetug/voltug/pkg/console"
	"github.com/filetug/voltug/pkg/files"
	"github.com/filetug/voltug/pkg/vtsettings"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const choicePrompt = "Enter the number of a folder or file to open (0 or Esc to go back): "

// Run drives a browsing session until it terminates or the console fails.
// io.EOF and console.ErrInterrupted from the console are returned as is.
func (n *Navigator) Run(ctx context.Context, st *State) error {
	return n.run(ctx, st, nil)
}

// Explore starts a browsing session at the root of the volume with the given letter.
func (n *Navigator) Explore(ctx context.Context, letter string) (*State, error) {
	st := NewState()
	listing, err := n.EnterVolume(ctx, st, letter)
	if err != nil {
		return st, err
	}
	return st, n.run(ctx, st, &listing)
}

func (n *Navigator) run(ctx context.Context, st *State, pending *Listing) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch st.Phase {
		case PhaseTerminated:
			n.log.Debug("session terminated")
			return nil
		case PhaseAwaitingVolume:
			listing, err := n.chooseVolume(ctx, st)
			if err != nil {
				return err
			}
			pending = listing
		case PhaseInFolder:
			var listing Listing
			if pending != nil && pending.Path == st.Path {
				listing = *pending
			} else {
				var err error
				if listing, err = n.List(ctx, st.Path); err != nil {
					n.report("Error while browsing folders: %v", err)
					n.log.Warn("current folder can not be listed", zap.String("path", st.Path), zap.Error(err))
					if l, ok := n.retreat(ctx, st); ok {
						pending = &l
					}
					continue
				}
			}
			next, err := n.step(ctx, st, listing)
			if err != nil {
				return err
			}
			pending = next
		}
	}
}

// chooseVolume prompts for a volume letter. An empty answer or Escape ends the session.
func (n *Navigator) chooseVolume(ctx context.Context, st *State) (*Listing, error) {
	n.con.Clear()
	n.flushNotice()
	n.printVolumes(ctx)
	letter, err := n.con.ReadLine("Choose a volume: ")
	if errors.Is(err, console.ErrCancelled) {
		letter, err = "", nil
	}
	if err != nil {
		return nil, err
	}
	if letter == "" {
		st.terminate()
		return nil, nil
	}
	listing, err := n.EnterVolume(ctx, st, letter)
	if err == nil {
		return &listing, nil
	}
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		n.report("Invalid volume letter: %s", inputErr.Reason)
		if n.invalidVolume == vtsettings.InvalidVolumeTerminate {
			st.terminate()
			n.con.WriteLine(n.notice)
			n.notice = ""
		}
		return nil, nil
	}
	n.report("Error while browsing folders: %v", err)
	return nil, nil
}

func (n *Navigator) printVolumes(ctx context.Context) {
	vols, err := n.volumes(ctx)
	if err != nil {
		n.con.WriteColored(tcell.ColorRed, fmt.Sprintf("Failed to list volumes: %v", err))
		return
	}
	n.con.WriteLine("Available volumes:")
	for _, v := range vols {
		n.con.WriteLine(v.MenuLabel())
	}
}

// step renders listing, reads one choice and applies it.
// It returns the listing of the folder moved to, if any.
func (n *Navigator) step(ctx context.Context, st *State, listing Listing) (*Listing, error) {
	n.render(listing)
	choice, err := n.readChoice()
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		n.report("Invalid choice: %v", err)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	selection, err := Decode(listing, choice)
	if err != nil {
		n.report("Invalid choice: %v", err)
		return nil, nil
	}
	switch selection.Action {
	case ActionAscend:
		next, err := n.Ascend(ctx, st)
		if err != nil {
			n.report("Error while browsing folders: %v", err)
			return nil, nil
		}
		if st.Phase != PhaseInFolder {
			return nil, nil
		}
		return &next, nil
	case ActionDescend:
		next, err := n.Descend(ctx, st, selection.Entry.Path)
		if err != nil {
			if errors.Is(err, files.ErrAccessDenied) {
				n.report("Access denied for %s", selection.Entry.Name)
			} else {
				n.report("Error while browsing folders: %v", err)
			}
			return nil, nil
		}
		return &next, nil
	default:
		return nil, n.openFile(ctx, selection.Entry)
	}
}

// readChoice reads lines until one holds a number. Escape means 0.
func (n *Navigator) readChoice() (int, error) {
	for {
		text, err := n.con.ReadLine(choicePrompt)
		if errors.Is(err, console.ErrCancelled) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		choice, err := ParseChoice(text)
		if errors.Is(err, ErrEmptyChoice) {
			continue
		}
		return choice, err
	}
}

func (n *Navigator) openFile(ctx context.Context, entry Entry) error {
	yes, err := console.Confirm(n.con, fmt.Sprintf("Do you want to open the file %s?", entry.Name))
	if err != nil || !yes {
		return err
	}
	if n.launch == nil {
		return nil
	}
	if err = n.launch(ctx, entry.Path); err != nil {
		n.con.WriteColored(tcell.ColorRed, fmt.Sprintf("Error launching file: %v", err))
	}
	return console.WaitAnyKey(n.con)
}

func (n *Navigator) flushNotice() {
	if n.notice != "" {
		n.con.WriteColored(tcell.ColorYellow, n.notice)
		n.notice = ""
	}
}
