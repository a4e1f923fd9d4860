package navigator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/filetug/voltug/pkg/files"
	"github.com/filetug/voltug/pkg/metrics"
	"go.uber.org/zap"
)

type Status int

const (
	StatusOK Status = iota
	StatusDenied
	// StatusFailed is any per entry error other than a denied access.
	StatusFailed
)

// Entry is a listed folder or file. Size of a folder is the size of its subtree.
type Entry struct {
	Index   int
	Name    string
	Path    string
	Kind    files.Kind
	Created time.Time
	Size    int64
	// Latest is the newest file creation time in a folder subtree.
	Latest time.Time
	Status Status
	Err    error
}

// Listing holds folders then files, numbered from 1 in that order.
type Listing struct {
	Path    string
	Folders []Entry
	Files   []Entry
}

func (l Listing) Len() int {
	return len(l.Folders) + len(l.Files)
}

// At returns the entry with the 1-based display index n.
func (l Listing) At(n int) (Entry, bool) {
	switch {
	case n >= 1 && n <= len(l.Folders):
		return l.Folders[n-1], true
	case n > len(l.Folders) && n <= l.Len():
		return l.Files[n-len(l.Folders)-1], true
	default:
		return Entry{}, false
	}
}

// List reads the immediate folders and files of path. Folder sizes are aggregated
// per entry: a failure marks that entry only. An error is returned when path
// itself can not be read.
func (n *Navigator) List(ctx context.Context, path string) (listing Listing, err error) {
	defer func() {
		metrics.RecordListing(err)
	}()
	var dirs, fileNames []string
	if dirs, err = n.store.ListDirs(ctx, path); err != nil {
		return listing, fmt.Errorf("failed to list %s: %w", path, err)
	}
	if fileNames, err = n.store.ListFiles(ctx, path); err != nil {
		return listing, fmt.Errorf("failed to list %s: %w", path, err)
	}
	n.sortByName(dirs)
	n.sortByName(fileNames)

	listing.Path = path
	listing.Folders = make([]Entry, 0, len(dirs))
	for i, dir := range dirs {
		entry := n.folderEntry(ctx, i+1, dir)
		if err = ctx.Err(); err != nil {
			return Listing{}, err
		}
		listing.Folders = append(listing.Folders, entry)
	}
	listing.Files = make([]Entry, 0, len(fileNames))
	for i, filePath := range fileNames {
		entry := n.fileEntry(ctx, len(dirs)+i+1, filePath)
		if err = ctx.Err(); err != nil {
			return Listing{}, err
		}
		listing.Files = append(listing.Files, entry)
	}
	n.log.Debug("listed", zap.String("path", path),
		zap.Int("folders", len(listing.Folders)), zap.Int("files", len(listing.Files)))
	return listing, nil
}

func (n *Navigator) sortByName(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return strings.ToLower(n.store.Base(paths[i])) < strings.ToLower(n.store.Base(paths[j]))
	})
}

func (n *Navigator) folderEntry(ctx context.Context, index int, path string) Entry {
	entry := Entry{Index: index, Name: n.store.Base(path), Path: path, Kind: files.KindFolder}
	info, err := n.store.Stat(ctx, path)
	if err != nil {
		return n.failed(entry, err)
	}
	entry.Created = info.Created
	summary, err := n.aggregator.Aggregate(ctx, path)
	if err != nil {
		return n.failed(entry, err)
	}
	entry.Size = summary.Size
	entry.Latest = summary.Latest
	return entry
}

func (n *Navigator) fileEntry(ctx context.Context, index int, path string) Entry {
	entry := Entry{Index: index, Name: n.store.Base(path), Path: path, Kind: files.KindFile}
	info, err := n.store.Stat(ctx, path)
	if err != nil {
		return n.failed(entry, err)
	}
	entry.Created = info.Created
	entry.Size = info.Size
	return entry
}

func (n *Navigator) failed(entry Entry, err error) Entry {
	entry.Err = err
	if errors.Is(err, files.ErrAccessDenied) {
		entry.Status = StatusDenied
		metrics.RecordDeniedEntry()
	} else {
		entry.Status = StatusFailed
	}
	n.log.Debug("entry failed", zap.String("path", entry.Path), zap.Error(err))
	return entry
}
