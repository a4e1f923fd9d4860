package osfile

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/djherbis/times"
	"github.com/filetug/voltug/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osLstat = os.Lstat
var osHostname = os.Hostname
var timesStat = times.Stat

var _ files.Store = (*Store)(nil)

type Store struct {
	title string
}

func (s Store) RootTitle() string {
	return s.title
}

func (s Store) ListDirs(ctx context.Context, path string) ([]string, error) {
	return s.list(ctx, path, true)
}

func (s Store) ListFiles(ctx context.Context, path string) ([]string, error) {
	return s.list(ctx, path, false)
}

// list puts a symlink with the folders when its target is a folder.
// A dangling symlink is listed as a file.
func (s Store) list(ctx context.Context, path string, dirs bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := osReadDir(path)
	if err != nil {
		return nil, files.Classify(err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := osStat(entryPath)
			isDir = err == nil && target.IsDir()
		}
		if isDir != dirs {
			continue
		}
		paths = append(paths, entryPath)
	}
	return paths, nil
}

func (s Store) Stat(ctx context.Context, path string) (files.Info, error) {
	if err := ctx.Err(); err != nil {
		return files.Info{}, err
	}
	fi, err := osLstat(path)
	if err != nil {
		return files.Info{}, files.Classify(err)
	}
	name := fi.Name()
	var options []files.InfoOption
	if fi.Mode()&fs.ModeSymlink != 0 {
		options = append(options, files.Link())
		target, err := osStat(path)
		if err != nil {
			// dangling link: an empty file
			return files.NewInfo(name, path, files.KindFile,
				append(options, files.Created(fi.ModTime()))...), nil
		}
		fi = target
	}
	kind := files.KindFile
	if fi.IsDir() {
		kind = files.KindFolder
	} else {
		options = append(options, files.Size(fi.Size()))
	}
	options = append(options, files.Created(creationTime(path, fi)))
	return files.NewInfo(name, path, kind, options...), nil
}

// creationTime prefers the birth time and falls back to the modification time
// on filesystems that do not record one.
func creationTime(path string, fi os.FileInfo) time.Time {
	ts, err := timesStat(path)
	if err == nil && ts.HasBirthTime() {
		return ts.BirthTime()
	}
	return fi.ModTime()
}

func (s Store) Join(dir, name string) string {
	return filepath.Join(dir, name)
}

func (s Store) Base(path string) string {
	return filepath.Base(path)
}

func (s Store) Parent(path string) (string, bool) {
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return "", false
	}
	return parent, true
}

func NewStore() *Store {
	var store Store
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	store.title = "🖥️" + store.title
	return &store
}
