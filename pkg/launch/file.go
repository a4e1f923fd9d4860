package launch

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/filetug/voltug/pkg/assoc"
	"github.com/filetug/voltug/pkg/files"
	"github.com/filetug/voltug/pkg/logging"
	"github.com/filetug/voltug/pkg/metrics"
	"go.uber.org/zap"
)

type Resolver interface {
	Resolve(ext string) (assoc.Association, bool)
}

// Result tells how a file was launched.
type Result struct {
	Ext         string
	Association assoc.Association
	// UsedDefault is true when no program is associated with Ext
	// and the OS default application was asked to open the file.
	UsedDefault bool
}

var goos = runtime.GOOS

// File launches path with the program associated with its extension,
// or with the OS default application when there is none.
func File(ctx context.Context, store files.Store, resolver Resolver, launcher Launcher, path string) (result Result, err error) {
	log := logging.Named("launch")
	if !FileExists(ctx, store, path) {
		return result, &Error{Path: path, Err: ErrFileNotFound}
	}
	if !ValidPath(path) {
		return result, &Error{Path: path, Err: ErrInvalidPath}
	}
	result.Ext = filepath.Ext(path)
	if a, ok := resolver.Resolve(result.Ext); ok {
		result.Association = a
		err = launcher.Launch(a.Executable, path)
		metrics.RecordLaunch("association", err)
		if err != nil {
			return result, &Error{Path: path, Executable: a.Executable, Err: err}
		}
		log.Info("launched", zap.String("path", path), zap.String("executable", a.Executable), zap.Stringer("source", a.Source))
		return result, nil
	}
	result.UsedDefault = true
	err = launcher.Open(path)
	metrics.RecordLaunch("default", err)
	if err != nil {
		return result, &Error{Path: path, Err: err}
	}
	log.Info("opened with default application", zap.String("path", path))
	return result, nil
}

// FileExists reports whether path names an existing file. Folders do not count.
func FileExists(ctx context.Context, store files.Store, path string) bool {
	info, err := store.Stat(ctx, path)
	return err == nil && !info.IsDir()
}

// ValidPath reports whether path can name a file on the current OS.
func ValidPath(path string) bool {
	if strings.TrimSpace(path) == "" || strings.ContainsRune(path, 0) {
		return false
	}
	if goos == "windows" {
		rest := path
		if len(rest) >= 2 && rest[1] == ':' {
			rest = rest[2:]
		}
		if strings.ContainsAny(rest, `<>"|?*:`) {
			return false
		}
	}
	return true
}

// NoAssociationMessage is shown when the OS default application is used.
func NoAssociationMessage(ext string) string {
	return "No associated program found for " + ext + " files. Using default system application."
}
