package files

import (
	"context"
)

// Store is the filesystem collaborator the navigator and the aggregator read from.
// Paths passed to and returned by a Store are absolute.
type Store interface {
	RootTitle() string
	ListDirs(ctx context.Context, path string) ([]string, error)
	ListFiles(ctx context.Context, path string) ([]string, error)
	Stat(ctx context.Context, path string) (Info, error)
	Join(dir, name string) string
	Base(path string) string
	// Parent returns false when path is a volume root.
	Parent(path string) (string, bool)
}
