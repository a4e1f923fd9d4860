// Package aggregate computes the total size of a directory subtree and the
// latest creation time of the files in it.
package aggregate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/filetug/voltug/pkg/files"
	"github.com/filetug/voltug/pkg/fsutils"
	"github.com/filetug/voltug/pkg/logging"
	"github.com/filetug/voltug/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Summary of a directory subtree.
// Latest is the zero time when the subtree has no files.
type Summary struct {
	Size   int64
	Latest time.Time
	Files  int
	Dirs   int
}

func (s *Summary) add(other Summary) {
	s.Size += other.Size
	s.Files += other.Files
	s.Dirs += other.Dirs
	if other.Latest.After(s.Latest) {
		s.Latest = other.Latest
	}
}

type Aggregator struct {
	store   files.Store
	workers int
	log     *zap.Logger
}

type Option func(a *Aggregator)

// WithWorkers sets how many top level subdirectories are aggregated concurrently.
func WithWorkers(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.workers = n
		}
	}
}

func New(store files.Store, options ...Option) *Aggregator {
	a := &Aggregator{
		store:   store,
		workers: 1,
		log:     logging.Named("aggregate"),
	}
	for _, o := range options {
		o(a)
	}
	return a
}

// Aggregate walks path recursively. Linked folders below path are counted
// but not entered. Entries removed during the walk are skipped. Any other
// error aborts the walk and no partial summary is returned.
func (a *Aggregator) Aggregate(ctx context.Context, path string) (summary Summary, err error) {
	started := time.Now()
	defer func() {
		metrics.RecordAggregation(time.Since(started), err)
		if err != nil {
			a.log.Debug("aggregation failed", zap.String("path", path), zap.Error(err))
			summary = Summary{}
			return
		}
		a.log.Debug("aggregated",
			zap.String("path", path),
			zap.String("size", fsutils.GetSizeShortText(summary.Size)),
			zap.Int("files", summary.Files),
		)
	}()
	if a.workers <= 1 {
		return a.walk(ctx, path)
	}
	return a.walkParallel(ctx, path)
}

func (a *Aggregator) walk(ctx context.Context, path string) (Summary, error) {
	summary, dirs, err := a.sumFiles(ctx, path)
	if err != nil {
		return Summary{}, err
	}
	for _, dir := range dirs {
		sub, err := a.walkDir(ctx, dir)
		if err != nil {
			return Summary{}, err
		}
		summary.add(sub)
	}
	return summary, nil
}

// walkDir walks a subdirectory. One removed since its parent was listed counts as empty.
func (a *Aggregator) walkDir(ctx context.Context, dir string) (Summary, error) {
	sub, err := a.walk(ctx, dir)
	if files.IsPathGone(err) {
		a.log.Debug("folder vanished", zap.String("path", dir))
		return Summary{}, nil
	}
	return sub, err
}

func (a *Aggregator) walkParallel(ctx context.Context, path string) (Summary, error) {
	summary, dirs, err := a.sumFiles(ctx, path)
	if err != nil {
		return Summary{}, err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	var mu sync.Mutex
	for _, dir := range dirs {
		g.Go(func() error {
			sub, err := a.walkDir(gctx, dir)
			if err != nil {
				return err
			}
			mu.Lock()
			summary.add(sub)
			mu.Unlock()
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

// sumFiles sums the immediate files of path and returns the subdirectories to walk.
func (a *Aggregator) sumFiles(ctx context.Context, path string) (summary Summary, dirs []string, err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	var filePaths []string
	if filePaths, err = a.store.ListFiles(ctx, path); err != nil {
		return summary, nil, fmt.Errorf("failed to list files of %s: %w", path, err)
	}
	for _, filePath := range filePaths {
		var info files.Info
		if info, err = a.store.Stat(ctx, filePath); err != nil {
			if files.IsPathGone(err) {
				continue
			}
			return summary, nil, fmt.Errorf("failed to stat %s: %w", filePath, err)
		}
		summary.Size += info.Size
		summary.Files++
		if info.Created.After(summary.Latest) {
			summary.Latest = info.Created
		}
	}
	var dirPaths []string
	if dirPaths, err = a.store.ListDirs(ctx, path); err != nil {
		return summary, nil, fmt.Errorf("failed to list folders of %s: %w", path, err)
	}
	summary.Dirs = len(dirPaths)
	dirs = make([]string, 0, len(dirPaths))
	for _, dirPath := range dirPaths {
		var info files.Info
		if info, err = a.store.Stat(ctx, dirPath); err != nil {
			if files.IsPathGone(err) {
				continue
			}
			return summary, nil, fmt.Errorf("failed to stat %s: %w", dirPath, err)
		}
		if !info.Link {
			dirs = append(dirs, dirPath)
		}
	}
	return summary, dirs, nil
}
