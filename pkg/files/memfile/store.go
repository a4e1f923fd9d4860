// Package memfile is an in-memory files.Store.
// It uses a configurable separator so Windows style trees can be built on any OS.
package memfile

import (
	"context"
	"io/fs"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/filetug/voltug/pkg/files"
)

var _ files.Store = (*Store)(nil)

type node struct {
	info     files.Info
	children map[string]struct{}
	listErr  error
	statErr  error
}

type Store struct {
	mu    sync.RWMutex
	title string
	sep   string
	nodes map[string]*node
}

// New creates an empty store. Roots are paths that end with sep and contain
// no other separator, e.g. `C:\` or `/`.
func New(title, sep string) *Store {
	return &Store{
		title: title,
		sep:   sep,
		nodes: make(map[string]*node),
	}
}

func NewWindows() *Store {
	return New("mem", `\`)
}

func NewUnix() *Store {
	return New("mem", "/")
}

func (s *Store) AddDir(path string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(path, files.KindFolder)
	return s
}

func (s *Store) AddFile(path string, size int64, created time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.add(path, files.KindFile)
	n.info.Size = size
	n.info.Created = created
	return s
}

// SetCreated sets the creation time reported for a folder.
func (s *Store) SetCreated(path string, created time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.nodes[path]; ok {
		n.info.Created = created
	}
	return s
}

// SetLink marks path as a symbolic link. Its content stays browsable.
func (s *Store) SetLink(path string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.nodes[path]; ok {
		n.info.Link = true
	}
	return s
}

// Deny makes listing path fail with a permission error. Stat keeps working,
// the same way a folder without read permission can still be stat'ed.
func (s *Store) Deny(path string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.nodes[path]; ok {
		n.listErr = &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	return s
}

// DenyStat makes Stat of path fail with a permission error.
func (s *Store) DenyStat(path string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.nodes[path]; ok {
		n.statErr = &fs.PathError{Op: "stat", Path: path, Err: fs.ErrPermission}
	}
	return s
}

// Remove deletes path and its subtree.
func (s *Store) Remove(path string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := path
	if !strings.HasSuffix(prefix, s.sep) {
		prefix += s.sep
	}
	for p := range s.nodes {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(s.nodes, p)
		}
	}
	if parent, ok := s.parent(path); ok {
		if pn, exists := s.nodes[parent]; exists {
			delete(pn.children, s.base(path))
		}
	}
	return s
}

func (s *Store) add(path string, kind files.Kind) *node {
	if n, ok := s.nodes[path]; ok {
		n.info.Kind = kind
		return n
	}
	n := &node{
		info:     files.NewInfo(s.base(path), path, kind),
		children: make(map[string]struct{}),
	}
	s.nodes[path] = n
	if parent, ok := s.parent(path); ok {
		pn, exists := s.nodes[parent]
		if !exists {
			pn = s.add(parent, files.KindFolder)
		}
		pn.children[n.info.Name] = struct{}{}
	}
	return n
}

func (s *Store) RootTitle() string {
	return s.title
}

func (s *Store) ListDirs(ctx context.Context, path string) ([]string, error) {
	return s.list(ctx, path, files.KindFolder)
}

func (s *Store) ListFiles(ctx context.Context, path string) ([]string, error) {
	return s.list(ctx, path, files.KindFile)
}

func (s *Store) list(ctx context.Context, path string, kind files.Kind) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[path]
	if !ok || n.info.Kind != files.KindFolder {
		return nil, files.Classify(&fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist})
	}
	if n.listErr != nil {
		return nil, files.Classify(n.listErr)
	}
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	paths := make([]string, 0, len(names))
	for _, name := range names {
		childPath := s.Join(path, name)
		if child, exists := s.nodes[childPath]; exists && child.info.Kind == kind {
			paths = append(paths, childPath)
		}
	}
	return paths, nil
}

func (s *Store) Stat(ctx context.Context, path string) (files.Info, error) {
	if err := ctx.Err(); err != nil {
		return files.Info{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[path]
	if !ok {
		return files.Info{}, files.Classify(&fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist})
	}
	if n.statErr != nil {
		return files.Info{}, files.Classify(n.statErr)
	}
	return n.info, nil
}

func (s *Store) Join(dir, name string) string {
	if strings.HasSuffix(dir, s.sep) {
		return dir + name
	}
	return dir + s.sep + name
}

func (s *Store) Base(path string) string {
	return s.base(path)
}

func (s *Store) base(path string) string {
	if s.isRoot(path) {
		return path
	}
	trimmed := strings.TrimSuffix(path, s.sep)
	return trimmed[strings.LastIndex(trimmed, s.sep)+1:]
}

func (s *Store) Parent(path string) (string, bool) {
	return s.parent(path)
}

func (s *Store) parent(path string) (string, bool) {
	if s.isRoot(path) {
		return "", false
	}
	trimmed := strings.TrimSuffix(path, s.sep)
	i := strings.LastIndex(trimmed, s.sep)
	if i < 0 {
		return "", false
	}
	if root := trimmed[:i+len(s.sep)]; s.isRoot(root) {
		return root, true
	}
	return trimmed[:i], true
}

func (s *Store) isRoot(path string) bool {
	return strings.HasSuffix(path, s.sep) && strings.Count(path, s.sep) == 1
}
