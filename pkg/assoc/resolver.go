// Package assoc resolves which executable opens a file of a given extension.
package assoc

import (
	"slices"
	"strings"

	"github.com/filetug/voltug/pkg/logging"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_registry.go -package=assoc . Registry

// Registry is the OS file type association registry.
type Registry interface {
	// DefaultHandler returns the open command template registered for ext,
	// or an empty string when there is none.
	DefaultHandler(ext string) (string, error)
}

type Source int

const (
	SourceRegistry Source = iota + 1
	SourceTextEditor
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceRegistry:
		return "registry"
	case SourceTextEditor:
		return "text_editor"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

type Association struct {
	Ext        string
	Executable string
	Source     Source
}

type Config struct {
	TextEditor     string
	TextExtensions []string
	// Fallbacks maps an extension to an executable used when the registry has nothing.
	Fallbacks map[string]string
}

type Resolver struct {
	registry Registry
	cfg      Config
	log      *zap.Logger
}

func NewResolver(registry Registry, cfg Config) *Resolver {
	normalized := Config{
		TextEditor: cfg.TextEditor,
		Fallbacks:  make(map[string]string, len(cfg.Fallbacks)),
	}
	for _, ext := range cfg.TextExtensions {
		normalized.TextExtensions = append(normalized.TextExtensions, NormalizeExt(ext))
	}
	for ext, exe := range cfg.Fallbacks {
		normalized.Fallbacks[NormalizeExt(ext)] = exe
	}
	return &Resolver{
		registry: registry,
		cfg:      normalized,
		log:      logging.Named("assoc"),
	}
}

// Resolve looks ext up in the registry, then in the text extensions,
// then in the fallbacks. Nothing is cached.
// It returns false when the OS default application should be used.
func (r *Resolver) Resolve(ext string) (Association, bool) {
	ext = NormalizeExt(ext)
	if ext == "" {
		return Association{}, false
	}
	if r.registry != nil {
		command, err := r.registry.DefaultHandler(ext)
		if err != nil {
			r.log.Warn("registry lookup failed", zap.String("ext", ext), zap.Error(err))
		} else if exe := ExecutableFromCommand(command); exe != "" {
			return Association{Ext: ext, Executable: exe, Source: SourceRegistry}, true
		}
	}
	if r.cfg.TextEditor != "" && slices.Contains(r.cfg.TextExtensions, ext) {
		return Association{Ext: ext, Executable: r.cfg.TextEditor, Source: SourceTextEditor}, true
	}
	if exe := r.cfg.Fallbacks[ext]; exe != "" {
		return Association{Ext: ext, Executable: exe, Source: SourceFallback}, true
	}
	r.log.Debug("no association", zap.String("ext", ext))
	return Association{}, false
}

// NormalizeExt lower-cases ext and makes sure it starts with a dot.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ExecutableFromCommand extracts the executable from an open command template
// such as `"C:\Program Files\App\app.exe" "%1"` or `C:\Windows\notepad.exe %1`.
func ExecutableFromCommand(command string) string {
	command = strings.TrimSpace(command)
	if command == "" {
		return ""
	}
	if command[0] == '"' {
		if end := strings.IndexByte(command[1:], '"'); end >= 0 {
			return command[1 : end+1]
		}
		return strings.Trim(command, `"`)
	}
	if i := strings.Index(strings.ToLower(command), ".exe"); i >= 0 {
		return command[:i+len(".exe")]
	}
	return strings.Fields(command)[0]
}
