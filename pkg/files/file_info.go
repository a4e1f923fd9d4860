package files

import (
	"time"
)

type Kind int

const (
	KindFolder Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindFolder {
		return "folder"
	}
	return "file"
}

type InfoOption func(*Info)

// Info is the metadata snapshot of a single folder or file.
type Info struct {
	Name    string
	Path    string
	Kind    Kind
	Size    int64
	Created time.Time
	// Link is set for a symbolic link. Kind, Size and Created describe its
	// target, or the link itself when the target is gone.
	Link bool
}

func NewInfo(name, path string, kind Kind, o ...InfoOption) Info {
	info := Info{
		Name: name,
		Path: path,
		Kind: kind,
	}
	for _, opt := range o {
		opt(&info)
	}
	return info
}

func Size(v int64) InfoOption {
	return func(info *Info) {
		info.Size = v
	}
}

func Created(v time.Time) InfoOption {
	return func(info *Info) {
		info.Created = v
	}
}

func Link() InfoOption {
	return func(info *Info) {
		info.Link = true
	}
}

func (i Info) IsDir() bool {
	return i.Kind == KindFolder
}
