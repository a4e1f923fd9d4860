//go:build windows

package assoc

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// NewSystemRegistry reads associations from HKEY_CLASSES_ROOT.
func NewSystemRegistry() Registry {
	return windowsRegistry{}
}

type windowsRegistry struct{}

func (windowsRegistry) DefaultHandler(ext string) (string, error) {
	fileType, err := readDefaultValue(ext)
	if err != nil || fileType == "" {
		return "", err
	}
	return readDefaultValue(fileType + `\shell\open\command`)
}

func readDefaultValue(path string) (string, error) {
	k, err := registry.OpenKey(registry.CLASSES_ROOT, path, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to open HKCR\\%s: %w", path, err)
	}
	defer func() {
		_ = k.Close()
	}()
	value, valueType, err := k.GetStringValue("")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read HKCR\\%s: %w", path, err)
	}
	if valueType == registry.EXPAND_SZ {
		if value, err = registry.ExpandString(value); err != nil {
			return "", err
		}
	}
	return value, nil
}
