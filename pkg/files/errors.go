package files

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrAccessDenied = errors.New("access denied")
	ErrPathGone     = errors.New("path does not exist")
)

// Classify wraps OS level errors into ErrAccessDenied or ErrPathGone
// so callers can tell them apart without checking platform errors.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrAccessDenied), errors.Is(err, ErrPathGone):
		return err
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrPathGone, err)
	default:
		return err
	}
}

func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

func IsPathGone(err error) bool {
	return errors.Is(err, ErrPathGone)
}
