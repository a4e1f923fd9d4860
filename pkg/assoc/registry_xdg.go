//go:build !windows && !darwin

package assoc

// NewSystemRegistry resolves associations through xdg-mime and desktop entries.
func NewSystemRegistry() Registry {
	return newXDGRegistry()
}
