//go:build darwin

package assoc

// NewSystemRegistry returns a registry that knows no associations.
// Launch Services is not reachable without cgo, `open` picks the default application instead.
func NewSystemRegistry() Registry {
	return noRegistry{}
}

type noRegistry struct{}

func (noRegistry) DefaultHandler(string) (string, error) {
	return "", nil
}
