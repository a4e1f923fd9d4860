//go:build darwin

package launch

func openDefault(path string) error {
	return start(execCommand("open", path))
}
