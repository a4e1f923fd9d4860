//go:build !windows && !darwin

package launch

func openDefault(path string) error {
	return start(execCommand("xdg-open", path))
}
