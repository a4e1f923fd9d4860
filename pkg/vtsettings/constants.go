package vtsettings

import (
	"os"
	"path/filepath"
)

const UserDir = "~/.voltug"

const (
	configFileName = "voltug.yaml"
	logFileName    = "voltug.log"
)

var osUserHomeDir = os.UserHomeDir

func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}
