package vtsettings

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/filetug/voltug/pkg/assoc"
	"github.com/filetug/voltug/pkg/fsutils"
)

type InvalidVolumePolicy string

const (
	// InvalidVolumeReprompt keeps asking for a volume letter after bad input.
	InvalidVolumeReprompt InvalidVolumePolicy = "reprompt"
	// InvalidVolumeTerminate ends the browsing session on the first bad letter.
	InvalidVolumeTerminate InvalidVolumePolicy = "terminate"
)

const ConfigEnvVar = "VOLTUG_CONFIG"

type Config struct {
	TextEditor       string              `yaml:"text_editor,omitempty"`
	TextExtensions   []string            `yaml:"text_extensions,omitempty"`
	Fallbacks        map[string]string   `yaml:"fallbacks,omitempty"`
	InvalidVolume    InvalidVolumePolicy `yaml:"invalid_volume,omitempty"`
	AggregateWorkers int                 `yaml:"aggregate_workers,omitempty"`
	LogLevel         string              `yaml:"log_level,omitempty"`
	LogFormat        string              `yaml:"log_format,omitempty"`
	LogFile          string              `yaml:"log_file,omitempty"`
}

var goos = runtime.GOOS

func defaultTextEditor() string {
	switch goos {
	case "windows":
		return "notepad.exe"
	case "darwin":
		return "/System/Applications/TextEdit.app/Contents/MacOS/TextEdit"
	default:
		return "gedit"
	}
}

func Default() Config {
	logFile := ""
	if userDir, err := GetUserDir(); err == nil {
		logFile = filepath.Join(userDir, logFileName)
	}
	return Config{
		TextEditor:       defaultTextEditor(),
		TextExtensions:   []string{".txt", ".xml", ".json"},
		Fallbacks:        map[string]string{},
		InvalidVolume:    InvalidVolumeReprompt,
		AggregateWorkers: 1,
		LogLevel:         "info",
		LogFormat:        "json",
		LogFile:          logFile,
	}
}

var readYAML = fsutils.ReadYAMLFile

// ConfigFilePath returns the config path from VOLTUG_CONFIG or the user dir.
func ConfigFilePath() (string, error) {
	if v := os.Getenv(ConfigEnvVar); v != "" {
		return fsutils.ExpandHome(v), nil
	}
	userDir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userDir, configFileName), nil
}

// Load reads the config file on top of Default. A missing file is not an error.
func Load(filePath string) (Config, error) {
	cfg := Default()
	if filePath == "" {
		return cfg, nil
	}
	if err := readYAML(filePath, false, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to read config %s: %w", filePath, err)
	}
	if err := cfg.normalize(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", filePath, err)
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	switch c.InvalidVolume {
	case "":
		c.InvalidVolume = InvalidVolumeReprompt
	case InvalidVolumeReprompt, InvalidVolumeTerminate:
	default:
		return fmt.Errorf("invalid_volume must be %q or %q, got %q",
			InvalidVolumeReprompt, InvalidVolumeTerminate, c.InvalidVolume)
	}
	if c.AggregateWorkers < 1 {
		c.AggregateWorkers = 1
	}
	for i, ext := range c.TextExtensions {
		c.TextExtensions[i] = assoc.NormalizeExt(ext)
	}
	fallbacks := make(map[string]string, len(c.Fallbacks))
	for ext, exe := range c.Fallbacks {
		fallbacks[assoc.NormalizeExt(ext)] = fsutils.ExpandHome(exe)
	}
	c.Fallbacks = fallbacks
	c.LogFile = fsutils.ExpandHome(c.LogFile)
	return nil
}
