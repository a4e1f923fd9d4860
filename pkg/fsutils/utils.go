package fsutils

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/filetug/voltug/pkg/logging"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var closeFile = func(file *os.File) error {
	return file.Close()
}

// Decoder decodes
type Decoder interface {
	Decode(o interface{}) error
}

func ReadYAMLFile(filePath string, required bool, o interface{}) (err error) {
	yamlDecoderFactory := func(r io.Reader) Decoder {
		return yaml.NewDecoder(r)
	}
	return ReadFile(filePath, required, o, yamlDecoderFactory)
}

// ReadFile decodes filePath into o. A missing file is not an error unless required.
// An empty file leaves o untouched.
func ReadFile(filePath string, required bool, o interface{}, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if err := closeFile(file); err != nil {
			logging.L().Warn("failed to close file", zap.String("path", filePath), zap.Error(err))
		}
	}()
	decoder := newDecoder(file)
	if err = decoder.Decode(o); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return err
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}
