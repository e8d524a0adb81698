package ragconfig

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed starter.json
var starterDocument []byte

// ErrAlreadyExists is returned by [WriteStarter] when the target file exists
// and overwrite was not requested.
var ErrAlreadyExists = errors.New("configuration already exists")

// StarterDocument returns the bundled starter configuration.
func StarterDocument() []byte {
	out := make([]byte, len(starterDocument))
	copy(out, starterDocument)
	return out
}

// WriteStarter writes the starter configuration to path and loads it.
func WriteStarter(path string, overwrite bool) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	if err := os.WriteFile(path, starterDocument, 0644); err != nil {
		return nil, fmt.Errorf("failed to write config: %w", err)
	}
	return Load(path)
}
