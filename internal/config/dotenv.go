package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/sandevgo/ragcfg/pkg/env"
)

// SaveDotEnv records the non-zero settings in the .env file at path so later
// runs pick them up without flags. Unrelated variables already in the file
// are kept.
func SaveDotEnv(path string, s *Settings) error {
	existing, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if existing == nil {
		existing = make(map[string]string)
	}

	values, err := env.ToMap(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := mergo.Merge(&existing, values, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge settings: %w", err)
	}

	if err := godotenv.Write(existing, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
