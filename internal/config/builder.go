package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load builds [Settings] from defaults, the process environment (after
// loading dotEnvFile if it exists) and flags.
func Load(dotEnvFile string, flags Flags) (*Settings, error) {
	return newBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(flags).
		build()
}

type builder struct {
	layers []*Settings
	err    error
}

func newBuilder() *builder {
	return &builder{
		layers: make([]*Settings, 0, 3),
	}
}

// build merges layers in order; later non-zero fields win.
func (b *builder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("failed to build settings: %w", b.err)
	}

	settings := new(Settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(settings, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge settings: %w", err)
		}
	}
	return settings, nil
}

func (b *builder) withDefaults() *builder {
	b.layers = append(b.layers, defaults())
	return b
}

// withDotEnv seeds the environment from path. Variables already set in the
// environment are not overridden and a missing file is not an error.
func (b *builder) withDotEnv(path string) *builder {
	if path == "" {
		return b
	}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			b.err = errors.Join(b.err, fmt.Errorf("failed to stat %s: %w", path, err))
		}
		return b
	}

	if err := godotenv.Load(path); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("failed to load %s: %w", path, err))
	}
	return b
}

func (b *builder) withEnv() *builder {
	s := &Settings{}
	if err := env.Parse(s); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("failed to parse env settings: %w", err))
		return b
	}

	b.layers = append(b.layers, s)
	return b
}

func (b *builder) withFlags(flags Flags) *builder {
	b.layers = append(b.layers, &Settings{
		ConfigPath: flags.ConfigPath,
		Debug:      flags.Debug,
	})
	return b
}
