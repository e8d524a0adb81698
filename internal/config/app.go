// Package config holds the settings of the ragcfg command itself: where the
// RAG configuration document lives, which notebook the walkthrough points
// at, and whether debug logging is on.
//
// Settings are assembled from, in increasing priority:
//  1. built-in defaults
//  2. environment variables (optionally seeded from a .env file)
//  3. command-line flags
//
// They never overlay values inside the RAG document.
package config

import (
	"github.com/sandevgo/ragcfg/internal/ragconfig"
)

// Defaults for [Settings].
const (
	DefaultNotebook   = "RAG/Rag_test.ipynb"
	DefaultDotEnvFile = ".env"
)

type Settings struct {
	// ConfigPath is the RAG configuration document.
	ConfigPath string `env:"RAGCFG_CONFIG_PATH"`
	// Notebook is the notebook the walkthrough tells the user to edit.
	Notebook string `env:"RAGCFG_NOTEBOOK"`
	// Debug enables debug logging.
	Debug bool `env:"RAGCFG_DEBUG"`
}

// Flags are the command-line overrides. Zero values mean "not given".
type Flags struct {
	ConfigPath string
	Debug      bool
}

func defaults() *Settings {
	return &Settings{
		ConfigPath: ragconfig.DefaultPath,
		Notebook:   DefaultNotebook,
	}
}

func (s Settings) GetConfigPath() string {
	return s.ConfigPath
}

func (s Settings) GetNotebook() string {
	return s.Notebook
}

func (s Settings) IsDebug() bool {
	return s.Debug
}
