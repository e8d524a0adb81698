package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMap(t *testing.T) {
	t.Parallel()

	type sample struct {
		Path    string  `env:"APP_PATH,required"`
		Debug   bool    `env:"APP_DEBUG"`
		Workers int     `env:"APP_WORKERS"`
		Ratio   float64 `env:"APP_RATIO"`
		Empty   string  `env:"APP_EMPTY"`
		NoTag   string
		hidden  string `env:"APP_HIDDEN"`
	}

	got, err := ToMap(&sample{
		Path:    "conf/rag.json",
		Debug:   true,
		Workers: 4,
		Ratio:   0.25,
		NoTag:   "x",
		hidden:  "y",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"APP_PATH":    "conf/rag.json",
		"APP_DEBUG":   "true",
		"APP_WORKERS": "4",
		"APP_RATIO":   "0.25",
	}, got)
}

func TestToMap_NotStruct(t *testing.T) {
	t.Parallel()

	for _, in := range []any{nil, "x", struct{}{}, (*struct{})(nil)} {
		_, err := ToMap(in)
		assert.ErrorIs(t, err, ErrNotStruct)
	}
}
