package ragconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection_Accessors(t *testing.T) {
	t.Parallel()
	sec := Section{name: "generation_params", values: map[string]any{
		"max_new_tokens": json.Number("512"),
		"temperature":    json.Number("0.7"),
		"whole_float":    json.Number("2.0"),
		"stop":           []any{"</s>", "<|im_end|>"},
		"label":          "balanced",
	}}

	n, err := sec.Int("max_new_tokens")
	require.NoError(t, err)
	assert.EqualValues(t, 512, n)

	n, err = sec.Int("whole_float")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = sec.Int("temperature")
	assert.ErrorIs(t, err, ErrConfigurationMalformed)

	f, err := sec.Float("max_new_tokens")
	require.NoError(t, err)
	assert.Equal(t, 512.0, f)

	_, err = sec.Float("label")
	assert.ErrorIs(t, err, ErrConfigurationMalformed)

	_, err = sec.String("temperature")
	assert.ErrorIs(t, err, ErrConfigurationMalformed)

	_, err = sec.String("missing")
	var knf *KeyNotFoundError
	require.ErrorAs(t, err, &knf)
	assert.Equal(t, "generation_params.missing", knf.Path)

	display, err := sec.Display("stop")
	require.NoError(t, err)
	assert.Equal(t, `["</s>","<|im_end|>"]`, display)

	display, err = sec.Display("temperature")
	require.NoError(t, err)
	assert.Equal(t, "0.7", display)
}

func TestSection_IntRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	sec := Section{name: "generation_params", values: map[string]any{
		"huge":      json.Number("1e30"),
		"negative":  json.Number("-1e30"),
		"two_pow63": json.Number("9223372036854775808"),
		"max":       json.Number("9223372036854775807"),
		"float":     float64(1e19),
	}}

	for _, key := range []string{"huge", "negative", "two_pow63", "float"} {
		_, err := sec.Int(key)
		assert.ErrorIs(t, err, ErrConfigurationMalformed, key)
	}

	n, err := sec.Int("max")
	require.NoError(t, err)
	assert.EqualValues(t, int64(9223372036854775807), n)
}

func TestGenerationConfig_RejectsOverflow(t *testing.T) {
	t.Parallel()
	s, err := Load(writeConfig(t, `{"generation_params": {"max_new_tokens": 1e30, "temperature": 0.7, "top_p": 0.9}}`))
	require.NoError(t, err)

	_, err = s.GenerationConfig()
	assert.ErrorIs(t, err, ErrConfigurationMalformed)
}

func TestSection_GetReturnsCopy(t *testing.T) {
	t.Parallel()
	sec := Section{name: "milvus", values: map[string]any{
		"index": map[string]any{"type": "HNSW"},
	}}

	v, err := sec.Get("index")
	require.NoError(t, err)
	v.(map[string]any)["type"] = "IVF_FLAT"

	again, err := sec.Get("index")
	require.NoError(t, err)
	assert.Equal(t, "HNSW", again.(map[string]any)["type"])
}

func TestWriteStarter(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")

	s, err := WriteStarter(path, false)
	require.NoError(t, err)
	agent, err := s.AgentModelPath()
	require.NoError(t, err)
	assert.Equal(t, "./RAG/qwen3-1.5b", agent)

	_, err = WriteStarter(path, false)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	require.NoError(t, s.UpdateAgentModel("Qwen/Qwen2.5-1.5B-Instruct"))
	s, err = WriteStarter(path, true)
	require.NoError(t, err)
	agent, err = s.AgentModelPath()
	require.NoError(t, err)
	assert.Equal(t, "./RAG/qwen3-1.5b", agent)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, StarterDocument(), data)
}
