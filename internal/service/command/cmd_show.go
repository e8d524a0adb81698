package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sandevgo/ragcfg/internal/core"
	"github.com/sandevgo/ragcfg/internal/ragconfig"
	"github.com/sandevgo/ragcfg/pkg/log"
	"gopkg.in/yaml.v3"
)

// Format is the output format of [ShowCommand].
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, s)
}

type field struct {
	key   string
	label string
}

var (
	milvusFields = []field{
		{"url", "URL"},
		{"db_name", "Database"},
		{"collection_name", "Collection"},
	}
	generationFields = []field{
		{"max_new_tokens", "Max Tokens"},
		{"temperature", "Temperature"},
		{"top_p", "Top-p"},
	}
	retrievalFields = []field{
		{"top_k", "Top-k"},
		{"similarity_threshold", "Similarity Threshold"},
		{"reranker_threshold", "Reranker Threshold"},
	}
)

type ShowCommand struct {
	cfg       core.RAGConfig
	format    Format
	formatter *ResponseFormatter
}

func NewShowCommand(cfg core.RAGConfig, format Format) *ShowCommand {
	return &ShowCommand{
		cfg:       cfg,
		format:    format,
		formatter: NewResponseFormatter(),
	}
}

func (c *ShowCommand) Name() string {
	return "show"
}

func (c *ShowCommand) Description() string {
	return "View the current RAG configuration"
}

func (c *ShowCommand) Execute(ctx context.Context, args []string) (string, error) {
	log.FromCtx(ctx).Debug().
		Str("path", c.cfg.Path()).
		Str("format", string(c.format)).
		Msg("rendering configuration")

	switch c.format {
	case FormatJSON:
		return c.json()
	case FormatYAML:
		return c.yaml()
	default:
		return c.text()
	}
}

func (c *ShowCommand) text() (string, error) {
	f := c.formatter

	agent, err := c.cfg.AgentModelPath()
	if err != nil {
		return "", err
	}
	reranker, err := c.cfg.RerankerModelPath()
	if err != nil {
		return "", err
	}
	embedModel, err := c.cfg.EmbeddingModelPath()
	if err != nil {
		return "", err
	}
	embedURL, err := c.cfg.EmbeddingServiceURL()
	if err != nil {
		return "", err
	}

	milvus, err := c.cfg.Milvus()
	if err != nil {
		return "", err
	}
	milvusLines, err := c.sectionLines(milvus, milvusFields)
	if err != nil {
		return "", err
	}

	gen, err := c.cfg.GenerationParams()
	if err != nil {
		return "", err
	}
	genLines, err := c.sectionLines(gen, generationFields)
	if err != nil {
		return "", err
	}

	ret, err := c.cfg.RetrievalParams()
	if err != nil {
		return "", err
	}
	retLines, err := c.sectionLines(ret, retrievalFields)
	if err != nil {
		return "", err
	}

	return f.Combine(
		f.Banner("Current RAG System Configuration", "=", ruleWidth),
		f.Info("📦", "Models"),
		f.Label("Agent Model", agent),
		f.Label("Reranker Model", reranker),
		f.Label("Embedding Model", embedModel),
		f.Info("🔗", "Services"),
		f.Label("Embedding Service", embedURL),
		f.Info("💾", "Milvus Database"),
		milvusLines,
		f.Info("⚙️ ", "Generation Parameters"),
		genLines,
		f.Info("🔍", "Retrieval Parameters"),
		retLines,
	), nil
}

// sectionLines renders the well-known fields first, then any extra keys.
func (c *ShowCommand) sectionLines(sec ragconfig.Section, known []field) (string, error) {
	var sb strings.Builder
	seen := make(map[string]bool, len(known))

	for _, fl := range known {
		v, err := sec.Display(fl.key)
		if err != nil {
			return "", err
		}
		seen[fl.key] = true
		sb.WriteString(c.formatter.Label(fl.label, v))
	}

	for _, key := range sec.Keys() {
		if seen[key] {
			continue
		}
		v, err := sec.Display(key)
		if err != nil {
			return "", err
		}
		sb.WriteString(c.formatter.Label(key, v))
	}
	return sb.String(), nil
}

func (c *ShowCommand) json() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.cfg.Document()); err != nil {
		return "", fmt.Errorf("failed to encode json: %w", err)
	}
	return buf.String(), nil
}

func (c *ShowCommand) yaml() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(plain(c.cfg.Document())); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.String(), nil
}

// plain converts json.Number leaves to int64 or float64 so YAML emits them
// as numbers rather than strings.
func plain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plain(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plain(e)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
