// Package ragconfig loads, reads and persists the JSON configuration document
// of the RAG pipeline: model paths, service endpoints, and generation and
// retrieval parameters.
//
// A [Store] is created with [Load] and owns one in-memory copy of the
// document. Getters are pure lookups. The two mutators update a single field
// and immediately rewrite the whole file. The store keeps no locks and runs no
// goroutines: one store per file, one writer at a time.
package ragconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultPath is used by [Load] when no path is given.
const DefaultPath = "config.json"

// Key paths into the document.
var (
	agentModelPathKey      = []string{"models", "agent_model", "path"}
	rerankerModelPathKey   = []string{"models", "reranker_model", "path"}
	embeddingServiceURLKey = []string{"models", "embedding_service", "url"}
	embeddingModelPathKey  = []string{"models", "embedding_service", "model_path"}
)

// Top-level section names.
const (
	SectionModels     = "models"
	SectionMilvus     = "milvus"
	SectionGeneration = "generation_params"
	SectionRetrieval  = "retrieval_params"
)

type options struct {
	validate bool
}

// Option tunes [Load].
type Option func(*options)

// WithSchemaValidation makes [Load] check the document against the expected
// shape and fail with [ErrSchemaViolation] instead of deferring errors to
// individual getters.
func WithSchemaValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}

// Store is a loaded configuration document bound to its file path.
type Store struct {
	path string
	doc  map[string]any
}

// Load reads and parses the file at path. An empty path means [DefaultPath].
func Load(path string, opts ...Option) (*Store, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigurationMalformed, path, err)
	}

	if o.validate {
		if err := Validate(doc); err != nil {
			return nil, err
		}
	}

	return &Store{path: path, doc: doc}, nil
}

func decode(data []byte) (map[string]any, error) {
	// encoding/json would replace invalid bytes with U+FFFD and a later save
	// would write the replacement back.
	if !utf8.Valid(data) {
		return nil, errors.New("file is not valid UTF-8")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}

	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value must be an object, got %s", typeName(v))
	}
	return doc, nil
}

// Path returns the file the store was loaded from and saves to.
func (s *Store) Path() string {
	return s.path
}

// Document returns a deep copy of the whole document.
func (s *Store) Document() map[string]any {
	return copyMap(s.doc)
}

// AgentModelPath returns models.agent_model.path.
func (s *Store) AgentModelPath() (string, error) {
	return s.lookupString(agentModelPathKey...)
}

// RerankerModelPath returns models.reranker_model.path.
func (s *Store) RerankerModelPath() (string, error) {
	return s.lookupString(rerankerModelPathKey...)
}

// EmbeddingServiceURL returns models.embedding_service.url.
func (s *Store) EmbeddingServiceURL() (string, error) {
	return s.lookupString(embeddingServiceURLKey...)
}

// EmbeddingModelPath returns models.embedding_service.model_path.
func (s *Store) EmbeddingModelPath() (string, error) {
	return s.lookupString(embeddingModelPathKey...)
}

// Milvus returns a snapshot of the milvus section.
func (s *Store) Milvus() (Section, error) {
	return s.section(SectionMilvus)
}

// GenerationParams returns a snapshot of the generation_params section.
func (s *Store) GenerationParams() (Section, error) {
	return s.section(SectionGeneration)
}

// RetrievalParams returns a snapshot of the retrieval_params section.
func (s *Store) RetrievalParams() (Section, error) {
	return s.section(SectionRetrieval)
}

// UpdateAgentModel sets models.agent_model.path and saves the document.
// The value is not validated.
func (s *Store) UpdateAgentModel(newPath string) error {
	return s.setString(newPath, agentModelPathKey...)
}

// UpdateRerankerModel sets models.reranker_model.path and saves the document.
// The value is not validated.
func (s *Store) UpdateRerankerModel(newPath string) error {
	return s.setString(newPath, rerankerModelPathKey...)
}

// Save rewrites the whole file with the in-memory document. The write is not
// atomic. A failed Save leaves the in-memory document as it was, so it can be
// retried.
func (s *Store) Save() error {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return err
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// WriteTo encodes the document exactly as [Store.Save] writes it: two-space
// indentation, non-ASCII and HTML characters left as-is.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.doc); err != nil {
		return 0, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.WriteTo(w)
}

// Validate checks the loaded document against the expected shape.
func (s *Store) Validate() error {
	return Validate(s.doc)
}

func (s *Store) lookup(path ...string) (any, error) {
	var node any = s.doc
	for i, seg := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, &TypeMismatchError{
				Path: joinPath(path[:i]),
				Want: "object",
				Got:  typeName(node),
			}
		}
		next, ok := m[seg]
		if !ok {
			return nil, &KeyNotFoundError{Path: joinPath(path), Segment: seg}
		}
		node = next
	}
	return node, nil
}

func (s *Store) lookupString(path ...string) (string, error) {
	v, err := s.lookup(path...)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", &TypeMismatchError{Path: joinPath(path), Want: "string", Got: typeName(v)}
	}
	return str, nil
}

func (s *Store) lookupMap(path ...string) (map[string]any, error) {
	v, err := s.lookup(path...)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &TypeMismatchError{Path: joinPath(path), Want: "object", Got: typeName(v)}
	}
	return m, nil
}

func (s *Store) section(name string) (Section, error) {
	m, err := s.lookupMap(name)
	if err != nil {
		return Section{}, err
	}
	return Section{name: name, values: copyMap(m)}, nil
}

// setString assigns value at path. Every parent must already exist; the leaf
// is created if absent.
func (s *Store) setString(value string, path ...string) error {
	parent, err := s.lookupMap(path[:len(path)-1]...)
	if err != nil {
		return err
	}
	parent[path[len(path)-1]] = value
	return s.Save()
}

func joinPath(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}
	return strings.Join(path, ".")
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
