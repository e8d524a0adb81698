package core

import "github.com/sandevgo/ragcfg/internal/ragconfig"

// ModelConfig is the part of the RAG configuration that the model switching
// commands read and write.
type ModelConfig interface {
	AgentModelPath() (string, error)
	RerankerModelPath() (string, error)
	UpdateAgentModel(newPath string) error
	UpdateRerankerModel(newPath string) error
	Path() string
}

// RAGConfig is the full read surface of a loaded configuration document.
type RAGConfig interface {
	ModelConfig
	EmbeddingServiceURL() (string, error)
	EmbeddingModelPath() (string, error)
	Milvus() (ragconfig.Section, error)
	GenerationParams() (ragconfig.Section, error)
	RetrievalParams() (ragconfig.Section, error)
	Document() map[string]any
	Validate() error
}

// NotebookConfig locates the notebook named in the walkthrough.
type NotebookConfig interface {
	GetNotebook() string
}

// GuideConfig is what the quick start guide needs to point at the right files.
type GuideConfig interface {
	NotebookConfig
	GetConfigPath() string
}
