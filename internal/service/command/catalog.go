package command

import (
	"fmt"
	"strings"
)

// Role selects which model field a command targets.
type Role string

const (
	RoleAgent    Role = "agent"
	RoleReranker Role = "reranker"
)

// ParseRole accepts "agent" or "reranker", case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(s)) {
	case RoleAgent:
		return RoleAgent, nil
	case RoleReranker:
		return RoleReranker, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownRole, s, RoleAgent, RoleReranker)
}

// Label is the human name of the role's model.
func (r Role) Label() string {
	if r == RoleReranker {
		return "Reranker model"
	}
	return "Agent model"
}

// ModelChoice is a suggested model identifier.
type ModelChoice struct {
	ID          string
	Description string
}

var recommended = map[Role][]ModelChoice{
	RoleAgent: {
		{ID: "Qwen/Qwen2.5-1.5B-Instruct", Description: "Recommended for balance"},
		{ID: "Qwen/Qwen2.5-3B-Instruct", Description: "Better quality, needs more RAM"},
		{ID: "meta-llama/Llama-3.2-1B-Instruct", Description: "Alternative, requires HuggingFace login"},
		{ID: "./RAG/qwen2.5-1.5b", Description: "Local copy of Qwen2.5-1.5B"},
	},
	RoleReranker: {
		{ID: "BAAI/bge-reranker-base", Description: "Cross-encoder, fast"},
		{ID: "BAAI/bge-reranker-large", Description: "Cross-encoder, more accurate"},
		{ID: "BAAI/bge-reranker-v2-m3", Description: "Multilingual"},
	},
}

// RecommendedModels returns the suggested models for role.
func RecommendedModels(role Role) []ModelChoice {
	out := make([]ModelChoice, len(recommended[role]))
	copy(out, recommended[role])
	return out
}

// Example is one canned model switch from the walkthrough.
type Example struct {
	Name  string
	Title string
	Role  Role
	Model string
}

var examples = []Example{
	{Name: "qwen", Title: "Changing to Qwen2.5-1.5B-Instruct", Role: RoleAgent, Model: "Qwen/Qwen2.5-1.5B-Instruct"},
	{Name: "llama", Title: "Changing to Llama-3.2-1B-Instruct", Role: RoleAgent, Model: "meta-llama/Llama-3.2-1B-Instruct"},
	{Name: "reranker", Title: "Changing to BGE reranker", Role: RoleReranker, Model: "BAAI/bge-reranker-base"},
}

// Examples returns the canned switches in display order.
func Examples() []Example {
	out := make([]Example, len(examples))
	copy(out, examples)
	return out
}

// FindExample looks an example up by name.
func FindExample(name string) (Example, int, error) {
	for i, ex := range examples {
		if ex.Name == strings.ToLower(name) {
			return ex, i + 1, nil
		}
	}
	names := make([]string, len(examples))
	for i, ex := range examples {
		names[i] = ex.Name
	}
	return Example{}, 0, fmt.Errorf("%w: %q (available: %s)", ErrUnknownExample, name, strings.Join(names, ", "))
}
