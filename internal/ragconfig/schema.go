package ragconfig

import (
	"fmt"
	"strings"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInteger
	kindNumber
)

func (k valueKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindInteger:
		return "integer"
	default:
		return "number"
	}
}

type fieldRule struct {
	path []string
	kind valueKind
	// check is an optional range check, run only when the kind matches.
	check func(float64) error
}

var schema = []fieldRule{
	{path: agentModelPathKey, kind: kindString},
	{path: rerankerModelPathKey, kind: kindString},
	{path: embeddingServiceURLKey, kind: kindString},
	{path: embeddingModelPathKey, kind: kindString},

	{path: []string{SectionMilvus, "url"}, kind: kindString},
	{path: []string{SectionMilvus, "db_name"}, kind: kindString},
	{path: []string{SectionMilvus, "collection_name"}, kind: kindString},

	{path: []string{SectionGeneration, "max_new_tokens"}, kind: kindInteger, check: positive},
	{path: []string{SectionGeneration, "temperature"}, kind: kindNumber, check: nonNegative},
	{path: []string{SectionGeneration, "top_p"}, kind: kindNumber, check: topP},

	{path: []string{SectionRetrieval, "top_k"}, kind: kindInteger, check: positive},
	{path: []string{SectionRetrieval, "similarity_threshold"}, kind: kindNumber, check: unitInterval},
	{path: []string{SectionRetrieval, "reranker_threshold"}, kind: kindNumber, check: unitInterval},
}

// Validate checks doc against the expected document shape and returns a
// [*SchemaError] listing every violation, or nil.
func Validate(doc map[string]any) error {
	var violations []string
	reported := make(map[string]bool)

	for _, rule := range schema {
		v, problem := walk(doc, rule.path)
		if problem != "" {
			// a missing section would otherwise be reported once per field
			if !reported[problem] {
				reported[problem] = true
				violations = append(violations, problem)
			}
			continue
		}
		if msg := checkKind(joinPath(rule.path), v, rule); msg != "" {
			violations = append(violations, msg)
		}
	}

	if len(violations) > 0 {
		return &SchemaError{Violations: violations}
	}
	return nil
}

func walk(doc map[string]any, path []string) (any, string) {
	var node any = doc
	for i, seg := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, fmt.Sprintf("%s must be an object, got %s", joinPath(path[:i]), typeName(node))
		}
		next, ok := m[seg]
		if !ok {
			return nil, fmt.Sprintf("%s is missing", strings.Join(path[:i+1], "."))
		}
		node = next
	}
	return node, ""
}

func checkKind(name string, v any, rule fieldRule) string {
	switch rule.kind {
	case kindString:
		if _, ok := v.(string); !ok {
			return fmt.Sprintf("%s must be a string, got %s", name, typeName(v))
		}
		return ""
	case kindInteger:
		if _, ok := toInt(v); !ok {
			return fmt.Sprintf("%s must be an integer, got %s", name, describe(v))
		}
	case kindNumber:
		if _, ok := toFloat(v); !ok {
			return fmt.Sprintf("%s must be a number, got %s", name, typeName(v))
		}
	}

	if rule.check != nil {
		f, _ := toFloat(v)
		if err := rule.check(f); err != nil {
			return fmt.Sprintf("%s %v", name, err)
		}
	}
	return ""
}

func describe(v any) string {
	if _, ok := toFloat(v); ok {
		return fmt.Sprintf("%v", v)
	}
	return typeName(v)
}

func positive(f float64) error {
	if f <= 0 {
		return fmt.Errorf("must be greater than 0, got %v", f)
	}
	return nil
}

func nonNegative(f float64) error {
	if f < 0 {
		return fmt.Errorf("must not be negative, got %v", f)
	}
	return nil
}

func topP(f float64) error {
	if f <= 0 || f > 1 {
		return fmt.Errorf("must be in (0, 1], got %v", f)
	}
	return nil
}

func unitInterval(f float64) error {
	if f < 0 || f > 1 {
		return fmt.Errorf("must be between 0 and 1, got %v", f)
	}
	return nil
}
