package ragconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel conditions reported by the store. Concrete errors returned by
// [Load], the getters and the mutators match one of these via errors.Is.
var (
	// ErrConfigurationNotFound indicates that the configuration file does not
	// exist at the requested path.
	ErrConfigurationNotFound = errors.New("configuration not found")
	// ErrConfigurationMalformed indicates that the file is not valid JSON, its
	// top-level value is not an object, or a value has an unexpected type.
	ErrConfigurationMalformed = errors.New("configuration malformed")
	// ErrKeyNotFound indicates that a segment of a requested key path is
	// absent from the document.
	ErrKeyNotFound = errors.New("key not found")
	// ErrSchemaViolation is returned by opt-in schema validation.
	ErrSchemaViolation = errors.New("schema violation")
)

// NotFoundError is returned by [Load] when the configuration file is missing.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Configuration file not found: %s\n"+
		"Please create a config.json file or specify the correct path.", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) Is(target error) bool { return target == ErrConfigurationNotFound }

// KeyNotFoundError names the first missing segment of a key path.
type KeyNotFoundError struct {
	// Path is the full dotted key path that was requested.
	Path string
	// Segment is the first segment that was absent.
	Segment string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found: %q (looking up %s)", e.Segment, e.Path)
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

// TypeMismatchError is returned when a value exists but has the wrong JSON
// type for the requested access, e.g. a string where an object is expected.
type TypeMismatchError struct {
	Path string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Want, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrConfigurationMalformed }

// SchemaError collects every violation found by [Validate].
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("configuration does not match schema: %s", strings.Join(e.Violations, "; "))
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchemaViolation }
