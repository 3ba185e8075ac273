package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid   = errors.New("schema invalid")
	ErrDocumentInvalid = errors.New("document validation failed")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// DocumentValidationError surfaces validation issues with their JSON pointer.
type DocumentValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *DocumentValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *DocumentValidationError) Unwrap() error {
	return ErrDocumentInvalid
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var docErr *DocumentValidationError
	if errors.As(err, &docErr) && docErr != nil {
		return docErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// Schema is a compiled JSON schema that can validate decoded documents.
type Schema struct {
	name     string
	source   []byte
	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// NewSchema wraps a JSON schema source. Compilation happens on first use.
func NewSchema(name string, source []byte) *Schema {
	if strings.TrimSpace(name) == "" {
		name = "schema.json"
	}
	return &Schema{name: name, source: source}
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(s.name, bytes.NewReader(s.source)); err != nil {
			s.err = fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
			return
		}
		compiled, err := compiler.Compile(s.name)
		if err != nil {
			s.err = fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
			return
		}
		s.compiled = compiled
	})
	return s.compiled, s.err
}

// Check reports whether the schema source compiles.
func (s *Schema) Check() error {
	_, err := s.compile()
	return err
}

// ValidateDocument validates an arbitrary document (for example the nested
// maps produced by a config loader) against the schema. The document is
// round-tripped through JSON so numeric types match what the validator expects.
func (s *Schema) ValidateDocument(document map[string]any) error {
	compiled, err := s.compile()
	if err != nil {
		return err
	}
	if document == nil {
		document = map[string]any{}
	}
	normalized, err := normalizeDocument(document)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}
	if err := compiled.Validate(normalized); err != nil {
		return &DocumentValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func normalizeDocument(document map[string]any) (any, error) {
	encoded, err := json.Marshal(document)
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
