// Package jsonschema validates JSON documents against JSON Schema.
// It backs the CLI's --schema flag for asserting the shape of API
// responses.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationErrors is the flattened list of problems found while
// validating a document
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}
	parts := make([]string, len(ve))
	for i, err := range ve {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// Validate reports whether doc conforms to schema. A broken schema or
// malformed document is an error; a schema violation is just false.
func Validate(doc, schema string) (bool, error) {
	compiled, err := compile(schema)
	if err != nil {
		return false, err
	}

	var data interface{}
	if err := json.Unmarshal([]byte(doc), &data); err != nil {
		return false, fmt.Errorf("invalid JSON: %w", err)
	}

	return compiled.Validate(data) == nil, nil
}

// ValidateWithErrors is Validate plus the individual schema
// violations, flattened from the validator's error tree
func ValidateWithErrors(doc, schema string) (bool, ValidationErrors) {
	compiled, err := compile(schema)
	if err != nil {
		return false, ValidationErrors{err}
	}

	var data interface{}
	if err := json.Unmarshal([]byte(doc), &data); err != nil {
		return false, ValidationErrors{fmt.Errorf("invalid JSON: %w", err)}
	}

	if err := compiled.Validate(data); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return false, flatten(validationErr)
		}
		return false, ValidationErrors{err}
	}
	return true, nil
}

func compile(schema string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schema)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return compiled, nil
}

func flatten(err *jsonschema.ValidationError) ValidationErrors {
	var errs ValidationErrors
	if err.Message != "" {
		errs = append(errs, fmt.Errorf("at %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		errs = append(errs, flatten(cause)...)
	}
	return errs
}
