// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package schema validates responses of the Ceph management API against JSON schemas.
package schema

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
)

//go:embed schemas/*.json
var schemas embed.FS

// ValidationError contains all violations of a response body.
type ValidationError struct {
	// Schema is the name of the schema the body was validated against.
	Schema string
	// Violations are the descriptions of the individual violations.
	Violations []string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("response does not match schema %s: %s", e.Schema, strings.Join(e.Violations, "; "))
}

// IsValidationError returns true if err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// Validator validates response bodies against the compiled schemas of all resources.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles the schemas of all resources. For every resource r it provides a schema r.Name for
// single resource responses and a schema r.ListSchema() for list responses.
func NewValidator() (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, 2*len(ceph.Resources))}

	for _, r := range ceph.Resources {
		data, err := schemas.ReadFile("schemas/" + r.Name + ".json")
		if err != nil {
			return nil, fmt.Errorf("could not read schema %s: %w", r.Name, err)
		}
		var item map[string]any
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("could not decode schema %s: %w", r.Name, err)
		}

		if err := v.add(r.Name, envelope(r.Name, item)); err != nil {
			return nil, err
		}
		if err := v.add(r.ListSchema(), envelope(r.ListName, map[string]any{"type": "array", "items": item})); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func envelope(key string, value map[string]any) map[string]any {
	return map[string]any{
		"type":       "object",
		"required":   []any{key},
		"properties": map[string]any{key: value},
	}
}

func (v *Validator) add(name string, document map[string]any) error {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(document))
	if err != nil {
		return fmt.Errorf("could not compile schema %s: %w", name, err)
	}
	v.schemas[name] = s
	return nil
}

// Names returns the names of all known schemas.
func (v *Validator) Names() []string {
	names := make([]string, 0, len(v.schemas))
	for name := range v.schemas {
		names = append(names, name)
	}
	return names
}

// Validate validates body against the schema with the given name. All violations are reported in a single
// *ValidationError.
func (v *Validator) Validate(name string, body []byte) error {
	s, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("could not validate response against schema %s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{Schema: name}
	for _, desc := range result.Errors() {
		validationErr.Violations = append(validationErr.Violations, desc.String())
	}
	return validationErr
}
