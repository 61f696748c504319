package loader

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pirakansa/contract/schema"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed contract.schema.json
var schemaJSON string

// SchemaJSON returns the embedded contract JSON schema document.
func SchemaJSON() string {
	return schemaJSON
}

// ValidateContractFile checks a document against the embedded schema. Schema
// violations land in the report, not in the returned error; the error covers
// unreadable or unparseable input only.
func ValidateContractFile(path string) (*schema.ValidationReport, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	instance, err := yamlToJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}

	compiled, err := jsonschema.CompileString("contract.schema.json", schemaJSON)
	if err != nil {
		return nil, &schema.InvalidConfigError{Reason: err.Error()}
	}

	report := &schema.ValidationReport{Path: path, Valid: true}
	if err := compiled.Validate(instance); err != nil {
		var validationErr *jsonschema.ValidationError
		if !errors.As(err, &validationErr) {
			return nil, err
		}
		report.Valid = false
		report.Errors = collectIssues(validationErr)
	}
	return report, nil
}

// yamlToJSON round-trips a decoded YAML value through JSON so the validator
// sees canonical JSON types.
func yamlToJSON(doc any) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return nil, err
	}
	return instance, nil
}

// collectIssues flattens the validator's error tree into leaf issues with
// their instance paths.
func collectIssues(err *jsonschema.ValidationError) []schema.ValidationIssue {
	var issues []schema.ValidationIssue
	if len(err.Causes) == 0 {
		issues = append(issues, schema.ValidationIssue{
			Message:      err.Message,
			InstancePath: err.InstanceLocation,
		})
		return issues
	}
	for _, cause := range err.Causes {
		issues = append(issues, collectIssues(cause)...)
	}
	return issues
}
