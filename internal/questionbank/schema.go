package questionbank

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSchema constrains each embedded data file: every question carries
// exactly four options and an answer index inside them.
var questionSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":   map[string]any{"type": "string", "minLength": 1},
			"text": map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": 4,
				"maxItems": 4,
			},
			"correctAnswer": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 3,
			},
			"explanation": map[string]any{"type": "string"},
			"year":        map[string]any{"type": "integer", "minimum": 1, "maximum": 7},
			"chapter":     map[string]any{"type": "integer", "minimum": 1, "maximum": 17},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
			"category": map[string]any{"type": "string", "minLength": 1},
		},
		"required":             []any{"id", "text", "options", "correctAnswer", "year", "chapter", "difficulty", "category"},
		"additionalProperties": false,
	},
}

// compiledSchema returns the compiled question-file schema.
func compiledSchema() (*jsonschema.Schema, error) {
	// The compiler wants a parsed JSON value, so round-trip the definition.
	defBytes, err := json.Marshal(questionSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://questions.json", defParsed); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile("schema://questions.json")
}

// validateFile checks one embedded data file against the schema.
func validateFile(name string, raw []byte, schema *jsonschema.Schema) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%s: invalid JSON: %w", name, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", name, err)
	}
	return nil
}
