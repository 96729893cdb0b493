package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const packSchemaURL = "schema://careaid-pack.json"

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

var idString = map[string]any{"type": "string", "minLength": 1}

// PackSchema is the JSON schema every content pack must satisfy.
var PackSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"schema_version":  map[string]any{"type": "string", "enum": []any{"v1"}},
		"min_app_version": map[string]any{"type": "string"},
		"title":           idString,
		"print_header": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"developer":    map[string]any{"type": "string"},
				"last_updated": map[string]any{"type": "string"},
			},
		},
		"steps": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": idString,
					"kind":  map[string]any{"type": "string", "enum": []any{"info", "quiz", "values", "decision", "summary"}},
					"body":  map[string]any{"type": "string"},
				},
				"required": []any{"title", "kind"},
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":     map[string]any{"type": "integer", "minimum": 1},
					"prompt": idString,
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":       idString,
								"label":    idString,
								"correct":  map[string]any{"type": "boolean"},
								"feedback": map[string]any{"type": "string"},
							},
							"required": []any{"id", "label"},
						},
					},
				},
				"required": []any{"id", "prompt", "options"},
			},
		},
		"facts": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{"type": "integer", "minimum": 1},
					"statements": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    idString,
					},
				},
				"required": []any{"question", "statements"},
			},
		},
		"sliders": map[string]any{
			"type":     "array",
			"minItems": SliderCount,
			"maxItems": SliderCount,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    idString,
					"label": idString,
				},
				"required": []any{"id", "label"},
			},
		},
		"choices": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":   idString,
					"prompt": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":    idString,
								"label": idString,
							},
							"required": []any{"id", "label"},
						},
					},
				},
				"required": []any{"name", "options"},
			},
		},
		"next_steps_text": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
		"text_fields": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":   idString,
					"prompt": map[string]any{"type": "string"},
				},
				"required": []any{"name"},
			},
		},
	},
	"required": []any{"schema_version", "title", "steps", "sliders"},
}

// validateSchema checks a decoded YAML document against PackSchema.
func validateSchema(doc any) error {
	sch, err := packSchema()
	if err != nil {
		return err
	}

	// YAML decodes integers as int; round-trip through JSON so the
	// validator sees the same value types it would for a JSON document.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode pack for validation: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decode pack for validation: %w", err)
	}

	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func packSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		defBytes, err := json.Marshal(PackSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(packSchemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(packSchemaURL)
	})
	return compiled, compileErr
}
