package resume

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaName is the response-format name sent to the completion service.
const SchemaName = "resume"

const schemaURL = "https://resume-parser.local/schemas/resume.json"

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ErrSchemaMismatch is returned when a document does not satisfy the résumé schema.
var ErrSchemaMismatch = errors.New("resume schema mismatch")

// SchemaJSON returns the raw JSON Schema document.
func SchemaJSON() []byte {
	return bytes.Clone(schemaJSON)
}

// Schema returns the JSON Schema as a generic map, without the $schema and $id
// keywords, in the shape accepted by OpenAI structured outputs.
func Schema() map[string]any {
	var out map[string]any
	if err := json.Unmarshal(schemaJSON, &out); err != nil {
		panic(fmt.Sprintf("resume: embedded schema is invalid: %v", err))
	}
	delete(out, "$schema")
	delete(out, "$id")
	return out
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := lenientSchema()
		if err != nil {
			compileErr = fmt.Errorf("derive schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(doc)); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// lenientSchema derives the schema used to check model output locally from the
// strict one sent on the wire. Nullable properties become optional and objects
// declared without properties accept any members.
func lenientSchema() ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(schemaJSON, &doc); err != nil {
		return nil, err
	}
	relax(doc)
	return json.Marshal(doc)
}

func relax(node map[string]any) {
	if props, ok := node["properties"].(map[string]any); ok {
		if len(props) == 0 {
			delete(node, "properties")
			delete(node, "required")
			delete(node, "additionalProperties")
		} else {
			required, _ := node["required"].([]any)
			kept := make([]any, 0, len(required))
			for _, name := range required {
				child, _ := props[fmt.Sprint(name)].(map[string]any)
				if !nullable(child) {
					kept = append(kept, name)
				}
			}
			node["required"] = kept
			for _, child := range props {
				if m, ok := child.(map[string]any); ok {
					relax(m)
				}
			}
		}
	}
	if items, ok := node["items"].(map[string]any); ok {
		relax(items)
	}
}

func nullable(node map[string]any) bool {
	switch t := node["type"].(type) {
	case string:
		return t == "null"
	case []any:
		for _, v := range t {
			if v == "null" {
				return true
			}
		}
	}
	return false
}

// Parse validates raw against the résumé schema and decodes it. Nullable
// fields may be omitted and profilePicture may carry any members.
// Any structural problem is reported as ErrSchemaMismatch.
func Parse(raw []byte) (Resume, error) {
	schema, err := compiledSchema()
	if err != nil {
		return Resume{}, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Resume{}, fmt.Errorf("%w: invalid JSON: %v", ErrSchemaMismatch, err)
	}
	if err := schema.Validate(doc); err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	var out Resume
	if err := json.Unmarshal(raw, &out); err != nil {
		return Resume{}, fmt.Errorf("%w: decode: %v", ErrSchemaMismatch, err)
	}
	return out, nil
}
