package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/adaptly/calibrant/internal/rating"
)

// ParamsBlob is a versioned rating parameter set as delivered by the
// runtime-control collaborator. Params holds a partial override: keys
// absent from the blob keep their current values.
type ParamsBlob struct {
	Version int             `json:"version"`
	Params  json.RawMessage `json:"params"`
}

// paramsSchema rejects unknown keys and wrong types before any value
// reaches the rating engine.
const paramsSchema = `{
  "type": "object",
  "required": ["version", "params"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "params": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "guess_floor":              {"type": "number", "minimum": 0, "maximum": 1},
        "scale":                    {"type": "number", "exclusiveMinimum": 0},
        "k_base_user":              {"type": "number", "exclusiveMinimum": 0},
        "k_base_question":          {"type": "number", "exclusiveMinimum": 0},
        "k_min":                    {"type": "number", "minimum": 0},
        "k_max":                    {"type": "number", "minimum": 0},
        "unc_init_user":            {"type": "number", "minimum": 0},
        "unc_init_question":        {"type": "number", "minimum": 0},
        "unc_floor":                {"type": "number", "minimum": 0},
        "unc_decay_per_attempt":    {"type": "number", "exclusiveMinimum": 0, "maximum": 1},
        "unc_age_increase_per_day": {"type": "number", "minimum": 0},
        "theme_update_weight":      {"type": "number", "minimum": 0, "maximum": 1},
        "rating_init":              {"type": "number"},
        "recenter_enabled":         {"type": "boolean"},
        "recenter_every_n_updates": {"type": "integer", "minimum": 1},
        "recenter_threshold":       {"type": "number", "exclusiveMinimum": 0}
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledParamsSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(paramsSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse params schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://rating-params.json", parsed); err != nil {
			compileErr = fmt.Errorf("add params schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://rating-params.json")
	})
	return compiledSchema, compileErr
}

// ApplyParamsBlob validates a parameter blob and overlays it on base.
// The blob is rejected whole on any schema violation, and the merged
// config must still pass the engine's own validation.
func ApplyParamsBlob(base rating.Config, raw []byte) (rating.Config, int, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return base, 0, fmt.Errorf("params blob is not valid JSON: %w", err)
	}

	schema, err := compiledParamsSchema()
	if err != nil {
		return base, 0, err
	}
	if err := schema.Validate(parsed); err != nil {
		return base, 0, fmt.Errorf("params blob rejected: %w", err)
	}

	var blob ParamsBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return base, 0, fmt.Errorf("decode params blob: %w", err)
	}

	merged := base
	if err := json.Unmarshal(blob.Params, &merged); err != nil {
		return base, 0, fmt.Errorf("apply params v%d: %w", blob.Version, err)
	}
	if err := merged.Validate(); err != nil {
		return base, 0, fmt.Errorf("params v%d: %w", blob.Version, err)
	}
	return merged, blob.Version, nil
}
