package query

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// querySchema validates the JSON form of a query: a filter object or a list
// of filter objects, with values restricted to scalars, scalar lists and
// operator maps over the recognized operator set.
const querySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "oneOf": [
    {"$ref": "#/definitions/filter"},
    {"type": "array", "items": {"$ref": "#/definitions/filter"}}
  ],
  "definitions": {
    "scalar": {"type": ["string", "number", "boolean", "null"]},
    "filter": {
      "type": "object",
      "additionalProperties": {
        "oneOf": [
          {"$ref": "#/definitions/scalar"},
          {"type": "array", "items": {"$ref": "#/definitions/scalar"}},
          {
            "type": "object",
            "minProperties": 1,
            "additionalProperties": false,
            "properties": {
              "eq": {"$ref": "#/definitions/scalar"},
              "ne": {"$ref": "#/definitions/scalar"},
              "le": {"$ref": "#/definitions/scalar"},
              "lt": {"$ref": "#/definitions/scalar"},
              "ge": {"$ref": "#/definitions/scalar"},
              "gt": {"$ref": "#/definitions/scalar"},
              "isin": {"type": "array", "items": {"$ref": "#/definitions/scalar"}},
              "regex": {"type": "string"}
            }
          }
        ]
      }
    }
  }
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(querySchema))
})

// ParseQuery parses the JSON form of a query into a query list, validating
// it against the query schema first. A single filter object is accepted and
// wrapped into a one-element list.
func ParseQuery(data []byte) ([]Filter, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile query schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid query JSON: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("invalid query: %s", strings.Join(details, "; "))
	}

	var single Filter
	if err := json.Unmarshal(data, &single); err == nil {
		return []Filter{single}, nil
	}
	var list []Filter
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("invalid query JSON: %w", err)
	}
	return list, nil
}
