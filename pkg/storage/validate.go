package storage

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// collectionSchema is the JSON schema every collection file must
// satisfy before it is unmarshaled into typed structs. Field names
// mirror the yaml tags on the schema structs.
const collectionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title"],
  "additionalProperties": false,
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "requests": {"type": "array", "items": {"$ref": "#/definitions/request"}},
    "groups": {"type": "array", "items": {"$ref": "#/definitions/group"}}
  },
  "definitions": {
    "group": {
      "type": "object",
      "required": ["name"],
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "requests": {"type": "array", "items": {"$ref": "#/definitions/request"}},
        "groups": {"type": "array", "items": {"$ref": "#/definitions/group"}}
      }
    },
    "request": {
      "type": "object",
      "required": ["name", "method", "url"],
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "description": {"type": "string"},
        "method": {"type": "string", "minLength": 1},
        "url": {"type": "string", "minLength": 1},
        "headers": {"$ref": "#/definitions/pairs"},
        "params": {"$ref": "#/definitions/pairs"},
        "body": {"$ref": "#/definitions/body"},
        "auth": {"$ref": "#/definitions/auth"},
        "last_exchange": {"$ref": "#/definitions/exchange"}
      }
    },
    "pairs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "value"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string"},
          "value": {"type": "string"}
        }
      }
    },
    "body": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "json": {"type": "string"},
        "form": {"type": "string"},
        "text": {"type": "string"},
        "graphql": {
          "type": "object",
          "required": ["query"],
          "additionalProperties": false,
          "properties": {
            "query": {"type": "string"},
            "variables": {"type": "string"}
          }
        }
      }
    },
    "auth": {
      "type": "object",
      "required": ["kind"],
      "additionalProperties": false,
      "properties": {
        "kind": {"type": "string", "enum": ["bearer", "basic", "oauth2"]},
        "token": {"type": "string"},
        "username": {"type": "string"},
        "password": {"type": "string"},
        "client_id": {"type": "string"},
        "client_secret": {"type": "string"},
        "token_url": {"type": "string"},
        "scopes": {"type": "array", "items": {"type": "string"}}
      }
    },
    "exchange": {
      "type": "object",
      "required": ["url", "status"],
      "additionalProperties": false,
      "properties": {
        "url": {"type": "string"},
        "status": {"type": "integer"},
        "headers": {"$ref": "#/definitions/pairs"},
        "body": {"type": "string"},
        "captured_at": {"type": "string"}
      }
    }
  }
}`

// ValidateCollection checks raw collection YAML against the collection
// schema and reports every violation at once.
func ValidateCollection(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(collectionSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var b strings.Builder
	for i, violation := range result.Errors() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(violation.String())
	}
	return fmt.Errorf("schema violations: %s", b.String())
}
