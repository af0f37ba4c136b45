// Package jsonutil provides shared utilities for JSON parsing patterns:
// error handling and safe extraction from opaque panel payloads.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// ParseObject parses a single-line JSON object into a map. Returns an error
// for empty input or anything that is not a JSON object.
func ParseObject(line string) (map[string]any, error) {
	if line == "" {
		return nil, fmt.Errorf("empty JSON object")
	}
	var m map[string]any
	if err := UnmarshalWithContext([]byte(line), &m, "parse panel payload"); err != nil {
		return nil, err
	}
	return m, nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// GetStringOr safely extracts a string value from a map[string]interface{}
// with a default value if the key doesn't exist or isn't a string.
func GetStringOr(m map[string]interface{}, key string, defaultValue string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return defaultValue
}
