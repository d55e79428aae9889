// Package output provides JSON serialization and storage sinks for generated containers.
package output

import (
	"encoding/json"
)

// ToJSON serializes v to JSON. pretty indents the output with two spaces.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
