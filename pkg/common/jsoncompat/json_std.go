//go:build nosonic

package jsoncompat

import "encoding/json"

// Marshal proxies to the standard library json.Marshal when the nosonic build tag is present.
func Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// MarshalIndent proxies to the standard library json.MarshalIndent.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// Unmarshal proxies to the standard library json.Unmarshal when the nosonic build tag is present.
func Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
