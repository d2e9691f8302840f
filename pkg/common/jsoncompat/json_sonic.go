//go:build !nosonic

package jsoncompat

import "github.com/bytedance/sonic"

// std keeps encoding/json semantics (sorted map keys, html escaping, Marshaler support)
var std = sonic.ConfigStd

// Marshal encodes v with sonic unless the nosonic build tag is present.
func Marshal(v any) ([]byte, error) { return std.Marshal(v) }

// MarshalIndent encodes v with sonic using the given prefix and indent.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return std.MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes data with sonic unless the nosonic build tag is present.
func Unmarshal(data []byte, v any) error { return std.Unmarshal(data, v) }
