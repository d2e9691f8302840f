package types

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/matst80/slask-card/pkg/common/jsoncompat"
	"github.com/tidwall/gjson"
)

var ErrInvalidParameters = errors.New("invalid parameters")

// Parameter is a single attribute code and its selected value, e.g. color=red.
type Parameter struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

// Parameters is an ordered attribute code -> value mapping with unique keys.
// It is used both for the parameters a variant carries and for the filter set
// a caller selects. Order is the order keys were first added and is kept when
// encoding to JSON and to query strings.
type Parameters []Parameter

// FilterSet is the caller's currently selected attribute values.
type FilterSet = Parameters

func (p Parameters) index(key string) int {
	for i, param := range p {
		if param.Key == key {
			return i
		}
	}
	return -1
}

func (p Parameters) Get(key string) (string, bool) {
	if i := p.index(key); i >= 0 {
		return p[i].Value, true
	}
	return "", false
}

func (p Parameters) Has(key string) bool {
	return p.index(key) >= 0
}

func (p Parameters) Keys() []string {
	keys := make([]string, len(p))
	for i, param := range p {
		keys[i] = param.Key
	}
	return keys
}

// With returns a copy of p with key set to value. An existing key keeps its position.
func (p Parameters) With(key, value string) Parameters {
	result := p.Clone()
	if i := result.index(key); i >= 0 {
		result[i].Value = value
		return result
	}
	return append(result, Parameter{Key: key, Value: value})
}

func (p Parameters) Clone() Parameters {
	result := make(Parameters, len(p), len(p)+1)
	copy(result, p)
	return result
}

// Pick returns the entries of p whose keys are present in keys, in p's order.
func (p Parameters) Pick(keys Parameters) Parameters {
	result := Parameters{}
	for _, param := range p {
		if keys.Has(param.Key) {
			result = append(result, param)
		}
	}
	return result
}

func (p Parameters) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, param := range p {
		m[param.Key] = param.Value
	}
	return m
}

// Encode builds a query string (without leading '?') from p. Keys and values
// are query escaped and pairs are joined with '&' in p's order.
func (p Parameters) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param.Value))
	}
	return sb.String()
}

// ParseQuery reads a raw query string keeping the order of the keys. A key
// given more than once keeps its first position and its last value.
func ParseQuery(raw string) (Parameters, error) {
	result := Parameters{}
	raw = strings.TrimPrefix(raw, "?")
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrInvalidParameters, k, err)
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("%w: value for %q: %w", ErrInvalidParameters, key, err)
		}
		if key == "" {
			continue
		}
		result = result.With(key, value)
	}
	return result, nil
}

func (p Parameters) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, param := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		k, err := jsoncompat.Marshal(param.Key)
		if err != nil {
			return nil, err
		}
		v, err := jsoncompat.Marshal(param.Value)
		if err != nil {
			return nil, err
		}
		sb.Write(k)
		sb.WriteByte(':')
		sb.Write(v)
	}
	sb.WriteByte('}')
	return []byte(sb.String()), nil
}

// UnmarshalJSON reads a JSON object keeping member order. Non string values
// are kept in their raw textual form so numeric option ids survive.
func (p *Parameters) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed json", ErrInvalidParameters)
	}
	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		*p = nil
		return nil
	}
	if !res.IsObject() {
		return fmt.Errorf("%w: expected object, got %s", ErrInvalidParameters, res.Type)
	}
	result := Parameters{}
	res.ForEach(func(key, value gjson.Result) bool {
		result = result.With(key.String(), value.String())
		return true
	})
	*p = result
	return nil
}
