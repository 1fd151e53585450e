package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

const formatKey = "x-format"

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidType   = errors.New("invalid type")
	ErrInvalidEnum   = errors.New("value not allowed")
	ErrInvalidValue  = errors.New("invalid format")
	ErrMalformedArgs = errors.New("malformed arguments")
)

// decodeArgs parses a backend's raw JSON arguments. The error wraps
// ErrMalformedArgs.
func decodeArgs(raw []byte) (map[string]any, error) {
	params := map[string]any{}
	if len(raw) == 0 {
		return params, nil
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		return map[string]any{}, fmt.Errorf("%w: %v", ErrMalformedArgs, err)
	}
	return params, nil
}

// ValidateArgs checks a tool invocation's arguments against the tool's declared
// schema: required presence (non-empty for strings), declared types, enum
// membership and the local date/time formats. Undeclared arguments are ignored.
func ValidateArgs(tool Tool, args map[string]any) error {
	required, _ := tool.Parameters["required"].([]string)
	for _, name := range required {
		v, ok := args[name]
		if !ok || v == nil {
			return fmt.Errorf("%w %q", ErrMissingField, name)
		}
		if s, isStr := v.(string); isStr && s == "" {
			return fmt.Errorf("%w %q", ErrMissingField, name)
		}
	}

	props, _ := tool.Parameters["properties"].(map[string]any)
	for _, name := range slices.Sorted(maps.Keys(props)) {
		v, ok := args[name]
		if !ok || v == nil {
			continue
		}
		schema, _ := props[name].(map[string]any)
		if err := checkValue(name, schema, v); err != nil {
			return err
		}
	}
	return nil
}

func checkValue(name string, schema map[string]any, v any) error {
	switch schema["type"] {
	case "string":
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w for %q: want string, got %T", ErrInvalidType, name, v)
		}
		if allowed, ok := schema["enum"].([]string); ok && !slices.Contains(allowed, s) {
			return fmt.Errorf("%w for %q: %q", ErrInvalidEnum, name, s)
		}
		if f, ok := schema[formatKey].(string); ok && s != "" {
			if err := checkFormat(f, s); err != nil {
				return fmt.Errorf("%w for %q: %q", ErrInvalidValue, name, s)
			}
		}
	case "array":
		arr, ok := v.([]any)
		if !ok {
			if _, isStrs := v.([]string); isStrs {
				return nil
			}
			return fmt.Errorf("%w for %q: want array, got %T", ErrInvalidType, name, v)
		}
		for _, item := range arr {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("%w for %q: want string items, got %T", ErrInvalidType, name, item)
			}
		}
	}
	return nil
}

func checkFormat(format, s string) error {
	switch format {
	case "date":
		_, err := time.Parse("2006-01-02", s)
		return err
	case "time":
		_, err := time.Parse("15:04", s)
		return err
	}
	return nil
}

// wireParameters returns a copy of the tool's schema without the local-only
// keywords.
func wireParameters(t Tool) map[string]any {
	return stripLocal(t.Parameters)
}

func stripLocal(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if k == formatKey {
			continue
		}
		if sub, ok := v.(map[string]any); ok {
			v = stripLocal(sub)
		}
		out[k] = v
	}
	return out
}
