// Package parsing recovers structured JSON from AI inference output.
// Models are instructed to emit pure JSON but are not contractually bound
// to: output may arrive wrapped in prose, markdown fences, or both. The
// decoder is a two-stage pipeline - a strict fast path and a bracket-scan
// recovery path - with distinct failure kinds for each stage.
package parsing

import (
	"encoding/json"
	"strings"
)

// DecodeObject recovers a single JSON object from raw inference output.
// A value that is already a decoded object is returned unchanged, so the
// decoder is idempotent on its own output. A string is first tried as-is
// when it is exactly brace-delimited after trimming; otherwise the
// substring from the first '{' to the last '}' is parsed.
func DecodeObject(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case map[string]any:
		return v, nil
	case []byte:
		return decodeString(string(v))
	case string:
		return decodeString(v)
	default:
		return nil, &MalformedJSONError{Message: "unsupported input type"}
	}
}

// DecodeInto recovers a JSON object from raw and unmarshals it into v.
func DecodeInto(raw any, v any) error {
	obj, err := DecodeObject(raw)
	if err != nil {
		return err
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return &MalformedJSONError{Message: "re-encoding recovered object", Cause: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &MalformedJSONError{Message: "decoding recovered object", Cause: err}
	}
	return nil
}

func decodeString(raw string) (map[string]any, error) {
	trimmed := strings.TrimSpace(raw)

	// Fast path: the whole string is one object.
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		var obj map[string]any
		if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
			return obj, nil
		}
		// Fall through: an embedded object may still be recoverable, e.g.
		// "{...} trailing {...garbage".
	}

	// Recovery path: widest brace-delimited substring.
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &NoJSONFoundError{}
	}

	candidate := trimmed[start : end+1]
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, &MalformedJSONError{Message: "extracted candidate is not valid JSON", Cause: err}
	}
	return obj, nil
}
