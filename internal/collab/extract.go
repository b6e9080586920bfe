// Package collab holds the prompt construction and response handling shared
// by AI collaborator implementations. The collaborator returns free text; the
// helpers here locate the JSON payload inside it and validate the payload
// against the domain model.
package collab

import (
	"encoding/json"
	"errors"
	"strings"
)

// ExtractJSONObject locates a JSON object in a collaborator completion.
// The whole trimmed response is tried first; failing that, the first
// balanced top-level object is scanned out, which tolerates prose or
// markdown fences around the payload. Responses with no recognizable
// object are an error.
func ExtractJSONObject(s string) ([]byte, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "{") && json.Valid([]byte(trimmed)) {
		return []byte(trimmed), nil
	}

	start := strings.IndexByte(s, '{')
	if start == -1 {
		return nil, errors.New("no JSON object in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := []byte(s[start : i+1])
				if !json.Valid(candidate) {
					return nil, errors.New("malformed JSON object in response")
				}
				return candidate, nil
			}
		}
	}

	return nil, errors.New("no complete JSON object in response")
}
