package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ShapeError reports a model response that parsed as JSON but did not
// match the expected record shape. The offending record travels with
// the error so the caller can embed it in the HTTP response.
type ShapeError struct {
	Reason string          `json:"reason"`
	Record json.RawMessage `json:"record"`
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("llm response shape mismatch: %s", e.Reason)
}

var codeFence = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

// StripCodeFences removes Markdown code-fence wrapping the model adds
// despite being told not to.
func StripCodeFences(response string) string {
	cleaned := codeFence.ReplaceAllString(response, "$1")
	return strings.TrimSpace(cleaned)
}

// decodeRecords parses a model response into a JSON array of objects.
// Repair policy: a single object whose keys match requiredKeys is
// wrapped into a one-element array; anything else that is not an
// array is a hard failure. Each element is then checked for the
// required keys.
func decodeRecords(response string, requiredKeys []string) ([]json.RawMessage, error) {
	cleaned := StripCodeFences(response)

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &elements); err != nil {
		// Not an array. A bare object with the right keys gets
		// wrapped; everything else is unusable.
		var object map[string]json.RawMessage
		if objErr := json.Unmarshal([]byte(cleaned), &object); objErr != nil {
			return nil, &ShapeError{
				Reason: "response is neither a JSON array nor a JSON object",
				Record: json.RawMessage(truncateForDiagnostics(cleaned)),
			}
		}
		if err := checkKeys(object, requiredKeys); err != nil {
			return nil, err
		}
		elements = []json.RawMessage{json.RawMessage(cleaned)}
	}

	for _, element := range elements {
		var object map[string]json.RawMessage
		if err := json.Unmarshal(element, &object); err != nil {
			return nil, &ShapeError{Reason: "array element is not an object", Record: element}
		}
		if err := checkKeys(object, requiredKeys); err != nil {
			return nil, err
		}
	}

	return elements, nil
}

func checkKeys(object map[string]json.RawMessage, requiredKeys []string) error {
	for _, key := range requiredKeys {
		if _, ok := object[key]; !ok {
			record, _ := json.Marshal(object)
			return &ShapeError{
				Reason: fmt.Sprintf("missing required key %q", key),
				Record: record,
			}
		}
	}
	return nil
}

// truncateForDiagnostics keeps unparseable responses short enough to
// embed in an error payload, quoted as a JSON string.
func truncateForDiagnostics(response string) []byte {
	const limit = 512
	if len(response) > limit {
		response = response[:limit]
	}
	quoted, _ := json.Marshal(response)
	return quoted
}
