package httpecho

import jsoniter "github.com/json-iterator/go"

// json encodes every response body. Map keys are sorted so that repeated
// requests produce identical bodies, and numbers in echoed request bodies
// keep their original literal.
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// parseJSON returns the decoded body, or nil if the body is not a JSON text.
func parseJSON(body []byte) interface{} {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return nil
	}
	return v
}
