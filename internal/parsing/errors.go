package parsing

import "fmt"

// NoJSONFoundError indicates the inference output contained no
// brace-delimited object at all.
type NoJSONFoundError struct{}

func (e *NoJSONFoundError) Error() string {
	return "no JSON object found in AI output"
}

// MalformedJSONError indicates a candidate object was located but could
// not be decoded.
type MalformedJSONError struct {
	Message string
	Cause   error
}

func (e *MalformedJSONError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed JSON: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed JSON: %s", e.Message)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Cause
}
