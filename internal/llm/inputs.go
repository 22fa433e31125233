package llm

import (
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

// InputKind discriminates the variants of Input.
type InputKind string

const (
	// KindText is a plain text segment
	KindText InputKind = "text"
	// KindFile is a binary attachment with a MIME type
	KindFile InputKind = "file"
	// KindMetadata is structured data serialized as indented JSON
	KindMetadata InputKind = "metadata"
)

// Input is one heterogeneous segment of a model request. Callers build
// inputs through the constructors; the zero value is not a valid input.
type Input struct {
	Kind     InputKind
	Text     string
	MIMEType string
	Data     []byte
	Metadata any
}

// TextInput returns a plain text input segment.
func TextInput(text string) Input {
	return Input{Kind: KindText, Text: text}
}

// FileInput returns a binary attachment input segment.
func FileInput(mimeType string, data []byte) Input {
	return Input{Kind: KindFile, MIMEType: mimeType, Data: data}
}

// MetadataInput returns a structured data input segment. The value is
// serialized as indented JSON when the request is assembled.
func MetadataInput(value any) Input {
	return Input{Kind: KindMetadata, Metadata: value}
}

// UnsupportedInputError indicates an input variant the provider mapping
// does not recognize.
type UnsupportedInputError struct {
	Kind InputKind
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported input kind: %q", e.Kind)
}

// toParts maps inputs onto provider content parts, preserving order.
func toParts(inputs []Input) ([]genai.Part, error) {
	parts := make([]genai.Part, 0, len(inputs))
	for _, in := range inputs {
		switch in.Kind {
		case KindText:
			parts = append(parts, genai.Text(in.Text))
		case KindFile:
			parts = append(parts, genai.Blob{MIMEType: in.MIMEType, Data: in.Data})
		case KindMetadata:
			encoded, err := json.MarshalIndent(in.Metadata, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to encode metadata input: %w", err)
			}
			parts = append(parts, genai.Text(encoded))
		default:
			return nil, &UnsupportedInputError{Kind: in.Kind}
		}
	}
	return parts, nil
}
