package llm

import (
	"context"
)

// ImagePart is an inline image attached to a generation request.
type ImagePart struct {
	MediaType string // image/jpeg, image/png, image/gif, image/webp
	Data      []byte // raw image bytes, not base64
}

// Request describes a single structured-output generation call.
type Request struct {
	Model      string
	System     string
	Prompt     string
	Image      *ImagePart
	SchemaName string
	Schema     any
	MaxTokens  int64
}

// Generator runs model inference that returns a JSON object conforming to
// the request schema, decoded into out.
type Generator interface {
	GenerateObject(ctx context.Context, req *Request, out any) error
}
