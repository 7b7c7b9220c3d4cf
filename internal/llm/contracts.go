package llm

import "context"

// VisionRequest carries one image plus the instruction the model must follow.
// The instruction always demands a JSON-only answer; the response still goes
// through the recovery ladder in DecodeJSON before anyone trusts it.
type VisionRequest struct {
	Instruction  string
	ImageDataURL string
}

// VisionClient is the contract the pipeline stages depend on. Implementations
// send the image and instruction to a vision-capable model and return the raw
// textual response.
type VisionClient interface {
	Complete(ctx context.Context, req VisionRequest) (string, error)
	// Configured reports whether a usable credential is present. When false,
	// callers must not invoke Complete and must use deterministic mock data.
	Configured() bool
}
