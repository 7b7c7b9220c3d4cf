package testsupport

import (
	"context"
	"fmt"

	"github.com/Hustada/dynastylab/internal/llm"
)

// ScriptedVisionClient returns canned responses in order, one per Complete
// call. It satisfies llm.VisionClient for pipeline tests without any network.
type ScriptedVisionClient struct {
	Responses []string
	Err       error
	Offline   bool

	Calls        int
	Instructions []string
}

func (c *ScriptedVisionClient) Configured() bool {
	return !c.Offline
}

func (c *ScriptedVisionClient) Complete(_ context.Context, req llm.VisionRequest) (string, error) {
	c.Instructions = append(c.Instructions, req.Instruction)
	idx := c.Calls
	c.Calls++
	if c.Err != nil {
		return "", c.Err
	}
	if idx >= len(c.Responses) {
		return "", fmt.Errorf("scripted client exhausted after %d responses", len(c.Responses))
	}
	return c.Responses[idx], nil
}
