package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response   string
	Err        error
	LastPrompt string
	LastParams SamplingParams
	Calls      int
}

func (m *MockClient) Generate(ctx context.Context, prompt string, params SamplingParams) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastParams = params
	return m.Response, m.Err
}
