package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-spillwatch/scenario"
	"go-spillwatch/summarize"
	"go-spillwatch/types"
)

// stubCompleter captures the outgoing request and plays back a canned
// response or error.
type stubCompleter struct {
	req     openai.ChatCompletionRequest
	content string
	err     error
	choices int
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.req = req
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	resp := openai.ChatCompletionResponse{}
	for i := 0; i < s.choices; i++ {
		resp.Choices = append(resp.Choices, openai.ChatCompletionChoice{
			Message: openai.ChatCompletionMessage{Content: s.content},
		})
	}
	return resp, nil
}

func testContext(t *testing.T) summarize.Context {
	t.Helper()
	rc, err := summarize.ResolveContext(scenario.Default(), "Z1", "S1")
	require.NoError(t, err)
	return rc
}

func newStubGateway(stub *stubCompleter) *Gateway {
	return &Gateway{
		client:      stub,
		model:       openai.GPT4oMini,
		temperature: 0.3,
		maxTokens:   400,
		timeout:     time.Second,
	}
}

func TestAskReturnsAnswerVerbatim(t *testing.T) {
	stub := &stubCompleter{content: "  Risk level: HIGH. Deploy booms.  ", choices: 1}
	g := newStubGateway(stub)

	answer := g.Ask(context.Background(), testContext(t), types.CleanupIdle, "how bad is it?")
	assert.Equal(t, "Risk level: HIGH. Deploy booms.", answer)
}

func TestAskRequestShape(t *testing.T) {
	stub := &stubCompleter{content: "ok", choices: 1}
	g := newStubGateway(stub)

	g.Ask(context.Background(), testContext(t), types.CleanupCleaning, "what is the likely source?")

	assert.Equal(t, openai.GPT4oMini, stub.req.Model)
	assert.Equal(t, float32(0.3), stub.req.Temperature)
	assert.Equal(t, 400, stub.req.MaxTokens)
	require.Len(t, stub.req.Messages, 2)

	system := stub.req.Messages[0]
	assert.Equal(t, openai.ChatMessageRoleSystem, system.Role)
	assert.Contains(t, system.Content, "offshore oil spill analysis")

	user := stub.req.Messages[1]
	assert.Equal(t, openai.ChatMessageRoleUser, user.Role)
	assert.Contains(t, user.Content, "Zone ID: Z1")
	assert.Contains(t, user.Content, "Spill ID: S1")
	assert.Contains(t, user.Content, "Area: 2.5 km²")
	assert.Contains(t, user.Content, "Detection confidence: 92%")
	assert.Contains(t, user.Content, "Cleanup status: cleaning")
	assert.Contains(t, user.Content, "3 historical spills")
	assert.Contains(t, user.Content, "what is the likely source?")
}

func TestAskMissingKeyFallback(t *testing.T) {
	g := NewGateway(Options{APIKey: ""})

	answer := g.Ask(context.Background(), testContext(t), types.CleanupIdle, "q")
	assert.Contains(t, answer, "LLM API key not configured")
}

func TestAskErrorFallback(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection refused")}
	g := newStubGateway(stub)

	answer := g.Ask(context.Background(), testContext(t), types.CleanupIdle, "q")
	assert.Contains(t, answer, "Error calling LLM API:")
	assert.Contains(t, answer, "connection refused")
}

func TestAskEmptyResponseFallback(t *testing.T) {
	stub := &stubCompleter{choices: 0}
	g := newStubGateway(stub)

	answer := g.Ask(context.Background(), testContext(t), types.CleanupIdle, "q")
	assert.Equal(t, emptyResponseFallback, answer)

	stub = &stubCompleter{choices: 1, content: ""}
	g = newStubGateway(stub)
	assert.Equal(t, emptyResponseFallback, g.Ask(context.Background(), testContext(t), types.CleanupIdle, "q"))
}

func TestNewGatewayDefaults(t *testing.T) {
	g := NewGateway(Options{})

	assert.Nil(t, g.client)
	assert.Equal(t, openai.GPT4oMini, g.model)
	assert.Equal(t, 30*time.Second, g.timeout)
}
