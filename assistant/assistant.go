// Package assistant is the boundary to the hosted language model. One
// request per chat turn, no conversation memory, and every call returns
// a string: failures are converted into marked fallback text so the
// chat flow can never end up with a question and no answer.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"go-spillwatch/summarize"
	"go-spillwatch/types"
)

const systemPrompt = "You are an expert assisting operators with offshore oil spill analysis. " +
	"Use the provided zone, spill attributes, and historical patterns to infer " +
	"likely sources, risk level, and recommended actions. Be concise but specific " +
	"and avoid inventing data not implied by the context."

const missingKeyFallback = "LLM API key not configured. " +
	"Set OPENAI_API_KEY in your environment to enable the assistant."

const emptyResponseFallback = "Error calling LLM API: empty response from model."

// chatCompleter is the slice of the OpenAI client the gateway uses.
// *openai.Client satisfies it; tests substitute a stub.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Options configures the gateway. An empty APIKey leaves the gateway in
// fallback mode rather than failing.
type Options struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// Gateway issues one chat-completion request per Ask call. Stateless
// across calls.
type Gateway struct {
	client      chatCompleter
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

// NewGateway builds a gateway from options.
func NewGateway(opts Options) *Gateway {
	g := &Gateway{
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		timeout:     opts.Timeout,
	}
	if opts.Model == "" {
		g.model = openai.GPT4oMini
	}
	if opts.Timeout <= 0 {
		g.timeout = 30 * time.Second
	}
	if opts.APIKey != "" {
		g.client = openai.NewClient(opts.APIKey)
	}
	return g
}

// Ask resolves one operator question against the given context. It
// always returns a string; credential, network and timeout failures all
// come back as fallback text, never as an error.
func (g *Gateway) Ask(
	ctx context.Context,
	rc summarize.Context,
	status types.CleanupStatus,
	question string,
) string {
	if g.client == nil {
		return missingKeyFallback
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(
		callCtx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildUserContext(rc, status, question),
				},
			},
			MaxTokens:   g.maxTokens,
			N:           1,
			Temperature: g.temperature,
		},
	)
	if err != nil {
		zap.L().Warn("assistant call failed",
			zap.String("zone", rc.Zone.ZoneID),
			zap.String("spill", rc.Spill.SpillID),
			zap.Error(err))
		return fmt.Sprintf("Error calling LLM API: %v", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return emptyResponseFallback
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// buildUserContext renders the fixed-shape prompt: zone identity and
// coordinates, spill attributes with confidence as a percentage, the
// history digest, the cleanup status and the literal question.
func buildUserContext(rc summarize.Context, status types.CleanupStatus, question string) string {
	return strings.TrimSpace(fmt.Sprintf(`
Zone context:
- Name: %s
- Zone ID: %s
- Scene ID: %s
- Approximate coordinates: %g N, %g E

Current spill:
- Spill ID: %s
- Oil type: %s
- Area: %g km²
- Thickness class: %s
- Detection confidence: %.0f%%
- Cleanup status: %s

Historical pattern summary:
%s

Operator question:
%s

Respond as an expert spill analyst. Include:
- Interpretation of historical trend
- Likely source/risk drivers
- Risk level (LOW / MEDIUM / HIGH)
- 2-3 concrete recommended actions.`,
		rc.Zone.Name, rc.Zone.ZoneID, rc.Zone.SceneID, rc.Zone.Lat, rc.Zone.Lon,
		rc.Spill.SpillID, rc.Spill.OilType, rc.Spill.AreaKM2, rc.Spill.Thickness,
		rc.Spill.Confidence*100, status,
		rc.HistoryText,
		question,
	))
}
