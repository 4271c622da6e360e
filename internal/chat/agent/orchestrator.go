// Package agent drives the tool-calling conversation loop: it relays the
// conversation to the model, executes any function call the model requests,
// feeds the result back, and repeats until the model answers in plain text.
package agent

import (
	"context"
	"strings"
	"time"

	"fixfurn_backend/platform/ai/gemini"
	"fixfurn_backend/platform/apperr"
	"fixfurn_backend/platform/logger"

	"google.golang.org/genai"
)

// Model is the narrow LLM surface the orchestrator depends on.
type Model interface {
	Name() string
	GenerateContent(ctx context.Context, req *gemini.Request) (*genai.GenerateContentResponse, error)
}

// Turn is one prior (user, assistant) exchange.
type Turn struct {
	User      string
	Assistant string
}

// Config bounds a single conversational turn.
type Config struct {
	// MaxToolCalls caps tool dispatches per user turn. When the budget is
	// exhausted the final model call disables function calling so the model
	// must answer with what it has.
	MaxToolCalls int
	// CallTimeout bounds each individual model request.
	CallTimeout time.Duration
}

// Orchestrator owns the request/response cycle with the model.
type Orchestrator struct {
	model      Model
	dispatcher *Dispatcher
	log        *logger.Logger
	system     string
	tools      []*genai.Tool
	cfg        Config
}

// NewOrchestrator creates the conversation orchestrator.
func NewOrchestrator(model Model, dispatcher *Dispatcher, system string, log *logger.Logger, cfg Config) *Orchestrator {
	if cfg.MaxToolCalls < 1 {
		cfg.MaxToolCalls = 8
	}
	return &Orchestrator{
		model:      model,
		dispatcher: dispatcher,
		log:        log,
		system:     system,
		tools:      Declarations(),
		cfg:        cfg,
	}
}

// Respond runs one user turn to completion and returns the assistant's final
// text, trimmed. A model-side failure is returned as an upstream error; tool
// failures never are, they flow back to the model as ordinary results.
func (o *Orchestrator) Respond(ctx context.Context, message string, history []Turn) (string, error) {
	contents := buildContents(history, message)

	toolCalls := 0
	for {
		exhausted := toolCalls >= o.cfg.MaxToolCalls
		resp, err := o.generate(ctx, contents, exhausted)
		if err != nil {
			return "", apperr.Wrap(apperr.KindUnavailable, "model request failed", err).WithOp("chat.Respond")
		}

		call, callContent := firstFunctionCall(resp)
		if call == nil || exhausted {
			return strings.TrimSpace(responseText(resp)), nil
		}

		toolCalls++
		args := normalizeArgs(call.Args)

		started := time.Now()
		payload := o.dispatcher.Dispatch(ctx, call.Name, args)
		ok, _ := payload["ok"].(bool)
		o.log.ToolCall(call.Name, ok, float64(time.Since(started).Milliseconds()))

		contents = append(contents, callContent, functionResponseContent(call, payload))
	}
}

func (o *Orchestrator) generate(ctx context.Context, contents []*genai.Content, disableTools bool) (*genai.GenerateContentResponse, error) {
	if o.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.CallTimeout)
		defer cancel()
	}

	return o.model.GenerateContent(ctx, &gemini.Request{
		System:                 o.system,
		Contents:               contents,
		Tools:                  o.tools,
		DisableFunctionCalling: disableTools,
	})
}

// buildContents converts prior turns plus the latest user message into model
// contents, skipping empty halves of a turn.
func buildContents(history []Turn, message string) []*genai.Content {
	contents := make([]*genai.Content, 0, 2*len(history)+1)
	for _, turn := range history {
		if turn.User != "" {
			contents = append(contents, genai.NewContentFromText(turn.User, genai.RoleUser))
		}
		if turn.Assistant != "" {
			contents = append(contents, genai.NewContentFromText(turn.Assistant, genai.RoleModel))
		}
	}
	return append(contents, genai.NewContentFromText(message, genai.RoleUser))
}

// firstFunctionCall scans all candidates and parts in order and returns the
// first function call found, along with the candidate content carrying it so
// the call can be replayed into the conversation history.
func firstFunctionCall(resp *genai.GenerateContentResponse) (*genai.FunctionCall, *genai.Content) {
	if resp == nil {
		return nil, nil
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.FunctionCall != nil {
				return part.FunctionCall, candidate.Content
			}
		}
	}
	return nil, nil
}

// responseText concatenates the text parts of the first candidate that has any.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range candidate.Content.Parts {
			if part != nil {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	return ""
}

func functionResponseContent(call *genai.FunctionCall, payload map[string]any) *genai.Content {
	return &genai.Content{
		Role: genai.RoleUser,
		Parts: []*genai.Part{{
			FunctionResponse: &genai.FunctionResponse{
				ID:       call.ID,
				Name:     call.Name,
				Response: payload,
			},
		}},
	}
}

// normalizeArgs deep-copies the model-provided arguments into plain Go values
// so the dispatcher never sees a client-specific representation. Nested
// objects, lists, scalars and nulls all convert faithfully.
func normalizeArgs(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeArgs(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}
