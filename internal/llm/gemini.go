package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Chat(ctx context.Context, systemPrompt string, messages []Message, tools []Tool) (*Response, error) {
	decls := make([]*genai.FunctionDeclaration, len(tools))
	for i, t := range tools {
		decls[i] = &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  toGenaiSchema(t.Parameters),
		}
	}

	// Our roles already use Gemini's vocabulary.
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		if m.Content == "" {
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  m.Role,
			Parts: []*genai.Part{genai.NewPartFromText(m.Content)},
		})
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Tools:             []*genai.Tool{{FunctionDeclarations: decls}},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini chat: %w", err)
	}

	result := &Response{}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return result, nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.FunctionCall != nil {
			result.ToolCalls = append(result.ToolCalls, ToolCall{
				ID:     part.FunctionCall.ID,
				Name:   part.FunctionCall.Name,
				Params: part.FunctionCall.Args,
			})
			continue
		}
		if part.Text != "" && !part.Thought {
			result.Content += part.Text
		}
	}
	return result, nil
}

// toGenaiSchema converts the JSON Schema maps built in tools.go.
func toGenaiSchema(m map[string]any) *genai.Schema {
	s := &genai.Schema{}
	switch m["type"] {
	case "object":
		s.Type = genai.TypeObject
	case "string":
		s.Type = genai.TypeString
	case "array":
		s.Type = genai.TypeArray
	case "integer":
		s.Type = genai.TypeInteger
	case "number":
		s.Type = genai.TypeNumber
	case "boolean":
		s.Type = genai.TypeBoolean
	}
	if d, ok := m["description"].(string); ok {
		s.Description = d
	}
	if e, ok := m["enum"].([]string); ok {
		s.Enum = e
	}
	if req, ok := m["required"].([]string); ok {
		s.Required = req
	}
	if items, ok := m["items"].(map[string]any); ok {
		s.Items = toGenaiSchema(items)
	}
	if props, ok := m["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, p := range props {
			if pm, ok := p.(map[string]any); ok {
				s.Properties[name] = toGenaiSchema(pm)
			}
		}
	}
	return s
}
