package llmprovider

import (
	"context"

	"bank-policy-assistant/pkg/gemini"
	"bank-policy-assistant/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		SystemInstruction: convertToQwenContent(req.SystemInstruction),
		Messages:          convertToQwenContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromQwenContent(resp.Content),
		ProviderName: "qwen",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for Qwen
func convertToQwenContent(msg *Message) *qwen.Content {
	if msg == nil {
		return nil
	}
	parts := make([]qwen.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = qwen.Part{Text: p.Text}
	}
	return &qwen.Content{Role: msg.Role, Parts: parts}
}

func convertToQwenContents(msgs []Message) []qwen.Content {
	contents := make([]qwen.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToQwenContent(&msgs[i])
	}
	return contents
}

func convertFromQwenContent(content qwen.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}
