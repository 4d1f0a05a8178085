package http

import (
	"bank-policy-assistant/internal/assistant"
)

// --- Request DTOs ---

type chatReq struct {
	Username string `json:"username" binding:"required,min=1,max=255"`
	Query    string `json:"query"    binding:"max=2000"`
}

func (r chatReq) validate() error { return nil }

// --- Response DTOs ---

type chatResp struct {
	Reply  string `json:"reply"`
	Intent string `json:"intent"`
}

func (h *handler) newChatResp(out assistant.Output) chatResp {
	return chatResp{
		Reply:  out.Reply,
		Intent: string(out.Intent),
	}
}
