package http

import (
	"chat-orchestrator/internal/chat"
	"chat-orchestrator/internal/session"
)

type chatReq struct {
	Message string `json:"message"`
}

type chatResp struct {
	chat.ResponseEnvelope
	Status string `json:"status"`
}

type historyResp struct {
	Messages []session.Message `json:"messages"`
	Count    int               `json:"count"`
}

type clearResp struct {
	Cleared bool `json:"cleared"`
}
