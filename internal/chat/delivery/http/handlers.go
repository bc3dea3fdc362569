package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chat-orchestrator/internal/chat"
	"chat-orchestrator/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Classifies the utterance and answers it with a text reply, a generated image or a search-augmented answer.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "All providers unavailable"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	envelope, err := h.uc.Handle(ctx, chat.HandleInput{
		SessionID: sessionID(c),
		Message:   req.Message,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, chatResp{ResponseEnvelope: envelope, Status: "success"})
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the stored messages for the caller's session.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} historyResp
// @Router      /api/history [GET]
func (h *handler) History(c *gin.Context) {
	messages := h.uc.History(c.Request.Context(), sessionID(c))
	response.OK(c, historyResp{Messages: messages, Count: len(messages)})
}

// Clear godoc
// @Summary     Clear conversation history
// @Description Drops the stored messages for the caller's session.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} clearResp
// @Router      /api/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	h.uc.Clear(c.Request.Context(), sessionID(c))
	response.OK(c, clearResp{Cleared: true})
}

// Status godoc
// @Summary     Orchestrator status
// @Description Reports per-provider availability and the live session count.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} chat.StatusOutput
// @Router      /api/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.uc.Status(c.Request.Context()))
}

// respondError translates domain errors into HTTP responses
func (h *handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, chat.ErrEmptyMessage) {
		response.Error(c, err, nil)
		return
	}

	var orchErr *chat.OrchestrationError
	if errors.As(err, &orchErr) {
		response.ServiceUnavailable(c, err)
		return
	}

	response.InternalError(c, err)
}
