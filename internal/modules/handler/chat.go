package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/serializer"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/service"
)

type ChatHandler struct {
	svc service.ChatService
}

func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type LogChatReq struct {
	SessionID *string `json:"session_id"`
	Prompt    string  `json:"prompt" binding:"required"`
	Response  string  `json:"response" binding:"required"`
	Platform  string  `json:"platform"`
}

func (h *ChatHandler) LogChat(c *gin.Context) {
	req := LogChatReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	l, err := h.svc.Log(c.Request.Context(), service.ChatEntry{
		SessionID: req.SessionID,
		Prompt:    req.Prompt,
		Response:  req.Response,
		Platform:  req.Platform,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: l})
}

type ChatHistoryReq struct {
	Limit int `form:"limit,default=50" binding:"min=0,max=500"`
}

func (h *ChatHandler) History(c *gin.Context) {
	sessionID := c.Param("session_id")
	req := ChatHistoryReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	logs := h.svc.History(c.Request.Context(), sessionID, req.Limit)
	c.JSON(http.StatusOK, serializer.Response{Data: logs})
}
