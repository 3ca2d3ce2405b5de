package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/repo"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/serializer"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/service"
)

type EmailHandler struct {
	svc service.EmailService
}

func NewEmailHandler(svc service.EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

type LogEmailReq struct {
	RecipientEmail string `json:"recipient_email" binding:"required"`
	Status         string `json:"status"`
	ErrorMessage   string `json:"error_message"`
}

func (h *EmailHandler) LogAttempt(c *gin.Context) {
	sessionID := c.Param("session_id")
	req := LogEmailReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	l, err := h.svc.Log(c.Request.Context(), sessionID, req.RecipientEmail, req.Status, req.ErrorMessage)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmailStatus) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: l})
}

type UpdateEmailReq struct {
	Status       string `json:"status" binding:"required"`
	ErrorMessage string `json:"error_message"`
	RetryCount   int    `json:"retry_count" binding:"min=0"`
}

func (h *EmailHandler) UpdateStatus(c *gin.Context) {
	logID := c.Param("log_id")
	req := UpdateEmailReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err := h.svc.UpdateStatus(c.Request.Context(), logID, req.Status, req.ErrorMessage, req.RetryCount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmailStatus):
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
		case errors.Is(err, repo.ErrEmailLogNotFound):
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("email log not found"))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		}
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "ok"})
}

func (h *EmailHandler) ListBySession(c *gin.Context) {
	sessionID := c.Param("session_id")
	logs := h.svc.ListBySession(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, serializer.Response{Data: logs})
}

func (h *EmailHandler) ListPendingOrFailed(c *gin.Context) {
	logs := h.svc.ListPendingOrFailed(c.Request.Context())
	c.JSON(http.StatusOK, serializer.Response{Data: logs})
}
