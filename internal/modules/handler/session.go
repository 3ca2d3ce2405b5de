package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/repo"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/serializer"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/service"
)

type SessionHandler struct {
	svc            service.SessionService
	participantSvc service.ParticipantService
}

func NewSessionHandler(svc service.SessionService, participantSvc service.ParticipantService) *SessionHandler {
	return &SessionHandler{svc: svc, participantSvc: participantSvc}
}

type CreateSessionReq struct {
	ID            string                 `json:"id"`
	Platform      string                 `json:"platform" binding:"required"`
	MeetingLink   string                 `json:"meeting_link" binding:"required"`
	Title         string                 `json:"title"`
	Status        string                 `json:"status"`
	OAuthTokenRef string                 `json:"oauth_token_ref"`
	Metadata      map[string]interface{} `json:"metadata"`
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	req := CreateSessionReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if req.Status == "" {
		req.Status = model.StatusProvisioning
	}

	s := &model.Session{
		ID:            req.ID,
		Platform:      req.Platform,
		MeetingLink:   req.MeetingLink,
		Title:         req.Title,
		Status:        req.Status,
		OAuthTokenRef: req.OAuthTokenRef,
		Metadata:      datatypes.JSONMap(req.Metadata),
	}
	if err := h.svc.Create(c.Request.Context(), s); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlatform), errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
		case errors.Is(err, service.ErrSessionExists):
			c.JSON(http.StatusConflict, serializer.Err(http.StatusConflict, err.Error(), err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		}
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: s})
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	id := c.Param("session_id")
	s, _ := h.svc.Get(c.Request.Context(), id)
	if s == nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("session not found"))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: s})
}

type UpdateSessionReq struct {
	Status         *string                `json:"status"`
	StartedAt      *time.Time             `json:"started_at"`
	CompletedAt    *time.Time             `json:"completed_at"`
	Summary        *model.Summary         `json:"summary"`
	TranscriptPath *string                `json:"transcript_path"`
	RecordingPath  *string                `json:"recording_path"`
	Metadata       map[string]interface{} `json:"metadata"`
}

func (h *SessionHandler) UpdateSession(c *gin.Context) {
	id := c.Param("session_id")
	req := UpdateSessionReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err := h.svc.Update(c.Request.Context(), id, service.UpdateSessionInput{
		Status:         req.Status,
		StartedAt:      req.StartedAt,
		CompletedAt:    req.CompletedAt,
		Summary:        req.Summary,
		TranscriptPath: req.TranscriptPath,
		RecordingPath:  req.RecordingPath,
		Metadata:       req.Metadata,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidPath):
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
		case errors.Is(err, repo.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("session not found"))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		}
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "ok"})
}

type ListSessionsReq struct {
	Limit  int `form:"limit,default=20" binding:"min=0,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	req := ListSessionsReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	sessions, err := h.svc.ListRecent(c.Request.Context(), req.Limit, req.Offset)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: sessions})
}

func (h *SessionHandler) ActiveCount(c *gin.Context) {
	count := h.svc.CountActive(c.Request.Context())
	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"active_sessions": count}})
}

func (h *SessionHandler) Stats(c *gin.Context) {
	stats := h.svc.Stats(c.Request.Context())
	c.JSON(http.StatusOK, serializer.Response{Data: stats})
}

type CleanupReq struct {
	DaysToKeep int `form:"days_to_keep,default=90" binding:"min=0"`
}

func (h *SessionHandler) Cleanup(c *gin.Context) {
	req := CleanupReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	removed, err := h.svc.Cleanup(c.Request.Context(), req.DaysToKeep)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"sessions_removed": removed}})
}

type ParticipantReq struct {
	Name           string     `json:"name" binding:"required"`
	Email          string     `json:"email" binding:"required"`
	Role           string     `json:"role"`
	PlatformUserID string     `json:"platform_user_id"`
	JoinedAt       *time.Time `json:"joined_at"`
	LeftAt         *time.Time `json:"left_at"`
}

func (r ParticipantReq) toInput() service.ParticipantInput {
	return service.ParticipantInput{
		Name:           r.Name,
		Email:          r.Email,
		Role:           r.Role,
		PlatformUserID: r.PlatformUserID,
		JoinedAt:       r.JoinedAt,
		LeftAt:         r.LeftAt,
	}
}

func (h *SessionHandler) ReplaceParticipants(c *gin.Context) {
	id := c.Param("session_id")
	var reqs []ParticipantReq
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	ins := make([]service.ParticipantInput, 0, len(reqs))
	for _, r := range reqs {
		ins = append(ins, r.toInput())
	}
	if err := h.participantSvc.Replace(c.Request.Context(), id, ins); err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "ok"})
}

func (h *SessionHandler) AddParticipant(c *gin.Context) {
	id := c.Param("session_id")
	req := ParticipantReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.participantSvc.Add(c.Request.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

func (h *SessionHandler) ListParticipants(c *gin.Context) {
	id := c.Param("session_id")
	participants := h.participantSvc.List(c.Request.Context(), id)
	c.JSON(http.StatusOK, serializer.Response{Data: participants})
}
