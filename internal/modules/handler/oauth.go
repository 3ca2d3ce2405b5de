package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/repo"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/serializer"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/service"
)

type OAuthHandler struct {
	svc service.OAuthService
}

func NewOAuthHandler(svc service.OAuthService) *OAuthHandler {
	return &OAuthHandler{svc: svc}
}

type UpsertTokenReq struct {
	Platform     string     `json:"platform" binding:"required"`
	UserEmail    string     `json:"user_email" binding:"required"`
	AccessToken  string     `json:"access_token" binding:"required"`
	RefreshToken string     `json:"refresh_token"`
	Scope        string     `json:"scope"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

func (h *OAuthHandler) UpsertToken(c *gin.Context) {
	req := UpsertTokenReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	t, err := h.svc.Upsert(c.Request.Context(), req.Platform, req.UserEmail, service.TokenInput{
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		Scope:        req.Scope,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: t})
}

type GetTokenReq struct {
	Platform  string `form:"platform" binding:"required"`
	UserEmail string `form:"user_email" binding:"required"`
}

func (h *OAuthHandler) GetToken(c *gin.Context) {
	req := GetTokenReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	t, _ := h.svc.Get(c.Request.Context(), req.Platform, req.UserEmail)
	if t == nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("oauth token not found"))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: t})
}

type RefreshTokenReq struct {
	AccessToken  string     `json:"access_token" binding:"required"`
	RefreshToken string     `json:"refresh_token"`
	Scope        string     `json:"scope"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

func (h *OAuthHandler) RefreshToken(c *gin.Context) {
	tokenID := c.Param("token_id")
	req := RefreshTokenReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err := h.svc.Refresh(c.Request.Context(), tokenID, service.TokenInput{
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		Scope:        req.Scope,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, repo.ErrTokenNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("oauth token not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "ok"})
}
