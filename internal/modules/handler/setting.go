package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/serializer"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/service"
)

type SettingHandler struct {
	svc service.SettingService
}

func NewSettingHandler(svc service.SettingService) *SettingHandler {
	return &SettingHandler{svc: svc}
}

type SetSettingReq struct {
	Value interface{} `json:"value"`
}

func (h *SettingHandler) SetSetting(c *gin.Context) {
	key := c.Param("key")
	req := SetSettingReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Set(c.Request.Context(), key, req.Value); err != nil {
		if errors.Is(err, service.ErrEncoding) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "ok"})
}

func (h *SettingHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")
	value := h.svc.Get(c.Request.Context(), key, nil)
	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"key": key, "value": value}})
}
