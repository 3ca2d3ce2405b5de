package router

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/config"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/middleware"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/handler"
)

func New(injector *do.Injector) *gin.Engine {
	cfg := do.MustInvoke[*config.Config](injector)
	log := do.MustInvoke[*zap.Logger](injector)

	sessionHandler := do.MustInvoke[*handler.SessionHandler](injector)
	emailHandler := do.MustInvoke[*handler.EmailHandler](injector)
	chatHandler := do.MustInvoke[*handler.ChatHandler](injector)
	oauthHandler := do.MustInvoke[*handler.OAuthHandler](injector)
	settingHandler := do.MustInvoke[*handler.SettingHandler](injector)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(cfg))
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("", sessionHandler.ListSessions)
			sessions.GET("/active", sessionHandler.ActiveCount)
			sessions.GET("/stats", sessionHandler.Stats)
			sessions.POST("/cleanup", sessionHandler.Cleanup)
			sessions.GET("/:session_id", sessionHandler.GetSession)
			sessions.PATCH("/:session_id", sessionHandler.UpdateSession)

			sessions.PUT("/:session_id/participants", sessionHandler.ReplaceParticipants)
			sessions.POST("/:session_id/participants", sessionHandler.AddParticipant)
			sessions.GET("/:session_id/participants", sessionHandler.ListParticipants)

			sessions.POST("/:session_id/emails", emailHandler.LogAttempt)
			sessions.GET("/:session_id/emails", emailHandler.ListBySession)

			sessions.GET("/:session_id/chats", chatHandler.History)
		}

		emails := v1.Group("/emails")
		{
			emails.GET("/unsent", emailHandler.ListPendingOrFailed)
			emails.PATCH("/:log_id", emailHandler.UpdateStatus)
		}

		chats := v1.Group("/chats")
		{
			chats.POST("", chatHandler.LogChat)
		}

		tokens := v1.Group("/oauth/tokens")
		{
			tokens.PUT("", oauthHandler.UpsertToken)
			tokens.GET("", oauthHandler.GetToken)
			tokens.PATCH("/:token_id", oauthHandler.RefreshToken)
		}

		settings := v1.Group("/settings")
		{
			settings.PUT("/:key", settingHandler.SetSetting)
			settings.GET("/:key", settingHandler.GetSetting)
		}
	}

	return r
}
