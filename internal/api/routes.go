package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/clerk/internal/assistant"
	"github.com/zulandar/clerk/internal/config"
	"github.com/zulandar/clerk/internal/store"
	"gorm.io/gorm"
)

// registerRoutes sets up all API routes on the Gin router.
func registerRoutes(router *gin.Engine, opts StartOpts) {
	router.GET("/healthz", handleHealth())

	v1 := router.Group("/v1")
	v1.POST("/chat", handleChat(opts.Engine, opts.Config))
	v1.POST("/tools/:name", handleTool(opts.Engine, opts.Config))
	if opts.DB != nil {
		v1.GET("/transcripts/:channelID/:userID", handleTranscript(opts.DB))
	}
}

func handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// chatRequest is one conversational turn over HTTP.
type chatRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ChannelID string `json:"channelId"`
	Message   string `json:"message" binding:"required"`
}

func handleChat(engine *assistant.Engine, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.ChannelID == "" {
			req.ChannelID = "api"
		}

		resp := engine.Handle(c.Request.Context(), assistant.Context{
			UserID:    req.UserID,
			ChannelID: req.ChannelID,
			Platform:  "api",
			IsAdmin:   cfg.IsAdmin(req.UserID),
		}, req.Message)
		c.JSON(http.StatusOK, resp)
	}
}

// toolRequest is a direct tool invocation, bypassing routing.
type toolRequest struct {
	UserID string           `json:"userId"`
	Params assistant.Params `json:"params"`
}

func handleTool(engine *assistant.Engine, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req toolRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := engine.Dispatch(c.Request.Context(), c.Param("name"), req.Params, assistant.ToolContext{
			UserID:  req.UserID,
			IsAdmin: cfg.IsAdmin(req.UserID),
		})

		status := http.StatusOK
		if !result.Success {
			switch result.Code {
			case assistant.CodeToolNotFound:
				status = http.StatusNotFound
			case assistant.CodeAuthRequired:
				status = http.StatusUnauthorized
			case assistant.CodeAdminRequired:
				status = http.StatusForbidden
			case assistant.CodeInvalidParams:
				status = http.StatusBadRequest
			default:
				status = http.StatusInternalServerError
			}
		}
		c.JSON(status, result)
	}
}

func handleTranscript(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.FindOrCreateChatSession(db, "api", c.Param("channelID"), c.Param("userID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
			return
		}
		turns, err := store.Transcript(db, session.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load transcript"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessionId": session.ID, "turns": turns})
	}
}
