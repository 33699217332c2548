package api

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newsroom/newsdesk/app/cfg"
)

func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	cfg := cfg.Get()

	r.GET("/articles", handler.GetArticles)
	r.GET("/articles/search", handler.SearchArticles)
	r.GET("/articles/:id", handler.GetArticleByID)

	r.GET("/bookmarks", handler.GetBookmarks)
	r.POST("/bookmarks/:id/toggle", handler.ToggleBookmark)

	r.GET("/preferences", handler.GetPreferences)
	r.PUT("/preferences", handler.UpdatePreferences)

	r.POST("/chat", handler.Chat)
	r.GET("/chat/messages", handler.GetChatMessages)

	r.POST("/speech", handler.Speak)
	r.DELETE("/speech", handler.StopSpeech)
	r.GET("/speech", handler.GetSpeechStatus)

	r.GET("/health", handler.GetHealth)
	r.GET("/stats", handler.GetStats)

	// Admin endpoints are enabled only when an access key is configured
	if cfg.APIAccessKey != "" {
		admin := r.Group("/admin")
		admin.Use(authMiddleware(cfg.APIAccessKey))
		{
			admin.POST("/reload", handler.AdminReloadCatalog)
		}
		slog.Info("Admin endpoints enabled with authentication")
	} else {
		slog.Info("Admin endpoints disabled (API_ACCESS_KEY not set)")
	}

	r.GET("/", func(c *gin.Context) {
		endpoints := map[string]string{
			"articles":    "/articles?category=<category>",
			"search":      "/articles/search?q=<query>",
			"article":     "/articles/<id>",
			"bookmarks":   "/bookmarks",
			"toggle":      "/bookmarks/<id>/toggle (POST)",
			"preferences": "/preferences (GET, PUT)",
			"chat":        "/chat (POST), /chat/messages",
			"speech":      "/speech (GET, POST, DELETE)",
			"health":      "/health",
			"stats":       "/stats",
		}

		if cfg.APIAccessKey != "" {
			endpoints["reload"] = "/admin/reload (POST, requires X-API-Key header)"
		}

		c.JSON(200, gin.H{
			"service":     "Newsdesk",
			"version":     cfg.Version,
			"description": "Mock-backed news reader with search, bookmarks, sentiment and a rule-based assistant",
			"endpoints":   endpoints,
			"admin_status": map[string]interface{}{
				"enabled":       cfg.APIAccessKey != "",
				"auth_required": cfg.APIAccessKey != "",
				"header":        "X-API-Key",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}

func authMiddleware(apiAccessKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		providedKey := c.GetHeader("X-API-Key")

		if providedKey == "" {
			c.JSON(401, gin.H{
				"error":   "API key required",
				"message": "Provide API key in X-API-Key header",
			})
			c.Abort()
			return
		}

		if providedKey != apiAccessKey {
			c.JSON(401, gin.H{
				"error":   "Invalid API key",
				"message": "The provided API key is not valid",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
