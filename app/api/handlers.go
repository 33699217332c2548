package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newsroom/newsdesk/app/assistant"
	"github.com/newsroom/newsdesk/app/database"
	"github.com/newsroom/newsdesk/app/news"
	"github.com/newsroom/newsdesk/app/reader"
	"github.com/newsroom/newsdesk/app/speech"
	"github.com/newsroom/newsdesk/app/tasks"
)

func NewHandler(catalog *news.Catalog, readerSess *reader.Session,
	responder *assistant.Responder, chatSess *assistant.Session,
	bookmarkRepo database.BookmarkRepository, prefRepo database.PreferenceRepository,
	speaker speech.Speaker, scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		catalog:      catalog,
		readerSess:   readerSess,
		responder:    responder,
		chatSess:     chatSess,
		bookmarkRepo: bookmarkRepo,
		prefRepo:     prefRepo,
		speaker:      speaker,
		scheduler:    scheduler,
	}
}

// GetArticles serves the reader view. An optional category parameter
// changes the selection before the view is derived.
func (h *Handler) GetArticles(c *gin.Context) {
	if raw, ok := c.GetQuery("category"); ok {
		category := news.Category(raw)
		if category != news.CategoryAll && !news.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category", "category": raw})
			return
		}
		if err := h.readerSess.SetCategory(c.Request.Context(), category); err != nil {
			slog.Error("Derive failed", "operation", "set_category", "category", raw, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
			return
		}
	} else if err := h.readerSess.Refresh(c.Request.Context()); err != nil {
		slog.Error("Derive failed", "operation", "refresh", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}

	c.JSON(http.StatusOK, h.readerSess.View())
}

// SearchArticles updates the session query and serves the derived view.
// An empty q clears the query and falls back to the category selection.
func (h *Handler) SearchArticles(c *gin.Context) {
	query := c.Query("q")

	if err := h.readerSess.SetQuery(c.Request.Context(), query); err != nil {
		slog.Error("Derive failed", "operation", "set_query", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, h.readerSess.View())
}

func (h *Handler) GetArticleByID(c *gin.Context) {
	id := c.Param("id")

	article, ok := h.catalog.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found", "id": id})
		return
	}

	bookmarked, err := h.bookmarkRepo.IsBookmarked(id)
	if err != nil {
		slog.Error("Database error", "operation", "is_bookmarked", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, reader.ArticleView{Article: *article, Bookmarked: bookmarked})
}

func (h *Handler) GetBookmarks(c *gin.Context) {
	ids, err := h.bookmarkRepo.GetIDs()
	if err != nil {
		slog.Error("Database error", "operation", "get_bookmarks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	articles := make([]reader.ArticleView, 0, len(ids))
	for _, id := range ids {
		article, ok := h.catalog.GetByID(id)
		if !ok {
			// A bookmark can outlive its article across catalog reloads
			continue
		}
		articles = append(articles, reader.ArticleView{Article: *article, Bookmarked: true})
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles, "total": len(articles)})
}

func (h *Handler) ToggleBookmark(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.catalog.GetByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found", "id": id})
		return
	}

	bookmarked, err := h.readerSess.ToggleBookmark(id)
	if err != nil {
		slog.Error("Database error", "operation", "toggle_bookmark", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "bookmarked": bookmarked})
}

func (h *Handler) GetPreferences(c *gin.Context) {
	prefs, err := h.prefRepo.Get()
	if err != nil {
		slog.Error("Database error", "operation", "get_preferences", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *Handler) UpdatePreferences(c *gin.Context) {
	var prefs database.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferences payload", "details": err.Error()})
		return
	}

	if err := h.prefRepo.Set(prefs); err != nil {
		slog.Error("Database error", "operation", "set_preferences", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// Chat answers a question against the loaded articles and appends both
// sides of the exchange to the transcript.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing question", "details": err.Error()})
		return
	}

	question := h.chatSess.Append(req.Question, true)

	text, err := h.responder.Answer(c.Request.Context(), req.Question, h.catalog.GetAll())
	if err != nil {
		slog.Error("Chat answer failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to answer"})
		return
	}

	answer := h.chatSess.Append(text, false)

	c.JSON(http.StatusOK, gin.H{"question": question, "answer": answer})
}

func (h *Handler) GetChatMessages(c *gin.Context) {
	messages := h.chatSess.Messages()
	c.JSON(http.StatusOK, gin.H{"messages": messages, "total": len(messages)})
}

// Speak starts an utterance. Refused when the voice preference is off.
func (h *Handler) Speak(c *gin.Context) {
	var req SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing text", "details": err.Error()})
		return
	}

	prefs, err := h.prefRepo.Get()
	if err != nil {
		slog.Error("Database error", "operation", "get_preferences", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !prefs.VoiceEnabled {
		c.JSON(http.StatusConflict, gin.H{"error": "Voice is disabled in preferences"})
		return
	}

	if err := h.speaker.Speak(req.Text); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"speaking": true})
}

func (h *Handler) StopSpeech(c *gin.Context) {
	h.speaker.Stop()
	c.JSON(http.StatusOK, gin.H{"speaking": false})
}

func (h *Handler) GetSpeechStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"speaking": h.speaker.IsSpeaking()})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"articles":  h.catalog.Count(),
	}

	if bookmarkCount, err := h.bookmarkRepo.Count(); err == nil {
		health["bookmarks"] = bookmarkCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	byCategory := make(map[string]int)
	for _, article := range h.catalog.GetAll() {
		byCategory[string(article.Category)]++
	}

	stats := map[string]interface{}{
		"articles":      h.catalog.Count(),
		"by_category":   byCategory,
		"chat_messages": h.chatSess.Len(),
		"speaking":      h.speaker.IsSpeaking(),
	}

	if bookmarkCount, err := h.bookmarkRepo.Count(); err == nil {
		stats["bookmarks"] = bookmarkCount
	}

	c.JSON(http.StatusOK, stats)
}

// AdminReloadCatalog enqueues a catalog reload from the fixture
// directory.
func (h *Handler) AdminReloadCatalog(c *gin.Context) {
	task := tasks.NewReloadCatalogTask(h.catalog)
	if err := h.scheduler.EnqueueTask(task); err != nil {
		slog.Error("Error enqueueing reload task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue reload task",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Catalog reload enqueued",
		"task": gin.H{
			"id":   task.ID,
			"type": task.Type,
		},
	})
}
