package api

import (
	"github.com/newsroom/newsdesk/app/assistant"
	"github.com/newsroom/newsdesk/app/database"
	"github.com/newsroom/newsdesk/app/news"
	"github.com/newsroom/newsdesk/app/reader"
	"github.com/newsroom/newsdesk/app/speech"
	"github.com/newsroom/newsdesk/app/tasks"
)

type Handler struct {
	catalog      *news.Catalog
	readerSess   *reader.Session
	responder    *assistant.Responder
	chatSess     *assistant.Session
	bookmarkRepo database.BookmarkRepository
	prefRepo     database.PreferenceRepository
	speaker      speech.Speaker
	scheduler    tasks.TaskSchedulerInterface
}

type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

type SpeechRequest struct {
	Text string `json:"text" binding:"required"`
}
