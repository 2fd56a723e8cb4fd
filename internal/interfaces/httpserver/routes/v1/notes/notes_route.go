package notes

import (
	"github.com/gin-gonic/gin"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/handlers/notehandler"
)

// NotesRoute wires the coaching-notes endpoints.
type NotesRoute struct {
	handler *notehandler.NoteHandler
}

func NewNotesRoute(handler *notehandler.NoteHandler) *NotesRoute {
	return &NotesRoute{handler: handler}
}

func (r *NotesRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/notes", r.handler.List)
	router.POST("/notes", r.handler.Create)
	router.DELETE("/notes/:id", r.handler.Delete)
}
