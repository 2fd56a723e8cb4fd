// Package notehandler exposes the coaching-notes endpoints.
package notehandler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/note"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/dto"
)

const defaultUserID = "default"

// CreateNoteRequest is the body of POST /v1/notes.
type CreateNoteRequest struct {
	UserID  string   `json:"user_id"`
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

type NoteHandler struct {
	service *note.Service
	log     zerolog.Logger
}

func NewNoteHandler(service *note.Service, log zerolog.Logger) *NoteHandler {
	return &NoteHandler{
		service: service,
		log:     log.With().Str("component", "note-handler").Logger(),
	}
}

// Create stores a new note.
func (h *NoteHandler) Create(c *gin.Context) {
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Response{
			Success: false,
			Error:   &dto.ErrorInfo{Code: "VALIDATION", Message: "title and content are required"},
		})
		return
	}
	if req.UserID == "" {
		req.UserID = defaultUserID
	}

	created, err := h.service.Create(c.Request.Context(), &note.Note{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		h.log.Error().Err(err).Str("user_id", req.UserID).Msg("create note failed")
		status, body := dto.FromError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(created))
}

// List returns the user's notes, newest first.
func (h *NoteHandler) List(c *gin.Context) {
	userID := c.DefaultQuery("user_id", defaultUserID)

	notes, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("list notes failed")
		status, body := dto.FromError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, dto.OK(notes))
}

// Delete removes one of the user's notes.
func (h *NoteHandler) Delete(c *gin.Context) {
	userID := c.DefaultQuery("user_id", defaultUserID)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Response{
			Success: false,
			Error:   &dto.ErrorInfo{Code: "VALIDATION", Message: "note id must be a number"},
		})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Uint64("note_id", id).Msg("delete note failed")
		status, body := dto.FromError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"deleted": id}))
}
