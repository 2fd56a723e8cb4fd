// Package coachinghandler exposes the coaching-turn endpoints.
package coachinghandler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/coaching"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/metrics"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/dto"
	coachreq "github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/requests/coach"
)

// defaultUserID applies when a request carries no user id. The service runs
// single-profile unless a fronting proxy injects identities.
const defaultUserID = "default"

type CoachingHandler struct {
	service *coaching.Service
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewCoachingHandler(service *coaching.Service, m *metrics.Metrics, log zerolog.Logger) *CoachingHandler {
	return &CoachingHandler{
		service: service,
		metrics: m,
		log:     log.With().Str("component", "coaching-handler").Logger(),
	}
}

// SubmitTurn handles one user message and returns the coach's reply together
// with the classified phase and detected emotions.
func (h *CoachingHandler) SubmitTurn(c *gin.Context) {
	var req coachreq.SubmitTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Response{
			Success: false,
			Error:   &dto.ErrorInfo{Code: "VALIDATION", Message: "conversation_id and message are required"},
		})
		return
	}
	if req.UserID == "" {
		req.UserID = defaultUserID
	}

	result, err := h.service.SubmitTurn(c.Request.Context(), req.UserID, req.ConversationID, req.Message)
	if err != nil {
		h.log.Error().Err(err).Str("conversation_id", req.ConversationID).Msg("submit turn failed")
		status, body := dto.FromError(err)
		c.JSON(status, body)
		return
	}

	h.metrics.TurnsTotal.WithLabelValues(string(result.Phase)).Inc()
	c.JSON(http.StatusOK, dto.OK(result))
}

// ListTurns returns the stored exchanges of a conversation, oldest first.
func (h *CoachingHandler) ListTurns(c *gin.Context) {
	conversationID := c.Param("id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	exchanges, err := h.service.RecentExchanges(c.Request.Context(), conversationID, limit)
	if err != nil {
		h.log.Error().Err(err).Str("conversation_id", conversationID).Msg("list turns failed")
		status, body := dto.FromError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, dto.OK(exchanges))
}

// ClearConversation deletes every stored exchange of a conversation. Phase is
// derived from history, so this also resets the conversation to exploration.
func (h *CoachingHandler) ClearConversation(c *gin.Context) {
	conversationID := c.Param("id")

	if err := h.service.ClearHistory(c.Request.Context(), conversationID); err != nil {
		h.log.Error().Err(err).Str("conversation_id", conversationID).Msg("clear conversation failed")
		status, body := dto.FromError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"cleared": conversationID}))
}
