// Package strengthhandler exposes the strengths-ranking endpoints.
package strengthhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/strength"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/dto"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/functional"
)

const defaultUserID = "default"

// RankedStrengthRequest is one entry of a submitted ranking.
type RankedStrengthRequest struct {
	Rank   int    `json:"rank" binding:"required,min=1"`
	Name   string `json:"name" binding:"required"`
	Domain string `json:"domain"`
}

// ReplaceRankingRequest is the body of PUT /v1/strengths.
type ReplaceRankingRequest struct {
	UserID    string                  `json:"user_id"`
	Strengths []RankedStrengthRequest `json:"strengths" binding:"required,min=1,dive"`
}

type StrengthHandler struct {
	service *strength.Service
	log     zerolog.Logger
}

func NewStrengthHandler(service *strength.Service, log zerolog.Logger) *StrengthHandler {
	return &StrengthHandler{
		service: service,
		log:     log.With().Str("component", "strength-handler").Logger(),
	}
}

// List returns the user's full ranking, most intense first.
func (h *StrengthHandler) List(c *gin.Context) {
	userID := c.DefaultQuery("user_id", defaultUserID)

	strengths, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("list strengths failed")
		status, body := dto.FromError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, dto.OK(strengths))
}

// Replace swaps the user's entire ranking for the submitted one.
func (h *StrengthHandler) Replace(c *gin.Context) {
	var req ReplaceRankingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Response{
			Success: false,
			Error:   &dto.ErrorInfo{Code: "VALIDATION", Message: "strengths list with ranks and names is required"},
		})
		return
	}
	if req.UserID == "" {
		req.UserID = defaultUserID
	}

	strengths := functional.Map(req.Strengths, func(r RankedStrengthRequest) *strength.Strength {
		return &strength.Strength{UserID: req.UserID, Rank: r.Rank, Name: r.Name, Domain: r.Domain}
	})

	if err := h.service.Replace(c.Request.Context(), req.UserID, strengths); err != nil {
		h.log.Error().Err(err).Str("user_id", req.UserID).Msg("replace strengths failed")
		status, body := dto.FromError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"count": len(strengths)}))
}
