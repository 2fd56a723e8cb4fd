package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/routes/v1/coach"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/routes/v1/notes"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/routes/v1/strengths"
)

// V1Route groups every versioned API route under /v1.
type V1Route struct {
	coach     *coach.CoachRoute
	strengths *strengths.StrengthsRoute
	notes     *notes.NotesRoute
}

func NewV1Route(
	coach *coach.CoachRoute,
	strengths *strengths.StrengthsRoute,
	notes *notes.NotesRoute,
) *V1Route {
	return &V1Route{
		coach:     coach,
		strengths: strengths,
		notes:     notes,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")

	v1Route.coach.RegisterRouter(v1Router)
	v1Route.strengths.RegisterRouter(v1Router)
	v1Route.notes.RegisterRouter(v1Router)
}
