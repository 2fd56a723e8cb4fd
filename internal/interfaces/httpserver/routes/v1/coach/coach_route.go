package coach

import (
	"github.com/gin-gonic/gin"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/handlers/coachinghandler"
)

// CoachRoute wires the coaching-conversation endpoints.
type CoachRoute struct {
	handler *coachinghandler.CoachingHandler
}

func NewCoachRoute(handler *coachinghandler.CoachingHandler) *CoachRoute {
	return &CoachRoute{handler: handler}
}

func (r *CoachRoute) RegisterRouter(router gin.IRouter) {
	coach := router.Group("/coach")
	coach.POST("/turns", r.handler.SubmitTurn)
	coach.GET("/conversations/:id/turns", r.handler.ListTurns)
	coach.DELETE("/conversations/:id", r.handler.ClearConversation)
}
