package strengths

import (
	"github.com/gin-gonic/gin"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/handlers/strengthhandler"
)

// StrengthsRoute wires the strengths-ranking endpoints.
type StrengthsRoute struct {
	handler *strengthhandler.StrengthHandler
}

func NewStrengthsRoute(handler *strengthhandler.StrengthHandler) *StrengthsRoute {
	return &StrengthsRoute{handler: handler}
}

func (r *StrengthsRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/strengths", r.handler.List)
	router.PUT("/strengths", r.handler.Replace)
}
