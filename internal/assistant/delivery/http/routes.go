package http

import (
	"bank-policy-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Chat is rate limited per user to protect the LLM provider budget.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}
