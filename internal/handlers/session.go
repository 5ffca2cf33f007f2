// internal/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/cleantheory-backend/internal/services"
	"github.com/javajoker/cleantheory-backend/internal/utils"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// POST /sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	session, err := h.sessionService.CreateSession()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to create session")
		return
	}

	utils.CreatedResponse(c, session)
}
