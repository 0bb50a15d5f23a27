package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"face-quiz/internal/service"
)

// AuthHandler emite identidades de invitado.
type AuthHandler struct {
	logger   *zap.Logger
	tokenSvc *service.TokenService
}

func NewAuthHandler(logger *zap.Logger, tokenSvc *service.TokenService) *AuthHandler {
	return &AuthHandler{logger: logger, tokenSvc: tokenSvc}
}

// IssueGuest maneja POST /auth/guest.
func (h *AuthHandler) IssueGuest(c *gin.Context) {
	userID, token, err := h.tokenSvc.IssueGuestToken()
	if err != nil {
		h.logger.Error("issue guest token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id": userID,
		"token":   token,
	})
}
