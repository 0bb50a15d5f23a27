package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"face-quiz/internal/service"
)

const guestClaimsKey = "guest_claims"

// GuestAuthMiddleware valida el token de invitado y guarda los claims en
// el contexto.
func GuestAuthMiddleware(tokenSvc *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := tokenSvc.ParseToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(guestClaimsKey, claims)
		c.Next()
	}
}

// GetGuestClaims obtiene los claims del invitado desde el contexto.
func GetGuestClaims(c *gin.Context) (service.GuestClaims, bool) {
	val, ok := c.Get(guestClaimsKey)
	if !ok {
		return service.GuestClaims{}, false
	}
	claims, ok := val.(service.GuestClaims)
	return claims, ok
}
