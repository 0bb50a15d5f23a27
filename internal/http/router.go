package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"face-quiz/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	authH *AuthHandler,
	analyzeH *AnalyzeHandler,
	resultH *ResultHandler,
	tokenSvc *service.TokenService,
	limiter service.RateLimiter,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	auth := r.Group("/auth")
	auth.POST("/guest", authH.IssueGuest)

	r.GET("/survey/questions", ListSurveyQuestions)

	analyze := r.Group("/analyze", RateLimitMiddleware(limiter))
	analyze.POST("", analyzeH.Analyze)
	analyze.POST("/face", analyzeH.AnalyzeFace)

	// Los resultados pertenecen al invitado dueño del token.
	results := r.Group("/results", GuestAuthMiddleware(tokenSvc))
	results.POST("", resultH.SaveResult)
	results.GET("/:userId", resultH.ListResults)
	results.GET("/detail/:id", resultH.GetResult)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
