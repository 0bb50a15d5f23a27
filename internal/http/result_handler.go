package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"face-quiz/internal/domain"
	"face-quiz/internal/repository"
)

// ResultHandler expone la persistencia de resultados.
type ResultHandler struct {
	logger  *zap.Logger
	results repository.ResultRepository
	cache   repository.ResultCache
}

func NewResultHandler(logger *zap.Logger, results repository.ResultRepository, cache repository.ResultCache) *ResultHandler {
	return &ResultHandler{logger: logger, results: results, cache: cache}
}

// SaveResult maneja POST /results. Un payload que viola el esquema es un
// defecto del cliente: 400, a diferencia de las degradaciones de la
// pipeline que nunca llegan aquí.
func (h *ResultHandler) SaveResult(c *gin.Context) {
	var req struct {
		PersonalityType string                   `json:"personality_type" binding:"required"`
		AnimalType      string                   `json:"animal_type" binding:"required"`
		Gender          string                   `json:"gender" binding:"required"`
		EmotionScore    float64                  `json:"emotion_score"`
		FacialFeatures  domain.FacialFeatures    `json:"facial_features" binding:"required"`
		SurveyAnswers   []domain.SurveyAnswer    `json:"survey_answers" binding:"required"`
		Report          domain.PersonalityReport `json:"report" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid save result request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !domain.ValidPersonalityType(req.PersonalityType) || !domain.ValidAnimalType(req.AnimalType) || !domain.ValidGender(req.Gender) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	claims, ok := GetGuestClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	record := domain.TestResult{
		ID:              uuid.NewString(),
		UserID:          claims.UserID,
		PersonalityType: domain.PersonalityType(req.PersonalityType),
		AnimalType:      domain.AnimalType(req.AnimalType),
		Gender:          domain.Gender(req.Gender),
		EmotionScore:    req.EmotionScore,
		FacialFeatures:  req.FacialFeatures,
		SurveyAnswers:   req.SurveyAnswers,
		Report:          req.Report,
		CreatedAt:       time.Now().UTC(),
	}

	if err := h.results.Save(c.Request.Context(), record); err != nil {
		h.logger.Error("save result failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save result"})
		return
	}
	if h.cache != nil {
		h.cache.Set(c.Request.Context(), record)
	}

	c.JSON(http.StatusCreated, gin.H{"result": record})
}

// ListResults maneja GET /results/:userId, más recientes primero.
func (h *ResultHandler) ListResults(c *gin.Context) {
	userID := c.Param("userId")

	claims, ok := GetGuestClaims(c)
	if !ok || claims.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	results, err := h.results.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list results failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetResult maneja GET /results/detail/:id con lectura vía cache.
func (h *ResultHandler) GetResult(c *gin.Context) {
	id := c.Param("id")

	claims, ok := GetGuestClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	if h.cache != nil {
		if result, hit := h.cache.Get(c.Request.Context(), id); hit {
			if result.UserID != claims.UserID {
				c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"result": result})
			return
		}
	}

	result, err := h.results.Get(c.Request.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
		return
	}
	if err != nil {
		h.logger.Error("get result failed", zap.Error(err), zap.String("result_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch result"})
		return
	}
	if result.UserID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if h.cache != nil {
		h.cache.Set(c.Request.Context(), result)
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
