package http

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"face-quiz/internal/domain"
	"face-quiz/internal/repository"
	"face-quiz/internal/service"
)

// AnalyzeHandler expone la pipeline de análisis.
type AnalyzeHandler struct {
	logger    *zap.Logger
	extractor *service.FeatureExtractor
	reports   *service.ReportService
	results   repository.ResultRepository
	cache     repository.ResultCache
}

func NewAnalyzeHandler(
	logger *zap.Logger,
	extractor *service.FeatureExtractor,
	reports *service.ReportService,
	results repository.ResultRepository,
	cache repository.ResultCache,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		logger:    logger,
		extractor: extractor,
		reports:   reports,
		results:   results,
		cache:     cache,
	}
}

// AnalyzeFace maneja POST /analyze/face: imagen en base64 -> medidas
// faciales + arquetipo. Nunca falla por mala detección; solo por payload
// malformado.
func (h *AnalyzeHandler) AnalyzeFace(c *gin.Context) {
	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze face request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		h.logger.Warn("invalid image encoding", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image encoding"})
		return
	}

	features, animal := h.extractor.Extract(c.Request.Context(), image)

	c.JSON(http.StatusOK, gin.H{
		"facial_features": features,
		"animal_type":     animal,
	})
}

// Analyze maneja POST /analyze: ejecuta la pipeline completa y, si viene
// user_id, persiste el resultado en segundo plano sin bloquear la
// respuesta.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req struct {
		FacialFeatures domain.FacialFeatures `json:"facial_features" binding:"required"`
		SurveyAnswers  []domain.SurveyAnswer `json:"survey_answers" binding:"required"`
		Gender         string                `json:"gender" binding:"required"`
		UserID         string                `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !domain.ValidGender(req.Gender) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gender"})
		return
	}

	result := h.reports.Analyze(c.Request.Context(), req.FacialFeatures, req.SurveyAnswers, domain.Gender(req.Gender))

	resultID := uuid.NewString()
	if req.UserID != "" {
		record := domain.TestResult{
			ID:              resultID,
			UserID:          req.UserID,
			PersonalityType: result.PersonalityType,
			AnimalType:      result.AnimalType,
			Gender:          result.Gender,
			EmotionScore:    result.EmotionScore,
			FacialFeatures:  result.FacialFeatures,
			SurveyAnswers:   result.SurveyAnswers,
			Report:          result.Report,
			CreatedAt:       time.Now().UTC(),
		}
		// Fire-and-forget: un fallo de persistencia se loguea y no
		// bloquea la entrega del informe.
		go h.persistResult(record)
	}

	c.JSON(http.StatusOK, gin.H{
		"result_id": resultID,
		"result":    result,
	})
}

func (h *AnalyzeHandler) persistResult(record domain.TestResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.results.Save(ctx, record); err != nil {
		h.logger.Error("save analysis result failed", zap.Error(err), zap.String("result_id", record.ID))
		return
	}
	if h.cache != nil {
		h.cache.Set(ctx, record)
	}
}
