package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"face-quiz/internal/domain"
)

// ListSurveyQuestions maneja GET /survey/questions: devuelve el catálogo
// fijo de preguntas y opciones que el cliente renderiza.
func ListSurveyQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions": domain.SurveyQuestions,
		"options":   domain.AnswerOptions,
	})
}
