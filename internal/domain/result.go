package domain

import "time"

// TestResult es el registro persistido de un análisis completado.
// El informe se guarda como blob estructurado (jsonb) keyed por id.
type TestResult struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	PersonalityType PersonalityType   `json:"personality_type"`
	AnimalType      AnimalType        `json:"animal_type"`
	Gender          Gender            `json:"gender"`
	EmotionScore    float64           `json:"emotion_score"`
	FacialFeatures  FacialFeatures    `json:"facial_features"`
	SurveyAnswers   []SurveyAnswer    `json:"survey_answers"`
	Report          PersonalityReport `json:"report"`
	CreatedAt       time.Time         `json:"created_at"`
}
