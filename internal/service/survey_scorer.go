package service

import (
	"math"

	"face-quiz/internal/domain"
)

// SurveyScorer deriva los rasgos 0-100 y el índice emocional [0,1] a
// partir de las respuestas del test. Sin aleatoriedad: dos pasadas sobre
// el mismo set producen exactamente lo mismo.
type SurveyScorer struct{}

// dedupeAnswers resuelve respuestas duplicadas por id: gana la última.
func dedupeAnswers(answers []domain.SurveyAnswer) map[int]string {
	byID := make(map[int]string, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = a.Answer
	}
	return byID
}

// TraitScores puntúa cada grupo de rasgo con
// round(clamp(50 + (suma/tamaño)*25, 0, 100)).
// Las preguntas sin responder aportan 0, sesgando el grupo hacia 50.
func (SurveyScorer) TraitScores(answers []domain.SurveyAnswer) domain.TraitScores {
	byID := dedupeAnswers(answers)

	scores := make(map[string]int, len(domain.TraitGroups))
	for _, group := range domain.TraitGroups {
		sum := 0
		for _, id := range group.IDs {
			if ans, ok := byID[id]; ok {
				sum += domain.AnswerWeight(ans)
			}
		}
		raw := 50 + (float64(sum)/float64(len(group.IDs)))*25
		scores[group.Trait] = int(math.Round(clampFloat(raw, 0, 100)))
	}

	return domain.TraitScores{
		Extraversion: scores["extraversion"],
		Sensing:      scores["sensing"],
		Thinking:     scores["thinking"],
		Judging:      scores["judging"],
	}
}

// EmotionScore normaliza la suma firmada de pesos emocionales a [0,1]:
// 0 = respuestas máximamente lógicas, 1 = máximamente empáticas.
// Sin respuestas válidas devuelve 0.5 (el neutro); la fuente original
// dividía por cero aquí.
func (SurveyScorer) EmotionScore(answers []domain.SurveyAnswer) float64 {
	byID := dedupeAnswers(answers)

	total := 0
	maxPossible := 0
	for id, ans := range byID {
		ew := domain.EmotionWeight(id)
		if ew == 0 {
			continue
		}
		total += ew * domain.AnswerWeight(ans)
		maxPossible += abs(ew) * 2
	}

	if maxPossible == 0 {
		return 0.5
	}

	normalized := float64(total+maxPossible) / float64(2*maxPossible)
	return clampFloat(normalized, 0, 1)
}

// ClassifyPersonality corta el índice emocional en los tres tipos.
// Los bordes son inclusivos: 0.65 ya es egen y 0.35 ya es teto.
func ClassifyPersonality(emotionScore float64) domain.PersonalityType {
	switch {
	case emotionScore >= 0.65:
		return domain.PersonalityEgen
	case emotionScore <= 0.35:
		return domain.PersonalityTeto
	default:
		return domain.PersonalityTegen
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
