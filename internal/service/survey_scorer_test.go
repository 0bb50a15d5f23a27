package service

import (
	"math"
	"reflect"
	"testing"

	"face-quiz/internal/domain"
)

func fullSurvey(answer string) []domain.SurveyAnswer {
	answers := make([]domain.SurveyAnswer, 0, len(domain.SurveyQuestions))
	for _, q := range domain.SurveyQuestions {
		answers = append(answers, domain.SurveyAnswer{QuestionID: q.ID, Answer: answer})
	}
	return answers
}

func TestTraitScores_AllStrongAgreeSaturates(t *testing.T) {
	scorer := SurveyScorer{}

	got := scorer.TraitScores(fullSurvey("A"))
	want := domain.TraitScores{Extraversion: 100, Sensing: 100, Thinking: 100, Judging: 100}
	if got != want {
		t.Fatalf("expected saturated traits %+v, got %+v", want, got)
	}
}

func TestTraitScores_AllStrongDisagreeBottomsOut(t *testing.T) {
	scorer := SurveyScorer{}

	got := scorer.TraitScores(fullSurvey("D"))
	want := domain.TraitScores{Extraversion: 0, Sensing: 0, Thinking: 0, Judging: 0}
	if got != want {
		t.Fatalf("expected floored traits %+v, got %+v", want, got)
	}
}

func TestTraitScores_MissingAnswersBiasTowardNeutral(t *testing.T) {
	scorer := SurveyScorer{}

	// Solo la pregunta 1 respondida: extraversion = 50 + (2/3)*25 ≈ 67,
	// el resto queda en el neutro 50.
	got := scorer.TraitScores([]domain.SurveyAnswer{{QuestionID: 1, Answer: "A"}})
	if got.Extraversion != 67 {
		t.Fatalf("expected extraversion 67, got %d", got.Extraversion)
	}
	if got.Thinking != 50 || got.Judging != 50 || got.Sensing != 50 {
		t.Fatalf("expected unanswered groups at 50, got %+v", got)
	}
}

func TestTraitScores_BoundedForAllAnswerCombinations(t *testing.T) {
	scorer := SurveyScorer{}

	for _, answer := range []string{"A", "B", "C", "D"} {
		got := scorer.TraitScores(fullSurvey(answer))
		for _, v := range []int{got.Extraversion, got.Sensing, got.Thinking, got.Judging} {
			if v < 0 || v > 100 {
				t.Fatalf("trait score out of range for answer %s: %+v", answer, got)
			}
		}
	}
}

func TestTraitScores_DuplicateAnswerLastWriteWins(t *testing.T) {
	scorer := SurveyScorer{}

	answers := []domain.SurveyAnswer{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 1, Answer: "D"},
	}
	got := scorer.TraitScores(answers)
	// Con D: 50 + (-2/3)*25 ≈ 33.
	if got.Extraversion != 33 {
		t.Fatalf("expected last answer to win (33), got %d", got.Extraversion)
	}
}

func TestEmotionScore_UniformAnswersStayNeutral(t *testing.T) {
	scorer := SurveyScorer{}

	// Cinco preguntas empáticas y cinco lógicas con el mismo peso de
	// respuesta se cancelan: 0.5 exacto.
	if got := scorer.EmotionScore(fullSurvey("A")); got != 0.5 {
		t.Fatalf("expected neutral 0.5, got %v", got)
	}
}

func TestEmotionScore_MaxEmpathyAndMaxLogic(t *testing.T) {
	scorer := SurveyScorer{}

	empathic := make([]domain.SurveyAnswer, 0, 10)
	logical := make([]domain.SurveyAnswer, 0, 10)
	for _, q := range domain.SurveyQuestions {
		if q.EmotionWeight > 0 {
			empathic = append(empathic, domain.SurveyAnswer{QuestionID: q.ID, Answer: "A"})
			logical = append(logical, domain.SurveyAnswer{QuestionID: q.ID, Answer: "D"})
		} else {
			empathic = append(empathic, domain.SurveyAnswer{QuestionID: q.ID, Answer: "D"})
			logical = append(logical, domain.SurveyAnswer{QuestionID: q.ID, Answer: "A"})
		}
	}

	if got := scorer.EmotionScore(empathic); got != 1 {
		t.Fatalf("expected max empathy 1, got %v", got)
	}
	if got := scorer.EmotionScore(logical); got != 0 {
		t.Fatalf("expected max logic 0, got %v", got)
	}
}

func TestEmotionScore_NoAnswersReturnsNeutral(t *testing.T) {
	scorer := SurveyScorer{}

	if got := scorer.EmotionScore(nil); got != 0.5 {
		t.Fatalf("expected guarded neutral 0.5, got %v", got)
	}
	if got := scorer.EmotionScore([]domain.SurveyAnswer{{QuestionID: 99, Answer: "A"}}); got != 0.5 {
		t.Fatalf("expected unknown question ids to be ignored, got %v", got)
	}
}

func TestEmotionScore_AlwaysInUnitInterval(t *testing.T) {
	scorer := SurveyScorer{}

	for _, answer := range []string{"A", "B", "C", "D"} {
		got := scorer.EmotionScore(fullSurvey(answer))
		if got < 0 || got > 1 || math.IsNaN(got) {
			t.Fatalf("emotion score out of [0,1] for answer %s: %v", answer, got)
		}
	}
}

func TestScorer_IsIdempotent(t *testing.T) {
	scorer := SurveyScorer{}
	answers := []domain.SurveyAnswer{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 2, Answer: "C"},
		{QuestionID: 3, Answer: "B"},
		{QuestionID: 4, Answer: "D"},
		{QuestionID: 5, Answer: "B"},
		{QuestionID: 6, Answer: "A"},
		{QuestionID: 7, Answer: "C"},
		{QuestionID: 8, Answer: "B"},
		{QuestionID: 9, Answer: "D"},
		{QuestionID: 10, Answer: "A"},
	}

	first := scorer.TraitScores(answers)
	second := scorer.TraitScores(answers)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("trait scores not idempotent: %+v vs %+v", first, second)
	}

	if e1, e2 := scorer.EmotionScore(answers), scorer.EmotionScore(answers); e1 != e2 {
		t.Fatalf("emotion score not idempotent: %v vs %v", e1, e2)
	}
}

func TestClassifyPersonality_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.PersonalityType
	}{
		{0.65, domain.PersonalityEgen},
		{0.35, domain.PersonalityTeto},
		{0.5, domain.PersonalityTegen},
		{1, domain.PersonalityEgen},
		{0, domain.PersonalityTeto},
		{0.351, domain.PersonalityTegen},
		{0.649, domain.PersonalityTegen},
	}

	for _, tc := range cases {
		if got := ClassifyPersonality(tc.score); got != tc.want {
			t.Fatalf("ClassifyPersonality(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
