package service

import (
	"context"

	"go.uber.org/zap"

	"face-quiz/internal/domain"
	"face-quiz/internal/llm"
)

// ReportService orquesta la pipeline completa: puntuación de encuesta,
// clasificación, generación del informe con LLM y fallback determinista.
// No existe estado terminal de error: toda llamada termina en un informe
// válido; los fallos del motor se loguean como degradación, no se
// propagan.
type ReportService struct {
	engine     *llm.Engine
	scorer     SurveyScorer
	classifier *AnimalClassifier
	compat     *CompatibilityEngine
	rng        RandSource
	logger     *zap.Logger
}

func NewReportService(
	engine *llm.Engine,
	classifier *AnimalClassifier,
	compat *CompatibilityEngine,
	rng RandSource,
	logger *zap.Logger,
) *ReportService {
	if rng == nil {
		rng = newDefaultRand()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		engine:     engine,
		classifier: classifier,
		compat:     compat,
		rng:        rng,
		logger:     logger,
	}
}

// Analyze ejecuta la pipeline sobre la entrada de la capa de presentación.
func (s *ReportService) Analyze(
	ctx context.Context,
	features domain.FacialFeatures,
	answers []domain.SurveyAnswer,
	gender domain.Gender,
) domain.AnalysisResult {
	emotionScore := s.scorer.EmotionScore(answers)
	personality := ClassifyPersonality(emotionScore)
	animal := s.classifier.Classify(features)
	traits := s.scorer.TraitScores(answers)

	report := s.GenerateReport(ctx, personality, animal, emotionScore, features, gender, traits)

	return domain.AnalysisResult{
		PersonalityType: personality,
		AnimalType:      animal,
		EmotionScore:    emotionScore,
		FacialFeatures:  features,
		SurveyAnswers:   answers,
		Gender:          gender,
		Report:          report,
	}
}

// GenerateReport intenta la narrativa con el motor y cae a las plantillas
// ante motor ausente, error de llamada o parseo inválido. La afinidad se
// recalcula siempre, venga de donde venga el texto.
func (s *ReportService) GenerateReport(
	ctx context.Context,
	personality domain.PersonalityType,
	animal domain.AnimalType,
	emotionScore float64,
	features domain.FacialFeatures,
	gender domain.Gender,
	traits domain.TraitScores,
) domain.PersonalityReport {
	title := BuildReportTitle(animal, personality)
	compat := s.compat.Scores(personality, gender)

	if err := s.engine.Init(ctx); err != nil {
		s.logger.Warn("llm engine unavailable, using fallback report", zap.Error(err))
		return buildFallbackReport(personality, animal, title, compat, traits, s.rng)
	}

	prompt := buildReportPrompt(personality, animal, emotionScore, features)
	raw, err := s.engine.Generate(ctx, prompt, reportSampling)
	if err != nil {
		s.logger.Warn("llm generation failed, using fallback report", zap.Error(err))
		return buildFallbackReport(personality, animal, title, compat, traits, s.rng)
	}

	parsed := parseAIReport(cleanModelResponse(raw))
	if ok, failed := validateParsedReport(parsed); !ok {
		s.logger.Warn("llm response failed validation, using fallback report",
			zap.Strings("failed_rules", failed))
		return buildFallbackReport(personality, animal, title, compat, traits, s.rng)
	}

	return s.composeReport(title, parsed, compat, traits)
}

// composeReport arma el informe desde un parseo válido, rellenando los
// campos opcionales vacíos con sus valores por defecto.
func (s *ReportService) composeReport(
	title string,
	parsed parsedAIReport,
	compat domain.CompatibilityScore,
	traits domain.TraitScores,
) domain.PersonalityReport {
	physiognomy := parsed.PhysiognomyAnalysis
	if physiognomy == "" {
		physiognomy = defaultPhysiognomy
	}
	keywords := parsed.Keywords
	if len(keywords) == 0 {
		keywords = append([]string(nil), defaultKeywords...)
	}
	oneLiner := parsed.OneLiner
	if oneLiner == "" {
		oneLiner = defaultOneLiner
	}

	return domain.PersonalityReport{
		Title:               title,
		PersonalitySummary:  parsed.PersonalitySummary,
		PhysiognomyAnalysis: physiognomy,
		Keywords:            keywords,
		DatingStyle:         parsed.DatingStyle,
		OneLiner:            oneLiner,
		CompatibilityScores: compat,
		TraitScores:         traits,
	}
}
