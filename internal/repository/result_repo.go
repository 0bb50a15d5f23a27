package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"face-quiz/internal/domain"
)

// ResultRepository es el contrato de persistencia de la pipeline: guardar
// un resultado, listar los de un usuario (más recientes primero) y
// recuperar uno por id. pgx.ErrNoRows señala "no encontrado".
type ResultRepository interface {
	Save(ctx context.Context, result domain.TestResult) error
	ListByUser(ctx context.Context, userID string) ([]domain.TestResult, error)
	Get(ctx context.Context, id string) (domain.TestResult, error)
}

type PgResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgResultRepository(pool *pgxpool.Pool) *PgResultRepository {
	return &PgResultRepository{pool: pool}
}

func (r *PgResultRepository) Save(ctx context.Context, result domain.TestResult) error {
	features, err := json.Marshal(result.FacialFeatures)
	if err != nil {
		return fmt.Errorf("marshal facial features: %w", err)
	}
	answers, err := json.Marshal(result.SurveyAnswers)
	if err != nil {
		return fmt.Errorf("marshal survey answers: %w", err)
	}
	report, err := json.Marshal(result.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	const query = `
		INSERT INTO test_results (id, user_id, personality_type, animal_type, gender, emotion_score, facial_features, survey_answers, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.pool.Exec(ctx, query,
		result.ID,
		result.UserID,
		result.PersonalityType,
		result.AnimalType,
		result.Gender,
		result.EmotionScore,
		features,
		answers,
		report,
		result.CreatedAt,
	)
	return err
}

func (r *PgResultRepository) ListByUser(ctx context.Context, userID string) ([]domain.TestResult, error) {
	const query = `
		SELECT id, user_id, personality_type, animal_type, gender, emotion_score, facial_features, survey_answers, report, created_at
		FROM test_results
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.TestResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

func (r *PgResultRepository) Get(ctx context.Context, id string) (domain.TestResult, error) {
	const query = `
		SELECT id, user_id, personality_type, animal_type, gender, emotion_score, facial_features, survey_answers, report, created_at
		FROM test_results
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	result, err := scanResult(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.TestResult{}, err
	}
	return result, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (domain.TestResult, error) {
	var (
		result   domain.TestResult
		features []byte
		answers  []byte
		report   []byte
	)
	err := row.Scan(
		&result.ID,
		&result.UserID,
		&result.PersonalityType,
		&result.AnimalType,
		&result.Gender,
		&result.EmotionScore,
		&features,
		&answers,
		&report,
		&result.CreatedAt,
	)
	if err != nil {
		return domain.TestResult{}, err
	}

	if err := json.Unmarshal(features, &result.FacialFeatures); err != nil {
		return domain.TestResult{}, fmt.Errorf("unmarshal facial features: %w", err)
	}
	if err := json.Unmarshal(answers, &result.SurveyAnswers); err != nil {
		return domain.TestResult{}, fmt.Errorf("unmarshal survey answers: %w", err)
	}
	if err := json.Unmarshal(report, &result.Report); err != nil {
		return domain.TestResult{}, fmt.Errorf("unmarshal report: %w", err)
	}
	return result, nil
}
