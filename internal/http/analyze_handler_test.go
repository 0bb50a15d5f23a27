package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"face-quiz/internal/domain"
)

func TestAnalyzeFace_RejectsBadPayload(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/analyze/face", "", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing image, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/analyze/face", "", map[string]any{"image": "no-es-base64!!"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid base64, got %d", rec.Code)
	}
}

func TestAnalyzeFace_AlwaysProducesFeatures(t *testing.T) {
	router, _, _ := newTestRouter(t)

	image := base64.StdEncoding.EncodeToString([]byte("not a real jpeg"))
	rec := doJSON(t, router, http.MethodPost, "/analyze/face", "", map[string]any{"image": image})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		FacialFeatures domain.FacialFeatures `json:"facial_features"`
		AnimalType     domain.AnimalType     `json:"animal_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !domain.ValidAnimalType(string(resp.AnimalType)) {
		t.Fatalf("unexpected animal type %q", resp.AnimalType)
	}
	if resp.FacialFeatures.FaceWidthRatio <= 0 || resp.FacialFeatures.EyeDistance <= 0 {
		t.Fatalf("expected positive fallback measurements, got %+v", resp.FacialFeatures)
	}
}

func TestAnalyze_RejectsInvalidGender(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/analyze", "", map[string]any{
		"facial_features": map[string]any{
			"eyebrow_angle": 0.0, "lip_curvature": 0.0, "jawline_angle": 100.0,
			"face_width_ratio": 1.7, "eye_distance": 90.0,
		},
		"survey_answers": []map[string]any{{"question_id": 1, "answer": "A"}},
		"gender":         "other",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid gender, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyze_FullPipeline(t *testing.T) {
	router, _, repo := newTestRouter(t)

	answers := make([]map[string]any, 0, 10)
	for i := 1; i <= 10; i++ {
		answers = append(answers, map[string]any{"question_id": i, "answer": "A"})
	}

	rec := doJSON(t, router, http.MethodPost, "/analyze", "", map[string]any{
		"facial_features": map[string]any{
			"eyebrow_angle": 0.0, "lip_curvature": 0.0, "jawline_angle": 100.0,
			"face_width_ratio": 1.7, "eye_distance": 90.0,
		},
		"survey_answers": answers,
		"gender":         "male",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ResultID string                `json:"result_id"`
		Result   domain.AnalysisResult `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ResultID == "" {
		t.Fatal("expected a result id")
	}
	if resp.Result.AnimalType != domain.AnimalBear {
		t.Fatalf("expected bear for wide face and strong jaw, got %q", resp.Result.AnimalType)
	}
	if resp.Result.Report.PersonalitySummary == "" || len(resp.Result.Report.Keywords) != 3 {
		t.Fatalf("expected a complete fallback report, got %+v", resp.Result.Report)
	}
	if resp.Result.Report.CompatibilityScores.Teto == 0 {
		t.Fatalf("expected compatibility scores, got %+v", resp.Result.Report.CompatibilityScores)
	}

	// Sin user_id no se persiste nada.
	if results, err := repo.ListByUser(context.Background(), "anyone"); err != nil || len(results) != 0 {
		t.Fatalf("expected empty repository, got %v results (err %v)", len(results), err)
	}
}
