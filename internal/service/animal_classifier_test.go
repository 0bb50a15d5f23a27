package service

import (
	"testing"

	"face-quiz/internal/domain"
)

func TestClassify_FirstMatchingRuleWins(t *testing.T) {
	classifier := NewAnimalClassifier(fixedRand{})

	cases := []struct {
		name     string
		features domain.FacialFeatures
		want     domain.AnimalType
	}{
		{
			name:     "wide face with steep jawline is bear",
			features: domain.FacialFeatures{FaceWidthRatio: 1.7, JawlineAngle: 100, EyebrowAngle: 0, LipCurvature: 0, EyeDistance: 90},
			want:     domain.AnimalBear,
		},
		{
			name:     "dropped eyebrows and downturned lips on narrow face is cat",
			features: domain.FacialFeatures{EyebrowAngle: -10, LipCurvature: -0.1, FaceWidthRatio: 1.3, JawlineAngle: 95, EyeDistance: 90},
			want:     domain.AnimalCat,
		},
		{
			name:     "raised eyebrows and upturned lips is dog",
			features: domain.FacialFeatures{EyebrowAngle: 8, LipCurvature: 0.2, FaceWidthRatio: 1.4, JawlineAngle: 95, EyeDistance: 90},
			want:     domain.AnimalDog,
		},
		{
			name:     "wide face with separated eyes is rabbit",
			features: domain.FacialFeatures{EyebrowAngle: 0, LipCurvature: 0, FaceWidthRatio: 1.55, JawlineAngle: 92, EyeDistance: 110},
			want:     domain.AnimalRabbit,
		},
		{
			name:     "negative eyebrows with soft jawline is fox",
			features: domain.FacialFeatures{EyebrowAngle: -2, LipCurvature: 0.05, JawlineAngle: 88, FaceWidthRatio: 1.3, EyeDistance: 90},
			want:     domain.AnimalFox,
		},
		{
			name:     "narrow face with soft jawline is deer",
			features: domain.FacialFeatures{EyebrowAngle: 2, LipCurvature: 0.05, JawlineAngle: 82, FaceWidthRatio: 1.3, EyeDistance: 90},
			want:     domain.AnimalDeer,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifier.Classify(tc.features); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestClassify_BearRuleBeatsLaterRules(t *testing.T) {
	classifier := NewAnimalClassifier(fixedRand{})

	// Matchea bear y también rabbit; debe ganar la primera regla.
	features := domain.FacialFeatures{FaceWidthRatio: 1.7, JawlineAngle: 100, EyeDistance: 120}
	if got := classifier.Classify(features); got != domain.AnimalBear {
		t.Fatalf("expected bear by rule order, got %s", got)
	}
}

func TestClassify_NoRuleFallsBackToRandomPick(t *testing.T) {
	// Un rostro promedio que no matchea ninguna regla.
	features := domain.FacialFeatures{EyebrowAngle: 2, LipCurvature: 0.05, JawlineAngle: 92, FaceWidthRatio: 1.45, EyeDistance: 90}

	for n := 0; n < len(domain.AnimalTypes); n++ {
		classifier := NewAnimalClassifier(fixedRand{n: n})
		got := classifier.Classify(features)
		if got != domain.AnimalTypes[n] {
			t.Fatalf("expected uniform pick %s, got %s", domain.AnimalTypes[n], got)
		}
	}
}

func TestClassify_IsTotal(t *testing.T) {
	classifier := NewAnimalClassifier(fixedRand{})

	valid := func(a domain.AnimalType) bool {
		for _, known := range domain.AnimalTypes {
			if a == known {
				return true
			}
		}
		return false
	}

	for _, eyebrow := range []float64{-30, -5, 0, 5, 30} {
		for _, lip := range []float64{-0.5, 0, 0.1, 0.5} {
			for _, jaw := range []float64{70, 85, 90, 95, 110} {
				for _, ratio := range []float64{1.0, 1.4, 1.5, 1.6, 2.0} {
					for _, eyes := range []float64{40, 100, 150} {
						features := domain.FacialFeatures{
							EyebrowAngle:   eyebrow,
							LipCurvature:   lip,
							JawlineAngle:   jaw,
							FaceWidthRatio: ratio,
							EyeDistance:    eyes,
						}
						if got := classifier.Classify(features); !valid(got) {
							t.Fatalf("expected a valid animal type for %+v, got %q", features, got)
						}
					}
				}
			}
		}
	}
}
