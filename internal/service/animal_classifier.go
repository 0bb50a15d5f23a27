package service

import (
	"face-quiz/internal/domain"
)

// AnimalClassifier mapea las cinco medidas faciales a un arquetipo animal
// mediante una cascada ordenada de reglas con umbrales fijos.
type AnimalClassifier struct {
	rng RandSource
}

func NewAnimalClassifier(rng RandSource) *AnimalClassifier {
	if rng == nil {
		rng = newDefaultRand()
	}
	return &AnimalClassifier{rng: rng}
}

// Classify aplica la cascada; gana la primera regla que matchea.
// Los umbrales y el orden no se tocan: los resultados ya emitidos
// dependen de reproducirlos exactamente. Es una función total: si
// ninguna regla matchea, elige uniformemente entre los seis tipos.
func (c *AnimalClassifier) Classify(f domain.FacialFeatures) domain.AnimalType {
	switch {
	case f.FaceWidthRatio > 1.6 && f.JawlineAngle > 95:
		return domain.AnimalBear
	case f.EyebrowAngle < -5 && f.LipCurvature < 0 && f.FaceWidthRatio < 1.4:
		return domain.AnimalCat
	case f.EyebrowAngle > 5 && f.LipCurvature > 0.1 && f.FaceWidthRatio < 1.5:
		return domain.AnimalDog
	case f.FaceWidthRatio > 1.5 && f.EyeDistance > 100:
		return domain.AnimalRabbit
	case f.EyebrowAngle < 0 && f.JawlineAngle < 90 && f.FaceWidthRatio < 1.4:
		return domain.AnimalFox
	case f.FaceWidthRatio < 1.4 && f.JawlineAngle < 85:
		return domain.AnimalDeer
	}

	return domain.AnimalTypes[c.rng.Intn(len(domain.AnimalTypes))]
}
