package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"face-quiz/internal/domain"
	"face-quiz/internal/vision"
)

// FeatureExtractor convierte una imagen en las cinco medidas geométricas
// y su arquetipo animal derivado. Nunca devuelve error: cualquier fallo
// del detector degrada a valores pseudoaleatorios acotados dentro de los
// rangos que ocuparía una medición real.
type FeatureExtractor struct {
	detector   vision.Detector
	classifier *AnimalClassifier
	rng        RandSource
	logger     *zap.Logger
}

func NewFeatureExtractor(detector vision.Detector, classifier *AnimalClassifier, rng RandSource, logger *zap.Logger) *FeatureExtractor {
	if rng == nil {
		rng = newDefaultRand()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeatureExtractor{
		detector:   detector,
		classifier: classifier,
		rng:        rng,
		logger:     logger,
	}
}

// Extract analiza la imagen y devuelve medidas + arquetipo.
// No retiene la imagen ni expone errores del detector.
func (e *FeatureExtractor) Extract(ctx context.Context, image []byte) (domain.FacialFeatures, domain.AnimalType) {
	if e.detector == nil {
		e.logger.Warn("face detector not configured, using fallback features")
		return e.fallback()
	}

	faces, err := e.detector.EstimateFaces(ctx, image)
	if err != nil {
		e.logger.Warn("face detection failed, using fallback features", zap.Error(err))
		return e.fallback()
	}
	if len(faces) == 0 {
		e.logger.Warn("no face detected in image, using fallback features")
		return e.fallback()
	}

	face := faces[0]
	features := domain.FacialFeatures{
		EyebrowAngle: e.eyebrowAngle(
			vision.GroupKeypoints(face, "leftEyebrow"),
			vision.GroupKeypoints(face, "rightEyebrow"),
		),
		LipCurvature: e.lipCurvature(vision.GroupKeypoints(face, "lips")),
		// La malla no trae landmarks de mandíbula utilizables; se muestrea
		// dentro del rango observado.
		JawlineAngle:   80 + e.rng.Float64()*20,
		FaceWidthRatio: e.faceWidthRatio(face.Keypoints),
		EyeDistance: e.eyeDistance(
			vision.GroupKeypoints(face, "leftEye"),
			vision.GroupKeypoints(face, "rightEye"),
		),
	}

	return features, e.classifier.Classify(features)
}

func (e *FeatureExtractor) fallback() (domain.FacialFeatures, domain.AnimalType) {
	features := domain.FacialFeatures{
		EyebrowAngle:   e.rng.Float64()*20 - 10,
		LipCurvature:   e.rng.Float64()*0.4 - 0.2,
		JawlineAngle:   80 + e.rng.Float64()*20,
		FaceWidthRatio: 1.3 + e.rng.Float64()*0.4,
		EyeDistance:    80 + e.rng.Float64()*40,
	}
	return features, e.classifier.Classify(features)
}

// eyebrowAngle calcula el ángulo (en grados) entre los centroides de
// ambas cejas. Sin puntos en algún lado, muestrea el rango real.
func (e *FeatureExtractor) eyebrowAngle(left, right []vision.Keypoint) float64 {
	if len(left) == 0 || len(right) == 0 {
		return e.rng.Float64()*20 - 10
	}

	lx, ly := centroid(left)
	rx, ry := centroid(right)
	return math.Atan2(ry-ly, rx-lx) * (180 / math.Pi)
}

// lipCurvature separa el grupo de labios en mitad superior e inferior y
// normaliza la distancia vertical de sus centroides.
func (e *FeatureExtractor) lipCurvature(lips []vision.Keypoint) float64 {
	if len(lips) < 3 {
		return e.rng.Float64()*0.4 - 0.2
	}

	upper := lips[:len(lips)/2]
	lower := lips[len(lips)/2:]
	if len(upper) == 0 || len(lower) == 0 {
		return e.rng.Float64()*0.4 - 0.2
	}

	_, upperY := centroid(upper)
	_, lowerY := centroid(lower)
	return (lowerY - upperY) / 100
}

// faceWidthRatio es ancho/alto del bounding box de todos los landmarks.
func (e *FeatureExtractor) faceWidthRatio(keypoints []vision.Keypoint) float64 {
	if len(keypoints) == 0 {
		return 1.5 + e.rng.Float64()*0.5
	}

	minX, maxX := keypoints[0].X, keypoints[0].X
	minY, maxY := keypoints[0].Y, keypoints[0].Y
	for _, kp := range keypoints[1:] {
		minX = math.Min(minX, kp.X)
		maxX = math.Max(maxX, kp.X)
		minY = math.Min(minY, kp.Y)
		maxY = math.Max(maxY, kp.Y)
	}

	return (maxX - minX) / (maxY - minY)
}

func (e *FeatureExtractor) eyeDistance(left, right []vision.Keypoint) float64 {
	if len(left) == 0 || len(right) == 0 {
		return 80 + e.rng.Float64()*40
	}

	lx, _ := centroid(left)
	rx, _ := centroid(right)
	return math.Abs(rx - lx)
}

func centroid(points []vision.Keypoint) (float64, float64) {
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return sx / n, sy / n
}
