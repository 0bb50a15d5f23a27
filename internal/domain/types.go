package domain

// AnimalType es el arquetipo animal derivado de la geometría facial.
type AnimalType string

const (
	AnimalDog    AnimalType = "dog"
	AnimalCat    AnimalType = "cat"
	AnimalFox    AnimalType = "fox"
	AnimalRabbit AnimalType = "rabbit"
	AnimalBear   AnimalType = "bear"
	AnimalDeer   AnimalType = "deer"
)

// AnimalTypes lista los arquetipos en orden de catálogo.
// El orden importa: es el orden de iteración del motor de compatibilidad
// y el desempate estable al ordenar recomendaciones.
var AnimalTypes = []AnimalType{AnimalDog, AnimalCat, AnimalFox, AnimalRabbit, AnimalBear, AnimalDeer}

// PersonalityType clasifica al usuario según su índice emocional.
type PersonalityType string

const (
	PersonalityTeto  PersonalityType = "teto"  // perfil lógico
	PersonalityEgen  PersonalityType = "egen"  // perfil empático
	PersonalityTegen PersonalityType = "tegen" // perfil equilibrado
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ValidAnimalType valida valores recibidos por la frontera HTTP.
func ValidAnimalType(v string) bool {
	for _, a := range AnimalTypes {
		if string(a) == v {
			return true
		}
	}
	return false
}

func ValidPersonalityType(v string) bool {
	switch PersonalityType(v) {
	case PersonalityTeto, PersonalityEgen, PersonalityTegen:
		return true
	}
	return false
}

func ValidGender(v string) bool {
	return Gender(v) == GenderMale || Gender(v) == GenderFemale
}

// FacialFeatures son las cinco medidas geométricas extraídas de la foto.
// Se calculan una vez por sesión y no se vuelven a tocar.
type FacialFeatures struct {
	EyebrowAngle   float64 `json:"eyebrow_angle"`    // grados, ~ -30..30
	LipCurvature   float64 `json:"lip_curvature"`    // ratio, ~ -0.5..0.5
	JawlineAngle   float64 `json:"jawline_angle"`    // grados, ~ 70..110
	FaceWidthRatio float64 `json:"face_width_ratio"` // ancho/alto, ~ 1.0..2.0
	EyeDistance    float64 `json:"eye_distance"`     // píxeles, ~ 40..150
}

// SurveyAnswer es la respuesta a una de las diez preguntas del test.
type SurveyAnswer struct {
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"` // "A" | "B" | "C" | "D"
}

// TraitScores son los cuatro rasgos 0-100 derivados de la encuesta.
type TraitScores struct {
	Extraversion int `json:"extraversion"`
	Sensing      int `json:"sensing"`
	Thinking     int `json:"thinking"`
	Judging      int `json:"judging"`
}

// AnimalCompatibility es una recomendación de pareja por arquetipo animal.
type AnimalCompatibility struct {
	AnimalType AnimalType `json:"animal_type"`
	Score      int        `json:"score"` // acotado a [60,100]
	Reason     string     `json:"reason"`
}

// CompatibilityScore agrupa la afinidad por tipo de personalidad y las
// tres mejores recomendaciones por arquetipo animal.
type CompatibilityScore struct {
	Teto               int                   `json:"teto"`
	Tegen              int                   `json:"tegen"`
	Egen               int                   `json:"egen"`
	RecommendedAnimals []AnimalCompatibility `json:"recommended_animals"`
}

// PersonalityReport es el informe final entregado al usuario.
// Inmutable una vez construido; nunca existe un informe parcialmente válido.
type PersonalityReport struct {
	Title               string             `json:"title"`
	PersonalitySummary  string             `json:"personality_summary"`
	PhysiognomyAnalysis string             `json:"physiognomy_analysis"`
	Keywords            []string           `json:"keywords"` // exactamente 3
	DatingStyle         string             `json:"dating_style"`
	OneLiner            string             `json:"one_liner"`
	CompatibilityScores CompatibilityScore `json:"compatibility_scores"`
	TraitScores         TraitScores        `json:"trait_scores"`
}

// AnalysisResult es lo que la pipeline devuelve a la capa de presentación.
type AnalysisResult struct {
	PersonalityType PersonalityType   `json:"personality_type"`
	AnimalType      AnimalType        `json:"animal_type"`
	EmotionScore    float64           `json:"emotion_score"`
	FacialFeatures  FacialFeatures    `json:"facial_features"`
	SurveyAnswers   []SurveyAnswer    `json:"survey_answers"`
	Gender          Gender            `json:"gender"`
	Report          PersonalityReport `json:"report"`
}
