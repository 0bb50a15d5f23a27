package domain

// SurveyQuestion es una de las diez preguntas fijas del test.
// EmotionWeight indica hacia qué polo empuja afirmar la pregunta:
// +1 empático, -1 lógico.
type SurveyQuestion struct {
	ID            int    `json:"id"`
	Question      string `json:"question"`
	EmotionWeight int    `json:"emotion_weight"`
}

// SurveyQuestions es el catálogo fijo. Los pesos emocionales y la
// partición en grupos de rasgo no se tocan: los resultados históricos
// dependen de estos valores exactos.
var SurveyQuestions = []SurveyQuestion{
	{ID: 1, Question: "Conocer gente nueva me divierte y me da energía", EmotionWeight: 1},
	{ID: 2, Question: "Al decidir priorizo la lógica y el análisis sobre la emoción", EmotionWeight: -1},
	{ID: 3, Question: "Prefiero hacer un plan y ejecutarlo tal cual", EmotionWeight: -1},
	{ID: 4, Question: "Capto con finura las emociones y el ambiente de los demás", EmotionWeight: 1},
	{ID: 5, Question: "Estar rodeado de gente me recarga las pilas", EmotionWeight: 1},
	{ID: 6, Question: "Para resolver problemas me apoyo en datos y hechos objetivos", EmotionWeight: -1},
	{ID: 7, Question: "Prefiero una agenda preparada antes que la improvisación", EmotionWeight: -1},
	{ID: 8, Question: "Me esfuerzo mucho en no herir los sentimientos de otros", EmotionWeight: 1},
	{ID: 9, Question: "Demasiado tiempo a solas me hace sentir solo", EmotionWeight: 1},
	{ID: 10, Question: "En un debate pesa más la validez lógica que los sentimientos del otro", EmotionWeight: -1},
}

// AnswerOption es una de las cuatro opciones ordinales de respuesta.
type AnswerOption struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

var AnswerOptions = []AnswerOption{
	{Value: "A", Label: "Totalmente de acuerdo", Weight: 2},
	{Value: "B", Label: "De acuerdo", Weight: 1},
	{Value: "C", Label: "En desacuerdo", Weight: -1},
	{Value: "D", Label: "Totalmente en desacuerdo", Weight: -2},
}

// AnswerWeight devuelve el peso firmado de una opción; 0 si no existe.
func AnswerWeight(value string) int {
	for _, opt := range AnswerOptions {
		if opt.Value == value {
			return opt.Weight
		}
	}
	return 0
}

// EmotionWeight devuelve el peso emocional de una pregunta; 0 si el id
// no pertenece al catálogo.
func EmotionWeight(questionID int) int {
	for _, q := range SurveyQuestions {
		if q.ID == questionID {
			return q.EmotionWeight
		}
	}
	return 0
}

// TraitGroups particiona los diez ids en los cuatro grupos de rasgo.
// Tamaños 3,3,2,2; sin solapamiento.
var TraitGroups = []struct {
	Trait string
	IDs   []int
}{
	{Trait: "extraversion", IDs: []int{1, 5, 9}},
	{Trait: "thinking", IDs: []int{2, 6, 10}},
	{Trait: "judging", IDs: []int{3, 7}},
	{Trait: "sensing", IDs: []int{4, 8}},
}

// Etiquetas de presentación. La localización completa vive en el cliente;
// estas se usan para el título del informe y el prompt.
var AnimalNames = map[AnimalType]string{
	AnimalDog:    "cara de perrito",
	AnimalCat:    "cara de gato",
	AnimalFox:    "cara de zorro",
	AnimalRabbit: "cara de conejo",
	AnimalBear:   "cara de oso",
	AnimalDeer:   "cara de ciervo",
}

var AnimalEmojis = map[AnimalType]string{
	AnimalDog:    "🐶",
	AnimalCat:    "🐱",
	AnimalFox:    "🦊",
	AnimalRabbit: "🐰",
	AnimalBear:   "🐻",
	AnimalDeer:   "🦌",
}

var PersonalityNames = map[PersonalityType]string{
	PersonalityTeto:  "tipo teto",
	PersonalityEgen:  "tipo egen",
	PersonalityTegen: "tipo tegen",
}
