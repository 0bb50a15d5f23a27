package service

import (
	"sort"

	"face-quiz/internal/domain"
)

// CompatibilityEngine deriva la afinidad por tipo de personalidad y el
// ranking de arquetipos animales recomendados, con jitter acotado.
// El contrato son las cotas del jitter, no los valores exactos.
type CompatibilityEngine struct {
	rng RandSource
}

func NewCompatibilityEngine(rng RandSource) *CompatibilityEngine {
	if rng == nil {
		rng = newDefaultRand()
	}
	return &CompatibilityEngine{rng: rng}
}

type animalAffinity struct {
	Score  int
	Reason string
}

// baseScores es la matriz 3x3 de afinidad personalidad x personalidad.
var baseScores = map[domain.PersonalityType]map[domain.PersonalityType]int{
	domain.PersonalityTeto:  {domain.PersonalityTeto: 70, domain.PersonalityTegen: 85, domain.PersonalityEgen: 45},
	domain.PersonalityTegen: {domain.PersonalityTeto: 85, domain.PersonalityTegen: 75, domain.PersonalityEgen: 80},
	domain.PersonalityEgen:  {domain.PersonalityTeto: 45, domain.PersonalityTegen: 80, domain.PersonalityEgen: 90},
}

// genderAdjustments desplaza la afinidad por categoría según el género.
var genderAdjustments = map[domain.Gender]map[domain.PersonalityType]int{
	domain.GenderMale:   {domain.PersonalityTeto: -5, domain.PersonalityTegen: 0, domain.PersonalityEgen: 5},
	domain.GenderFemale: {domain.PersonalityTeto: 5, domain.PersonalityTegen: 0, domain.PersonalityEgen: -5},
}

// animalAffinities es la matriz 3x6 personalidad x arquetipo con puntaje
// base y motivo. Los puntajes vienen de la calibración original.
var animalAffinities = map[domain.PersonalityType]map[domain.AnimalType]animalAffinity{
	domain.PersonalityTeto: {
		domain.AnimalDog:    {Score: 75, Reason: "construyen una relación leal y confiable"},
		domain.AnimalCat:    {Score: 85, Reason: "respetan la independencia del otro y mantienen la calma"},
		domain.AnimalFox:    {Score: 80, Reason: "se entienden desde el pensamiento astuto y estratégico"},
		domain.AnimalRabbit: {Score: 65, Reason: "la serenidad y la delicadeza encuentran su equilibrio"},
		domain.AnimalBear:   {Score: 90, Reason: "forman una pareja sólida y digna de confianza"},
		domain.AnimalDeer:   {Score: 70, Reason: "la elegancia y el juicio racional combinan bien"},
	},
	domain.PersonalityTegen: {
		domain.AnimalDog:    {Score: 88, Reason: "la energía luminosa y positiva armoniza a la perfección"},
		domain.AnimalCat:    {Score: 75, Reason: "se complementan en una relación equilibrada"},
		domain.AnimalFox:    {Score: 92, Reason: "la flexibilidad y la adaptabilidad son la mejor pareja"},
		domain.AnimalRabbit: {Score: 85, Reason: "construyen un vínculo suave y cálido"},
		domain.AnimalBear:   {Score: 80, Reason: "estabilidad y vitalidad se mezclan con armonía"},
		domain.AnimalDeer:   {Score: 90, Reason: "forman una relación elegante y armoniosa"},
	},
	domain.PersonalityEgen: {
		domain.AnimalDog:    {Score: 95, Reason: "el corazón cálido y la lealtad logran la armonía perfecta"},
		domain.AnimalCat:    {Score: 70, Reason: "una relación que entiende y respeta la sensibilidad"},
		domain.AnimalFox:    {Score: 75, Reason: "astucia y sensibilidad se equilibran"},
		domain.AnimalRabbit: {Score: 90, Reason: "la pureza y la calidez conectan en lo profundo"},
		domain.AnimalBear:   {Score: 85, Reason: "crean un vínculo acogedor y estable"},
		domain.AnimalDeer:   {Score: 88, Reason: "la sensibilidad delicada y elegante encaja de maravilla"},
	},
}

// animalGenderBonus es el ajuste fijo por arquetipo según género.
var animalGenderBonus = map[domain.Gender]map[domain.AnimalType]int{
	domain.GenderMale:   {domain.AnimalDog: 5, domain.AnimalRabbit: -3, domain.AnimalBear: 3},
	domain.GenderFemale: {domain.AnimalCat: 5, domain.AnimalDeer: 5, domain.AnimalFox: 3},
}

// Scores calcula la afinidad por categoría (clamp [10,100], jitter ±5)
// y las tres mejores recomendaciones animales (clamp [60,100], jitter ±3
// más bonus fijo por género), ordenadas de mayor a menor.
func (e *CompatibilityEngine) Scores(personality domain.PersonalityType, gender domain.Gender) domain.CompatibilityScore {
	base := baseScores[personality]
	adj := genderAdjustments[gender]

	return domain.CompatibilityScore{
		Teto:               clampInt(base[domain.PersonalityTeto]+adj[domain.PersonalityTeto]+e.rng.Intn(10)-5, 10, 100),
		Tegen:              clampInt(base[domain.PersonalityTegen]+adj[domain.PersonalityTegen]+e.rng.Intn(10)-5, 10, 100),
		Egen:               clampInt(base[domain.PersonalityEgen]+adj[domain.PersonalityEgen]+e.rng.Intn(10)-5, 10, 100),
		RecommendedAnimals: e.recommendedAnimals(personality, gender),
	}
}

func (e *CompatibilityEngine) recommendedAnimals(personality domain.PersonalityType, gender domain.Gender) []domain.AnimalCompatibility {
	affinities := animalAffinities[personality]
	bonus := animalGenderBonus[gender]

	// Se itera en orden de catálogo para que el sort estable resuelva
	// empates siempre igual.
	scored := make([]domain.AnimalCompatibility, 0, len(domain.AnimalTypes))
	for _, animal := range domain.AnimalTypes {
		aff := affinities[animal]
		scored = append(scored, domain.AnimalCompatibility{
			AnimalType: animal,
			Score:      clampInt(aff.Score+bonus[animal]+e.rng.Intn(6)-3, 60, 100),
			Reason:     aff.Reason,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored[:3]
}
