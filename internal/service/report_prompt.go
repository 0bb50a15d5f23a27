package service

import (
	"fmt"

	"face-quiz/internal/domain"
	"face-quiz/internal/llm"
)

// reportSampling son los parámetros de muestreo fijos de la generación.
var reportSampling = llm.SamplingParams{
	Temperature: 0.8,
	MaxTokens:   800,
}

// BuildReportTitle arma el título determinista a partir de las etiquetas.
func BuildReportTitle(animal domain.AnimalType, personality domain.PersonalityType) string {
	return fmt.Sprintf("Eres %s %s %s", domain.AnimalEmojis[animal], domain.AnimalNames[animal], domain.PersonalityNames[personality])
}

// buildReportPrompt arma el prompt de cinco secciones numeradas.
// La estructura es fija: el parser depende de estas etiquetas.
func buildReportPrompt(
	personality domain.PersonalityType,
	animal domain.AnimalType,
	emotionScore float64,
	features domain.FacialFeatures,
) string {
	return fmt.Sprintf(`Eres un experto en fisonomía y análisis psicológico. A partir de los siguientes datos, describe la impresión y la personalidad del usuario en un tono cálido y lírico.

[Datos de entrada]
Tipo: %s
Arquetipo: %s
Índice emocional: %.0f%%
Rasgos faciales: ángulo de cejas %.1f°, curvatura de labios %.2f, proporción del rostro %.2f

[Formato de salida]
1. Resumen de personalidad (3-5 frases)
2. Rasgos fisonómicos (3-5 frases)
3. Palabras clave, 3 en total (con emoji, ej: ✨ #intuición)
4. Estilo amoroso (1 frase)
5. Resumen en una línea

Redacta cada sección claramente separada.`,
		domain.PersonalityNames[personality],
		domain.AnimalNames[animal],
		emotionScore*100,
		features.EyebrowAngle,
		features.LipCurvature,
		features.FaceWidthRatio,
	)
}
