package service

import (
	"regexp"
	"strings"
)

// cleanModelResponse quita fences de markdown (```...```) y BOM que
// algunos modelos añaden alrededor del texto pedido.
func cleanModelResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "\ufeff")
	s = reFenceStart.ReplaceAllString(s, "")
	s = reFenceEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

var (
	reFenceStart = regexp.MustCompile("(?is)^\\s*```[a-z]*\\s*")
	reFenceEnd   = regexp.MustCompile("(?is)\\s*```\\s*$")
)

// parsedAIReport es el resultado crudo de trocear la respuesta del LLM.
// Las secciones faltantes quedan vacías; la validación decide después.
type parsedAIReport struct {
	PersonalitySummary  string
	PhysiognomyAnalysis string
	Keywords            []string
	DatingStyle         string
	OneLiner            string
}

// Sondas por campo: secciones numeradas, independientes del orden y
// tolerantes a secciones ausentes.
var (
	reSummarySection     = regexp.MustCompile(`(?i)^[0-9]\.\s*(resumen de personalidad|personalidad)[:：]?\s*`)
	rePhysiognomySection = regexp.MustCompile(`(?i)^[0-9]\.\s*(rasgos fison[oó]micos|fisonom[ií]a|rasgos)[:：]?\s*`)
	reKeywordsSection    = regexp.MustCompile(`(?i)^[0-9]\.\s*palabras clave[^:：\n]*[:：]?\s*`)
	reDatingSection      = regexp.MustCompile(`(?i)^[0-9]\.\s*estilo (amoroso|de pareja)[^:：\n]*[:：]?\s*`)
	reOneLinerSection    = regexp.MustCompile(`(?i)^[0-9]\.\s*(resumen en una l[ií]nea|una l[ií]nea)[^:：\n]*[:：]?\s*`)
)

// promptEchoDenylist detecta respuestas que repiten el boilerplate del
// prompt en vez de contestarlo. Si alguno de estos patrones aparece en
// un campo obligatorio, el parseo entero se invalida.
var promptEchoDenylist = []*regexp.Regexp{
	regexp.MustCompile(`(?i)formato de salida`),
	regexp.MustCompile(`(?i)datos de entrada`),
	regexp.MustCompile(`(?i)claramente separada`),
	regexp.MustCompile(`(?i)redacta cada secci[oó]n`),
	regexp.MustCompile(`(?i)secci[oó]n.*separad`),
}

func containsPromptEcho(s string) bool {
	for _, re := range promptEchoDenylist {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// parseAIReport divide la respuesta en secciones tipo párrafo y matchea
// cada una contra las sondas. Las palabras clave se separan por coma o
// salto de línea, máximo 3.
func parseAIReport(text string) parsedAIReport {
	var out parsedAIReport

	for _, section := range strings.Split(text, "\n\n") {
		clean := strings.TrimSpace(section)
		switch {
		case reSummarySection.MatchString(clean):
			out.PersonalitySummary = strings.TrimSpace(reSummarySection.ReplaceAllString(clean, ""))
		case rePhysiognomySection.MatchString(clean):
			out.PhysiognomyAnalysis = strings.TrimSpace(rePhysiognomySection.ReplaceAllString(clean, ""))
		case reKeywordsSection.MatchString(clean):
			keywordText := reKeywordsSection.ReplaceAllString(clean, "")
			out.Keywords = splitKeywords(keywordText)
		case reDatingSection.MatchString(clean):
			out.DatingStyle = strings.TrimSpace(reDatingSection.ReplaceAllString(clean, ""))
		case reOneLinerSection.MatchString(clean):
			oneLiner := reOneLinerSection.ReplaceAllString(clean, "")
			oneLiner = strings.NewReplacer(`"`, "", "“", "", "”", "").Replace(oneLiner)
			out.OneLiner = strings.TrimSpace(oneLiner)
		}
	}

	return out
}

func splitKeywords(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	keywords := make([]string, 0, 3)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		keywords = append(keywords, p)
		if len(keywords) == 3 {
			break
		}
	}
	return keywords
}

// reportValidationRule es una regla nombrada del contrato estructural.
// Se mantienen en tabla para poder testearlas sin motor vivo.
type reportValidationRule struct {
	Name  string
	Valid func(p parsedAIReport) bool
}

var reportValidationRules = []reportValidationRule{
	{
		Name: "summary_present_min_length",
		Valid: func(p parsedAIReport) bool {
			return len([]rune(p.PersonalitySummary)) > 20
		},
	},
	{
		Name: "summary_no_prompt_echo",
		Valid: func(p parsedAIReport) bool {
			return !containsPromptEcho(p.PersonalitySummary)
		},
	},
	{
		Name: "keywords_min_count",
		Valid: func(p parsedAIReport) bool {
			return len(p.Keywords) >= 2
		},
	},
	{
		Name: "dating_style_present_min_length",
		Valid: func(p parsedAIReport) bool {
			return len([]rune(p.DatingStyle)) > 10
		},
	},
	{
		Name: "dating_style_no_prompt_echo",
		Valid: func(p parsedAIReport) bool {
			return !containsPromptEcho(p.DatingStyle)
		},
	},
}

// validateParsedReport aplica todas las reglas; cualquier fallo
// invalida el parseo completo.
func validateParsedReport(p parsedAIReport) (bool, []string) {
	var failed []string
	for _, rule := range reportValidationRules {
		if !rule.Valid(p) {
			failed = append(failed, rule.Name)
		}
	}
	return len(failed) == 0, failed
}
