package service

import (
	"reflect"
	"strings"
	"testing"
)

const wellFormedResponse = `1. Resumen de personalidad: Eres una persona cálida que combina intuición y razón, y transmites confianza de forma natural en cualquier entorno.

2. Rasgos fisonómicos: Tus cejas suaves y tu sonrisa amplia dan una impresión abierta y acogedora.

3. Palabras clave: ✨ #intuición, 💫 #calidez, 🌟 #confianza

4. Estilo amoroso: Pareja atenta que cuida los detalles cotidianos.

5. Resumen en una línea: "Tu rostro transmite la calma que regalas a los demás."`

func TestParseAIReport_WellFormedResponse(t *testing.T) {
	parsed := parseAIReport(wellFormedResponse)

	if !strings.HasPrefix(parsed.PersonalitySummary, "Eres una persona cálida") {
		t.Fatalf("unexpected summary: %q", parsed.PersonalitySummary)
	}
	if !strings.HasPrefix(parsed.PhysiognomyAnalysis, "Tus cejas suaves") {
		t.Fatalf("unexpected physiognomy: %q", parsed.PhysiognomyAnalysis)
	}
	wantKeywords := []string{"✨ #intuición", "💫 #calidez", "🌟 #confianza"}
	if !reflect.DeepEqual(parsed.Keywords, wantKeywords) {
		t.Fatalf("unexpected keywords: %v", parsed.Keywords)
	}
	if parsed.DatingStyle != "Pareja atenta que cuida los detalles cotidianos." {
		t.Fatalf("unexpected dating style: %q", parsed.DatingStyle)
	}
	if strings.Contains(parsed.OneLiner, `"`) {
		t.Fatalf("expected stripped quotes in one liner, got %q", parsed.OneLiner)
	}

	if ok, failed := validateParsedReport(parsed); !ok {
		t.Fatalf("expected valid parse, failed rules: %v", failed)
	}
}

func TestParseAIReport_SectionsOutOfOrder(t *testing.T) {
	response := `4. Estilo amoroso: Amor tranquilo construido sobre confianza mutua.

1. Resumen de personalidad: Tu forma de estar en el mundo mezcla serenidad con una curiosidad constante por los demás.`

	parsed := parseAIReport(response)
	if parsed.DatingStyle == "" || parsed.PersonalitySummary == "" {
		t.Fatalf("expected order-independent matching, got %+v", parsed)
	}
}

func TestParseAIReport_KeywordsCappedAtThree(t *testing.T) {
	response := "3. Palabras clave: uno, dos, tres, cuatro, cinco"

	parsed := parseAIReport(response)
	if len(parsed.Keywords) != 3 {
		t.Fatalf("expected 3 keywords, got %v", parsed.Keywords)
	}
}

func TestParseAIReport_KeywordsSplitOnNewlines(t *testing.T) {
	response := "3. Palabras clave:\n✨ #intuición\n💫 #calidez"

	parsed := parseAIReport(response)
	if len(parsed.Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %v", parsed.Keywords)
	}
}

func TestValidateParsedReport_RejectsPromptEcho(t *testing.T) {
	parsed := parsedAIReport{
		PersonalitySummary: "Según el formato de salida indicado, redactaré cada sección del informe.",
		Keywords:           []string{"✨ #uno", "💫 #dos"},
		DatingStyle:        "Pareja atenta y considerada.",
	}

	ok, failed := validateParsedReport(parsed)
	if ok {
		t.Fatalf("expected prompt echo to invalidate parse")
	}
	found := false
	for _, name := range failed {
		if name == "summary_no_prompt_echo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected summary_no_prompt_echo among failures, got %v", failed)
	}
}

func TestValidateParsedReport_RejectsShortSummary(t *testing.T) {
	parsed := parsedAIReport{
		PersonalitySummary: "Demasiado corto",
		Keywords:           []string{"✨ #uno", "💫 #dos"},
		DatingStyle:        "Pareja atenta y considerada.",
	}

	if ok, _ := validateParsedReport(parsed); ok {
		t.Fatalf("expected short summary to invalidate parse")
	}
}

func TestValidateParsedReport_RequiresTwoKeywords(t *testing.T) {
	parsed := parsedAIReport{
		PersonalitySummary: "Una descripción suficientemente larga de la personalidad del usuario.",
		Keywords:           []string{"✨ #solo-uno"},
		DatingStyle:        "Pareja atenta y considerada.",
	}

	if ok, _ := validateParsedReport(parsed); ok {
		t.Fatalf("expected single keyword to invalidate parse")
	}
}

func TestValidateParsedReport_RequiresDatingStyle(t *testing.T) {
	parsed := parsedAIReport{
		PersonalitySummary: "Una descripción suficientemente larga de la personalidad del usuario.",
		Keywords:           []string{"✨ #uno", "💫 #dos"},
		DatingStyle:        "corta",
	}

	if ok, _ := validateParsedReport(parsed); ok {
		t.Fatalf("expected short dating style to invalidate parse")
	}
}

func TestValidateParsedReport_MissingOptionalSectionsStillValid(t *testing.T) {
	parsed := parsedAIReport{
		PersonalitySummary: "Una descripción suficientemente larga de la personalidad del usuario.",
		Keywords:           []string{"✨ #uno", "💫 #dos"},
		DatingStyle:        "Pareja atenta y considerada.",
	}

	if ok, failed := validateParsedReport(parsed); !ok {
		t.Fatalf("expected valid parse without optional sections, failed: %v", failed)
	}
}

func TestCleanModelResponse_StripsMarkdownFences(t *testing.T) {
	fenced := "```markdown\n" + wellFormedResponse + "\n```"

	cleaned := cleanModelResponse(fenced)
	if cleaned != wellFormedResponse {
		t.Fatalf("fences not removed:\n%q", cleaned)
	}

	parsed := parseAIReport(cleaned)
	if ok, failed := validateParsedReport(parsed); !ok {
		t.Fatalf("expected fenced response to parse after cleaning, failed: %v", failed)
	}
}

func TestCleanModelResponse_PassthroughPlainText(t *testing.T) {
	if got := cleanModelResponse("  hola  "); got != "hola" {
		t.Fatalf("expected trimmed passthrough, got %q", got)
	}
	if got := cleanModelResponse(""); got != "" {
		t.Fatalf("expected empty passthrough, got %q", got)
	}
}
