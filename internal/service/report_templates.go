package service

import (
	"strings"

	"face-quiz/internal/domain"
)

// Biblioteca de plantillas del informe de respaldo. Contenido fijo por
// (tipo de personalidad x arquetipo animal); solo la frase final se
// elige al azar entre tres por tipo. Este camino siempre produce un
// informe estructuralmente válido.

var fallbackSummaries = map[domain.PersonalityType][]string{
	domain.PersonalityTeto: {
		"Eres una persona de pensamiento lógico y analítico. Priorizas la razón sobre la emoción y valoras llegar a juicios objetivos.",
		"Tienes una gran capacidad para resolver problemas y mantienes la calma incluso en situaciones complejas. Prefieres los enfoques planificados y sistemáticos.",
		"Los demás confían en tu juicio sereno y en tu actitud estable.",
	},
	domain.PersonalityEgen: {
		"Eres una persona cálida y con una empatía fuera de lo común. Entiendes bien las emociones ajenas y tu vocación de cuidado es profunda.",
		"En las relaciones valoras la conexión emocional, y quienes te rodean encuentran en ti consuelo y fuerza.",
		"Tu interés sincero y tu carácter afectuoso dejan huella en mucha gente.",
	},
	domain.PersonalityTegen: {
		"Eres una persona que equilibra bien emoción y razón. Según la situación alternas el juicio lógico y la empatía con naturalidad.",
		"Tu pensamiento flexible te permite entender perspectivas diversas y ejercer de mediador con soltura.",
		"Ese sentido del equilibrio te convierte en alguien estable y digno de confianza.",
	},
}

var fallbackPhysiognomy = map[domain.AnimalType][]string{
	domain.AnimalDog: {
		"Transmites una impresión cercana y luminosa que genera simpatía desde el primer encuentro.",
		"Tu mirada pura y clara hace que la gente se sienta cómoda contigo.",
		"Tu expresividad natural deja ver autenticidad en cada gesto.",
	},
	domain.AnimalCat: {
		"Desprendes una impresión refinada y elegante con un punto de misterio.",
		"Tus rasgos definidos y tu carisma crean un aura inconfundible.",
		"Incluso con la expresión contenida, tu presencia se hace notar.",
	},
	domain.AnimalFox: {
		"Tu impresión aguda e ingeniosa irradia un atractivo intelectual.",
		"Tu mirada perspicaz sugiere capacidad de observación, con una belleza delicada.",
		"En tu expresión se percibe viveza y astucia, y eso encanta.",
	},
	domain.AnimalRabbit: {
		"Transmites una impresión suave y serena que invita a la cercanía.",
		"Tu rostro redondeado y tu mirada dulce componen un encanto adorable.",
		"Tu expresión luminosa y positiva anima a quienes te rodean.",
	},
	domain.AnimalBear: {
		"Das una impresión sólida y confiable que transmite estabilidad.",
		"En tu rostro se lee acogida y generosidad.",
		"Tu carisma templado hace que los demás se sientan en calma.",
	},
	domain.AnimalDeer: {
		"Tu impresión pura y elegante guarda una belleza serena.",
		"Tu mirada limpia y despejada resulta memorable, con un encanto silencioso.",
		"Un aire delicado y distinguido te acompaña con naturalidad.",
	},
}

var fallbackKeywords = map[domain.PersonalityType]map[domain.AnimalType][]string{
	domain.PersonalityTeto: {
		domain.AnimalDog:    {"✨ #AnalistaFiel", "🎯 #SociabilidadLógica", "🔍 #RazónConfiable"},
		domain.AnimalCat:    {"🌙 #IndependenciaFría", "💎 #EleganciaRacional", "🎭 #Perspicacia"},
		domain.AnimalFox:    {"🦊 #PensamientoEstratégico", "⚡ #AnálisisAfilado", "🎯 #JuicioAstuto"},
		domain.AnimalRabbit: {"🌸 #RazónSerena", "💭 #LógicaTranquila", "🍀 #SabiduríaSuave"},
		domain.AnimalBear:   {"🏔️ #JuicioEstable", "🛡️ #LógicaConfiable", "🌲 #AnálisisSólido"},
		domain.AnimalDeer:   {"🌿 #RazónElegante", "✨ #IntuiciónClara", "🎨 #JuicioRefinado"},
	},
	domain.PersonalityEgen: {
		domain.AnimalDog:    {"❤️ #EmpatíaCálida", "🌟 #PasiónPura", "🤝 #CuidadoSincero"},
		domain.AnimalCat:    {"💫 #CarismaSensible", "🎭 #SensibilidadMisteriosa", "🌙 #IntuiciónDelicada"},
		domain.AnimalFox:    {"🎨 #SensibilidadAstuta", "💡 #EmpatíaAguda", "✨ #AtenciónMeticulosa"},
		domain.AnimalRabbit: {"🌸 #TernuraAdorable", "💕 #CorazónPuro", "🍀 #CarácterAfectuoso"},
		domain.AnimalBear:   {"🤗 #CalidezAcogedora", "💝 #GenerosidadAfable", "🌻 #AbrazoTemplado"},
		domain.AnimalDeer:   {"🌙 #SensibilidadPura", "✨ #CorazónLimpio", "🎨 #SensibilidadElegante"},
	},
	domain.PersonalityTegen: {
		domain.AnimalDog:    {"⚖️ #CarácterEquilibrado", "🌈 #PensamientoFlexible", "🎯 #Adaptabilidad"},
		domain.AnimalCat:    {"🎭 #CarismaArmonioso", "💫 #SentidoDelEquilibrio", "🌙 #EncantoNeutral"},
		domain.AnimalFox:    {"🧩 #Versatilidad", "⚡ #LecturaDeSituaciones", "🎯 #SabiduríaEquilibrada"},
		domain.AnimalRabbit: {"🌸 #CarácterArmonioso", "💭 #EquilibrioSuave", "🍀 #FlexibilidadDulce"},
		domain.AnimalBear:   {"🏔️ #EquilibrioEstable", "🛡️ #JuicioModerado", "🌲 #ArmoníaSólida"},
		domain.AnimalDeer:   {"🌿 #EquilibrioElegante", "✨ #DignidadArmoniosa", "🎨 #NeutralidadRefinada"},
	},
}

var fallbackDatingStyles = map[domain.PersonalityType]map[domain.AnimalType]string{
	domain.PersonalityTeto: {
		domain.AnimalDog:    "pareja fiel que planifica la relación con cuidado",
		domain.AnimalCat:    "pareja independiente y racional",
		domain.AnimalFox:    "pareja estratégica e ingeniosa",
		domain.AnimalRabbit: "amor sereno y estable",
		domain.AnimalBear:   "compañía sólida y digna de confianza",
		domain.AnimalDeer:   "romance elegante y contenido",
	},
	domain.PersonalityEgen: {
		domain.AnimalDog:    "pareja apasionada y entregada",
		domain.AnimalCat:    "amor sensible y misterioso",
		domain.AnimalFox:    "pareja atenta y considerada",
		domain.AnimalRabbit: "relación afectuosa y desbordante de cariño",
		domain.AnimalBear:   "amor acogedor y cálido",
		domain.AnimalDeer:   "intercambio emocional puro y profundo",
	},
	domain.PersonalityTegen: {
		domain.AnimalDog:    "compañerismo equilibrado",
		domain.AnimalCat:    "relación armoniosa e independiente",
		domain.AnimalFox:    "amor flexible y comprensivo",
		domain.AnimalRabbit: "noviazgo estable y tranquilo",
		domain.AnimalBear:   "pareja firme y moderada",
		domain.AnimalDeer:   "romance elegante y contenido",
	},
}

var fallbackOneLiners = map[domain.PersonalityType][]string{
	domain.PersonalityTeto: {
		"Tu mirada es serena pero guarda una honda capacidad de ver más allá.",
		"Tu sonrisa es contenida y aun así inspira confianza.",
		"En tu expresión se percibe un aura racional y estable a la vez.",
	},
	domain.PersonalityEgen: {
		"Tu sonrisa es cálida y se nota sincera.",
		"Tu mirada transmite una empatía y una comprensión profundas.",
		"Tu expresión regala consuelo y fuerza a quienes te rodean.",
	},
	domain.PersonalityTegen: {
		"En tu rostro se aprecia la belleza de la armonía y el equilibrio.",
		"Tu expresión cambia con flexibilidad según el momento, y ahí está su encanto.",
		"Tu impresión es estable y llena de matices al mismo tiempo.",
	},
}

// Valores por defecto cuando el LLM contesta válido pero deja campos
// opcionales en blanco.
const (
	defaultPhysiognomy = "Tienes un encanto único y personal."
	defaultOneLiner    = "Posees un atractivo inconfundiblemente tuyo."
)

var defaultKeywords = []string{"✨ #Especial", "💫 #Encanto", "🌟 #Personalidad"}

// buildFallbackReport regenera el informe completo desde las plantillas.
// La frase final se sortea entre las tres del tipo.
func buildFallbackReport(
	personality domain.PersonalityType,
	animal domain.AnimalType,
	title string,
	compat domain.CompatibilityScore,
	traits domain.TraitScores,
	rng RandSource,
) domain.PersonalityReport {
	oneLiners := fallbackOneLiners[personality]

	return domain.PersonalityReport{
		Title:               title,
		PersonalitySummary:  strings.Join(fallbackSummaries[personality], " "),
		PhysiognomyAnalysis: strings.Join(fallbackPhysiognomy[animal], " "),
		Keywords:            append([]string(nil), fallbackKeywords[personality][animal]...),
		DatingStyle:         fallbackDatingStyles[personality][animal],
		OneLiner:            oneLiners[rng.Intn(len(oneLiners))],
		CompatibilityScores: compat,
		TraitScores:         traits,
	}
}
