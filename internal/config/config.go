package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort          string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL       string `env:"DATABASE_URL"`
	LLMAPIKey         string `env:"LLM_API_KEY"`
	LLMBaseURL        string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel          string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	VisionBaseURL     string `env:"VISION_BASE_URL"`
	RedisAddr         string `env:"REDIS_ADDR"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	JWTSecret         string `env:"JWT_SECRET"`
	JWTGuestTTLDays   int    `env:"JWT_GUEST_TTL_DAYS" envDefault:"30"`
	AnalyzeRatePerMin int    `env:"ANALYZE_RATE_PER_MIN" envDefault:"20"`
}

// LoadConfig carga la configuración desde variables de entorno.
// DATABASE_URL y LLM_API_KEY son opcionales: sin base se usa el
// repositorio en memoria y sin API key el informe cae a plantillas.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
