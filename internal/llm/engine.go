package llm

import (
	"context"
	"errors"
	"sync"
)

// ErrEngineUnavailable indica que no hay motor de generación utilizable.
// Quien llama decide el fallback; nunca se propaga al usuario final.
var ErrEngineUnavailable = errors.New("llm engine unavailable")

// Engine es el handle explícito del motor de generación: se inicializa y
// se apaga de forma controlada en lugar de vivir como singleton de módulo.
// Init es idempotente; llamadas concurrentes son inocuas.
type Engine struct {
	client Client

	mu    sync.Mutex
	ready bool
}

// NewEngine crea un handle sobre un Client, que puede ser nil (motor ausente).
func NewEngine(client Client) *Engine {
	return &Engine{client: client}
}

// Init prepara el motor. Con client nil devuelve ErrEngineUnavailable.
func (e *Engine) Init(ctx context.Context) error {
	if e == nil || e.client == nil {
		return ErrEngineUnavailable
	}
	e.mu.Lock()
	e.ready = true
	e.mu.Unlock()
	return nil
}

// Shutdown libera el motor; tras esto Generate vuelve a fallar.
func (e *Engine) Shutdown() {
	if e == nil {
		return
	}
	e.mu.Lock()
	e.ready = false
	e.mu.Unlock()
}

// Ready informa si el motor quedó inicializado.
func (e *Engine) Ready() bool {
	if e == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}

// Generate delega en el cliente subyacente si el motor está listo.
func (e *Engine) Generate(ctx context.Context, prompt string, params SamplingParams) (string, error) {
	if !e.Ready() {
		return "", ErrEngineUnavailable
	}
	return e.client.Generate(ctx, prompt, params)
}
