package deriving

import (
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

// Deriver calcula as métricas de uma campanha
type Deriver interface {
	// DeriveAll calcula todas as métricas do registro, brutas e derivadas
	DeriveAll(c domain.Campaign) domain.Values
	// Derive calcula uma única métrica, ou retorna ErrUnknownMetric
	Derive(c domain.Campaign, key string) (float64, error)
	Registry() *Registry
}

// Engine avalia as fórmulas do registro sobre uma campanha. Não guarda estado entre chamadas.
type Engine struct {
	registry *Registry
}

func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

func (e *Engine) Registry() *Registry {
	return e.registry
}

func (e *Engine) DeriveAll(c domain.Campaign) domain.Values {
	values := RawValues(c)
	result := make(domain.Values, len(e.registry.order))

	for _, key := range e.registry.order {
		value := utils.Finite(e.registry.definitions[key].Formula(values))
		values[key] = value
		result[key] = value
	}

	return result
}

func (e *Engine) Derive(c domain.Campaign, key string) (float64, error) {
	if _, err := e.registry.Lookup(key); err != nil {
		return 0, err
	}

	return e.DeriveAll(c)[key], nil
}
