package deriving

import (
	"fmt"

	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

// Registry é o catálogo imutável de métricas, validado e ordenado na construção
type Registry struct {
	definitions map[string]domain.MetricDefinition
	order       []string
}

// NewRegistry valida as definições e calcula a ordem de avaliação.
// Dependências desconhecidas, chaves duplicadas e ciclos são rejeitados aqui,
// nunca durante o cálculo das métricas.
func NewRegistry(definitions []domain.MetricDefinition) (*Registry, error) {
	byKey := make(map[string]domain.MetricDefinition, len(definitions))
	declared := make([]string, 0, len(definitions))

	for _, def := range definitions {
		if def.Key == "" {
			return nil, fmt.Errorf("definição de métrica sem chave")
		}
		if def.Formula == nil {
			return nil, fmt.Errorf("métrica %q sem fórmula", def.Key)
		}
		if _, exists := byKey[def.Key]; exists {
			return nil, fmt.Errorf("métrica %q declarada mais de uma vez", def.Key)
		}

		byKey[def.Key] = def
		declared = append(declared, def.Key)
	}

	for _, key := range declared {
		for _, dep := range byKey[key].DependsOn {
			if _, ok := byKey[dep]; !ok {
				return nil, fmt.Errorf("métrica %q depende de %q: %w", key, dep, domain.ErrUnknownMetric)
			}
		}
	}

	order, err := topologicalOrder(declared, byKey)
	if err != nil {
		return nil, err
	}

	return &Registry{
		definitions: byKey,
		order:       order,
	}, nil
}

// MustNewRegistry é como NewRegistry mas entra em pânico se o catálogo for inválido
func MustNewRegistry(definitions []domain.MetricDefinition) *Registry {
	registry, err := NewRegistry(definitions)
	if err != nil {
		panic(err)
	}

	return registry
}

// NewDefaultRegistry constrói o registro com o catálogo padrão de métricas
func NewDefaultRegistry() *Registry {
	return MustNewRegistry(Definitions())
}

// topologicalOrder ordena as métricas de modo que cada uma venha depois das suas
// dependências; empates seguem a ordem de declaração
func topologicalOrder(declared []string, byKey map[string]domain.MetricDefinition) ([]string, error) {
	order := make([]string, 0, len(declared))
	placed := make(map[string]bool, len(declared))

	for len(order) < len(declared) {
		progressed := false

		for _, key := range declared {
			if placed[key] {
				continue
			}

			ready := true
			for _, dep := range byKey[key].DependsOn {
				if !placed[dep] {
					ready = false
					break
				}
			}

			if ready {
				placed[key] = true
				order = append(order, key)
				progressed = true
				break
			}
		}

		if !progressed {
			pending := make([]string, 0)
			for _, key := range declared {
				if !placed[key] {
					pending = append(pending, key)
				}
			}
			return nil, fmt.Errorf("dependência circular entre as métricas %v", pending)
		}
	}

	return order, nil
}

// Lookup retorna a definição da métrica ou ErrUnknownMetric
func (r *Registry) Lookup(key string) (domain.MetricDefinition, error) {
	def, ok := r.definitions[key]
	if !ok {
		return domain.MetricDefinition{}, fmt.Errorf("%w: %q", domain.ErrUnknownMetric, key)
	}

	return def, nil
}

// AllKeys retorna as chaves em ordem de avaliação. Cada chamada devolve uma nova fatia.
func (r *Registry) AllKeys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)

	return keys
}

// Definitions retorna as definições em ordem de avaliação
func (r *Registry) Definitions() []domain.MetricDefinition {
	defs := make([]domain.MetricDefinition, 0, len(r.order))
	for _, key := range r.order {
		defs = append(defs, r.definitions[key])
	}

	return defs
}
