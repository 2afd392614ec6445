package aggregating

import (
	"fmt"
	"strings"

	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/deriving"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

// Mode define como os valores de uma métrica são combinados entre campanhas
type Mode string

const (
	ModeSum           Mode = "sum"
	ModeSimpleAverage Mode = "simpleAverage"
)

// ParseMode aceita os nomes dos modos de agregação, sem diferenciar maiúsculas
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "sum", "soma":
		return ModeSum, nil
	case "simpleaverage", "average", "avg", "media":
		return ModeSimpleAverage, nil
	}

	return "", fmt.Errorf("%w: %q", domain.ErrInvalidAggregation, value)
}

// Aggregator combina uma métrica de várias campanhas já normalizadas para a mesma moeda.
// Nunca converte moedas e não oferece média ponderada: razões entre totais
// devem ser calculadas pelo chamador a partir das somas.
type Aggregator struct {
	engine deriving.Deriver
}

func NewAggregator(engine deriving.Deriver) *Aggregator {
	return &Aggregator{engine: engine}
}

func (a *Aggregator) Aggregate(campaigns []domain.Campaign, key string, mode Mode) (float64, error) {
	if _, err := a.engine.Registry().Lookup(key); err != nil {
		return 0, err
	}

	if mode != ModeSum && mode != ModeSimpleAverage {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidAggregation, mode)
	}

	var total float64
	for _, c := range campaigns {
		total += a.engine.DeriveAll(c)[key]
	}
	total = utils.Finite(total)

	if mode == ModeSimpleAverage {
		return utils.SafeDiv(total, float64(len(campaigns))), nil
	}

	return total, nil
}

// Totals soma todas as métricas do registro entre as campanhas informadas
func (a *Aggregator) Totals(campaigns []domain.Campaign) domain.Values {
	totals := make(domain.Values)
	for _, key := range a.engine.Registry().AllKeys() {
		totals[key] = 0
	}

	for _, c := range campaigns {
		for key, value := range a.engine.DeriveAll(c) {
			totals[key] += value
		}
	}

	for key, value := range totals {
		totals[key] = utils.Finite(value)
	}

	return totals
}
