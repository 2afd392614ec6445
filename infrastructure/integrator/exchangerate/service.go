package exchangerate

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	ratedomain "github.com/vfg2006/campaign-metrics-api/infrastructure/integrator/exchangerate/domain"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/integrator/exchangerate/rateclient"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_rate_integrator.go -package=mocks
//go:generate mockgen -source=rateclient/client.go -destination=mocks/mock_client.go -package=mocks

// RateIntegrator obtém a cotação USD→BRL de uma fonte externa
type RateIntegrator interface {
	FetchUSDBRL(ctx context.Context) (domain.ExchangeRate, error)
}

type AwesomeAPIService struct {
	Client rateclient.Client
}

func New(client rateclient.Client) RateIntegrator {
	return &AwesomeAPIService{
		Client: client,
	}
}

func (s *AwesomeAPIService) FetchUSDBRL(ctx context.Context) (domain.ExchangeRate, error) {
	quote, err := s.Client.GetLatestQuote(ctx)
	if err != nil {
		return domain.ExchangeRate{}, err
	}

	rate, err := FactoryExchangeRate(quote)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"bid":       quote.Bid,
			"timestamp": quote.Timestamp,
			"error":     err.Error(),
		}).Warn("exchange-rate: cotação recebida é inválida")
		return domain.ExchangeRate{}, err
	}

	return rate, nil
}

// FactoryExchangeRate valida a cotação da AwesomeAPI e converte para o domínio
func FactoryExchangeRate(quote *ratedomain.Quote) (domain.ExchangeRate, error) {
	if quote == nil {
		return domain.ExchangeRate{}, errors.New("cotação ausente")
	}

	bid, err := strconv.ParseFloat(strings.TrimSpace(quote.Bid), 64)
	if err != nil {
		return domain.ExchangeRate{}, errors.Wrapf(err, "bid inválido %q", quote.Bid)
	}

	if !domain.IsUsableRate(bid) {
		return domain.ExchangeRate{}, fmt.Errorf("bid fora do intervalo válido: %v", bid)
	}

	if strings.TrimSpace(quote.Timestamp) == "" {
		return domain.ExchangeRate{}, errors.New("cotação sem timestamp")
	}

	fetchedAt, err := utils.ParseUnixTimestamp(strings.TrimSpace(quote.Timestamp))
	if err != nil {
		return domain.ExchangeRate{}, errors.Wrapf(err, "timestamp inválido %q", quote.Timestamp)
	}

	return domain.ExchangeRate{
		Rate:      bid,
		FetchedAt: fetchedAt,
		Source:    domain.RateSourceAwesomeAPI,
	}, nil
}
