package rateclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	ratedomain "github.com/vfg2006/campaign-metrics-api/infrastructure/integrator/exchangerate/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetLatestQuote(ctx context.Context) (*ratedomain.Quote, error)
}

type RateClient struct {
	httpClient *http.Client
	url        string
	backoff    utils.Backoff
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.ExchangeRate.Timeout()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RateClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:     cfg.ExchangeRate.URL,
		backoff: utils.NewBackoff(cfg.ExchangeRate.RetryDelay(), cfg.ExchangeRate.RetryCount),
	}
}

// GetLatestQuote busca a cotação USD-BRL mais recente, repetindo em falhas de rede e respostas 5xx
func (c *RateClient) GetLatestQuote(ctx context.Context) (*ratedomain.Quote, error) {
	var quote *ratedomain.Quote

	err := c.backoff.Do(ctx, func(attempt int) error {
		result, retryable, err := c.fetch(ctx)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"url":     c.url,
				"error":   err.Error(),
			}).Warn("exchange-rate: falha ao consultar cotação")

			if !retryable {
				return utils.Permanent(err)
			}
			return err
		}

		quote = result
		return nil
	})

	if err != nil {
		return nil, err
	}

	return quote, nil
}

func (c *RateClient) fetch(ctx context.Context) (*ratedomain.Quote, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("requisição falhou com status: %s", resp.Status)
		return nil, resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests, err
	}

	var response ratedomain.QuoteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, false, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	if response.USDBRL == nil {
		return nil, false, errors.New("resposta sem a cotação USDBRL")
	}

	return response.USDBRL, false, nil
}
