package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

//go:generate mockgen -source=exchange_rate.go -destination=mocks/mock_exchange_rate_repository.go -package=mocks

const (
	exchangeRatesTable   = "exchange_rates"
	exchangeRateIDPrefix = "rate"
)

// ExchangeRateRepository guarda o histórico das cotações obtidas com sucesso
type ExchangeRateRepository interface {
	Save(ctx context.Context, rate *domain.ExchangeRate) error
	GetLatest(ctx context.Context) (*domain.ExchangeRate, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type exchangeRateRepository struct {
	conn postgres.Queryer
}

func NewExchangeRateRepository(conn postgres.Queryer) ExchangeRateRepository {
	return &exchangeRateRepository{
		conn: conn,
	}
}

func (r *exchangeRateRepository) Save(ctx context.Context, rate *domain.ExchangeRate) error {
	if rate.ID == "" {
		id, err := utils.NewRecordID(exchangeRateIDPrefix)
		if err != nil {
			return fmt.Errorf("erro ao gerar ID da cotação: %w", err)
		}
		rate.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(exchangeRatesTable).
		Columns("id", "rate", "source", "fetched_at").
		Values(rate.ID, rate.Rate, rate.Source, rate.FetchedAt).
		Suffix("ON CONFLICT (source, fetched_at) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar cotação: %w", err)
	}

	return nil
}

func (r *exchangeRateRepository) GetLatest(ctx context.Context) (*domain.ExchangeRate, error) {
	query, args, err := squirrel.
		Select("id", "rate", "source", "fetched_at").
		From(exchangeRatesTable).
		OrderBy("fetched_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var rate domain.ExchangeRate
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&rate.ID, &rate.Rate, &rate.Source, &rate.FetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		// Banco ainda sem migração: sem histórico para carregar
		if postgres.IsUndefinedTable(err) {
			logrus.Warn("exchange-rate: tabela exchange_rates inexistente, histórico ignorado")
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar última cotação: %w", err)
	}

	return &rate, nil
}

func (r *exchangeRateRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete(exchangeRatesTable).
		Where(squirrel.Lt{"fetched_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover cotações antigas: %w", err)
	}

	return result.RowsAffected()
}
