package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

//go:generate mockgen -source=campaign.go -destination=mocks/mock_campaign_repository.go -package=mocks

const (
	campaignsTable = "campaigns c"
)

var campaignColumns = []string{
	"c.id", "c.name", "c.moeda", "c.ativo",
	"c.impressoes", "c.cliques", "c.cliques_invalidos", "c.conversoes",
	"c.visitantes", "c.checkouts", "c.parcela_impressoes", "c.indice_qualidade",
	"c.orcamento", "c.custo", "c.cpc_medio", "c.comissao", "c.faturamento",
	"c.taxa_cambio", "c.created_at", "c.updated_at",
}

// CampaignRepository é somente leitura: campanhas são mantidas por outro sistema
type CampaignRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	List(ctx context.Context, filters domain.CampaignFilters) ([]domain.Campaign, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) List(ctx context.Context, filters domain.CampaignFilters) ([]domain.Campaign, error) {
	query, args, err := buildListCampaignsQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func buildListCampaignsQuery(filters domain.CampaignFilters) (string, []any, error) {
	builder := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		OrderBy("c.name ASC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filters.IDs) > 0 {
		builder = builder.Where(squirrel.Eq{"c.id": filters.IDs})
	}

	if filters.Active != nil {
		// ativo nulo conta como campanha ativa
		if *filters.Active {
			builder = builder.Where(squirrel.Or{squirrel.Eq{"c.ativo": true}, squirrel.Eq{"c.ativo": nil}})
		} else {
			builder = builder.Where(squirrel.Eq{"c.ativo": false})
		}
	}

	if filters.Currency != nil {
		builder = builder.Where(squirrel.Eq{"c.moeda": string(*filters.Currency)})
	}

	return builder.ToSql()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	var (
		c        domain.Campaign
		currency string
		ativo    sql.NullBool
		numbers  [14]sql.NullFloat64
	)

	err := row.Scan(
		&c.ID, &c.Name, &currency, &ativo,
		&numbers[0], &numbers[1], &numbers[2], &numbers[3],
		&numbers[4], &numbers[5], &numbers[6], &numbers[7],
		&numbers[8], &numbers[9], &numbers[10], &numbers[11], &numbers[12],
		&numbers[13], &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Currency = domain.Currency(currency)
	if ativo.Valid {
		c.Ativo = domain.Bool(ativo.Bool)
	}

	fields := []**float64{
		&c.Impressoes, &c.Cliques, &c.CliquesInvalidos, &c.Conversoes,
		&c.Visitantes, &c.Checkouts, &c.ParcelaImpressoes, &c.IndiceQualidade,
		&c.Orcamento, &c.Custo, &c.CPCMedio, &c.Comissao, &c.Faturamento,
		&c.TaxaCambio,
	}
	for i, field := range fields {
		if numbers[i].Valid {
			*field = domain.Float(numbers[i].Float64)
		}
	}

	return &c, nil
}
