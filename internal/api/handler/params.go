package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errInvalidPrecision = errors.New("precision must be between 1 and 4")

// parseDisplayOptions lê currency e precision da query; vazios usam os padrões do serviço
func parseDisplayOptions(query url.Values) (domain.DisplayOptions, error) {
	var opts domain.DisplayOptions

	if code := query.Get("currency"); code != "" {
		currency, err := domain.ParseCurrency(code)
		if err != nil {
			return opts, err
		}
		opts.Currency = currency
	}

	if raw := query.Get("precision"); raw != "" {
		precision, err := strconv.Atoi(raw)
		if err != nil || precision < 1 || precision > 4 {
			return opts, fmt.Errorf("%w: %q", errInvalidPrecision, raw)
		}
		opts.PercentagePrecision = precision
	}

	return opts, nil
}

// parseCampaignFilters lê ids (separados por vírgula) e status (active, inactive, all)
func parseCampaignFilters(query url.Values) (domain.CampaignFilters, error) {
	var filters domain.CampaignFilters

	for _, id := range strings.Split(query.Get("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			filters.IDs = append(filters.IDs, id)
		}
	}

	switch strings.ToLower(query.Get("status")) {
	case "", "all":
	case "active":
		filters.Active = domain.Bool(true)
	case "inactive":
		filters.Active = domain.Bool(false)
	default:
		return filters, fmt.Errorf("invalid status %q: expected active, inactive or all", query.Get("status"))
	}

	return filters, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeServiceError converte os erros do domínio nos códigos da API
func writeServiceError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError

	switch {
	case errors.Is(err, domain.ErrUnknownMetric):
		apiErrors.WriteError(w, apiErrors.ErrUnknownMetric, "Métrica desconhecida", err.Error())
	case errors.Is(err, domain.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", err.Error())
	case errors.Is(err, domain.ErrUnsupportedCurrency):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedCurrency, "Moeda não suportada", err.Error())
	case errors.Is(err, domain.ErrInvalidAggregation):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAggregation, "Modo de agregação inválido", err.Error())
	case errors.As(err, &reportErr) && reportErr.Code != "":
		apiErrors.WriteError(w, reportErr.Code, "Erro ao consultar campanhas", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

// writeParamError responde erros de leitura da query
func writeParamError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrUnsupportedCurrency) {
		writeServiceError(w, err)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro inválido", err.Error())
}
