package reporting

import (
	"errors"
	"fmt"
)

// Erros do relatório de métricas
var (
	ErrFetchCampaigns = errors.New("error fetching campaigns")
)

// ReportError é um erro com o código da API e detalhes para o cliente
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
