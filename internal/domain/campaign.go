package domain

import "time"

// Campaign representa uma campanha como lida do armazenamento de campanhas.
// Todos os campos monetários estão na moeda nativa (Currency).
// Campos ausentes são ponteiros nulos e valem zero para o motor de métricas.
type Campaign struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Currency Currency `json:"moeda"`
	Ativo    *bool    `json:"ativo,omitempty"`

	Impressoes        *float64 `json:"impressoes,omitempty"`
	Cliques           *float64 `json:"cliques,omitempty"`
	CliquesInvalidos  *float64 `json:"cliquesInvalidos,omitempty"`
	Conversoes        *float64 `json:"conversoes,omitempty"`
	Visitantes        *float64 `json:"visitantes,omitempty"`
	Checkouts         *float64 `json:"checkouts,omitempty"`
	ParcelaImpressoes *float64 `json:"parcelaImpressoes,omitempty"`
	IndiceQualidade   *float64 `json:"indiceQualidade,omitempty"`

	Orcamento   *float64 `json:"orcamento,omitempty"`
	Custo       *float64 `json:"custo,omitempty"`
	CPCMedio    *float64 `json:"cpcMedio,omitempty"`
	Comissao    *float64 `json:"comissao,omitempty"`
	Faturamento *float64 `json:"faturamento,omitempty"`

	// TaxaCambio é a cotação USD→BRL gravada junto da campanha, quando existir
	TaxaCambio *float64 `json:"taxaCambio,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActive retorna o status da campanha; ausência do campo significa ativa
func (c *Campaign) IsActive() bool {
	if c == nil || c.Ativo == nil {
		return true
	}

	return *c.Ativo
}

// CampaignFilters restringe o conjunto de campanhas lidas do armazenamento
type CampaignFilters struct {
	IDs      []string
	Active   *bool
	Currency *Currency
}

// Value retorna o valor apontado ou zero quando o campo está ausente
func Value(f *float64) float64 {
	if f == nil {
		return 0
	}

	return *f
}

// Float cria um ponteiro para o valor informado
func Float(v float64) *float64 {
	return &v
}

// Bool cria um ponteiro para o valor informado
func Bool(v bool) *bool {
	return &v
}
